package queries

import (
	"context"

	"shareit/internal/usecase/readmodel"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error)
	List(ctx context.Context) ([]readmodel.UserRM, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*readmodel.UserRM, error)
	List(ctx context.Context) ([]readmodel.UserRM, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]readmodel.UserRM, error) {
	return q.readStore.List(ctx)
}

// ensureUser is shared by the queries that are scoped to an existing user.
func ensureUser(ctx context.Context, users UserReadStore, id int64) error {
	if _, err := users.FindByID(ctx, id); err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}
	return nil
}
