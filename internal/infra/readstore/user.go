package readstore

import (
	"context"

	"shareit/internal/infra/db"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
)

type userRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	row, err := selectOne[userRow](ctx, r.db, usersQuery().Where(goqu.C("id").Eq(id)), "user")
	if err != nil {
		return nil, err
	}
	rm := toUserRM(*row)
	return &rm, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]readmodel.UserRM, error) {
	rows, err := selectAll[userRow](ctx, r.db, usersQuery().Order(goqu.C("id").Asc()), "users")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toUserRM), nil
}

func usersQuery() *goqu.SelectDataset {
	return db.Dialect.From(db.TableUsers).Select("id", "name", "email")
}

func toUserRM(r userRow) readmodel.UserRM {
	return readmodel.UserRM{ID: r.ID, Name: r.Name, Email: r.Email}
}
