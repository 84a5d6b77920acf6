package queries

import (
	"context"

	domitem "shareit/internal/domain/item"
	"shareit/internal/usecase/readmodel"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error)
	// Both listings are ordered by creation time, newest first.
	ListByRequester(ctx context.Context, requesterID int64) ([]readmodel.RequestRM, error)
	ListExcludingRequester(ctx context.Context, requesterID int64, page readmodel.Page) ([]readmodel.RequestRM, error)
}

type RequestQueries interface {
	Own(ctx context.Context, userID int64) ([]RequestView, error)
	Others(ctx context.Context, userID int64, page readmodel.Page) ([]RequestView, error)
	GetByID(ctx context.Context, userID, requestID int64) (*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

func (q *requestQueriesImpl) Own(ctx context.Context, userID int64) ([]RequestView, error) {
	if err := ensureUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	rows, err := q.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return q.attachItems(ctx, rows)
}

func (q *requestQueriesImpl) Others(ctx context.Context, userID int64, page readmodel.Page) ([]RequestView, error) {
	if err := ensureUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	rows, err := q.requests.ListExcludingRequester(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return q.attachItems(ctx, rows)
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID int64) (*RequestView, error) {
	if err := ensureUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	r, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, notFoundAs(err, ErrRequestNotFound)
	}
	views, err := q.attachItems(ctx, []readmodel.RequestRM{*r})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, rows []readmodel.RequestRM) ([]RequestView, error) {
	views := make([]RequestView, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	items, err := q.items.ListByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := domitem.GroupByItem(items, func(it readmodel.ItemRM) int64 {
		if it.RequestID == nil {
			return 0
		}
		return *it.RequestID
	})

	for i, r := range rows {
		views[i] = RequestView{RequestRM: r, Items: byRequest[r.ID]}
		if views[i].Items == nil {
			views[i].Items = []readmodel.ItemRM{}
		}
	}
	return views, nil
}
