package readstore

import (
	"context"
	"time"

	"shareit/internal/infra/db"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
)

type requestRow struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	RequesterID int64     `db:"requester_id"`
	Created     time.Time `db:"created"`
}

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error) {
	row, err := selectOne[requestRow](ctx, r.db, requestsQuery().Where(goqu.C("id").Eq(id)), "request")
	if err != nil {
		return nil, err
	}
	rm := toRequestRM(*row)
	return &rm, nil
}

func (r *RequestReadStore) ListByRequester(ctx context.Context, requesterID int64) ([]readmodel.RequestRM, error) {
	ds := requestsQuery().
		Where(goqu.C("requester_id").Eq(requesterID)).
		Order(goqu.C("created").Desc(), goqu.C("id").Desc())
	return r.list(ctx, ds, "own requests")
}

func (r *RequestReadStore) ListExcludingRequester(ctx context.Context, requesterID int64, page readmodel.Page) ([]readmodel.RequestRM, error) {
	ds := requestsQuery().
		Where(goqu.C("requester_id").Neq(requesterID)).
		Order(goqu.C("created").Desc(), goqu.C("id").Desc())
	return r.list(ctx, paged(ds, page), "other requests")
}

func (r *RequestReadStore) list(ctx context.Context, ds *goqu.SelectDataset, what string) ([]readmodel.RequestRM, error) {
	rows, err := selectAll[requestRow](ctx, r.db, ds, what)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toRequestRM), nil
}

func requestsQuery() *goqu.SelectDataset {
	return db.Dialect.From(db.TableRequests).Select("id", "description", "requester_id", "created")
}

func toRequestRM(r requestRow) readmodel.RequestRM {
	return readmodel.RequestRM{
		ID:          r.ID,
		Description: r.Description,
		RequesterID: r.RequesterID,
		Created:     r.Created,
	}
}
