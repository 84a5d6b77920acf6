package repository

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *itemrequest.ItemRequest) (int64, error) {
	stmt := db.Dialect.Insert(db.TableRequests).
		Rows(goqu.Record{
			"description":  req.Description(),
			"requester_id": req.RequesterID(),
			"created":      req.Created(),
		}).
		Returning("id").
		Prepared(true)
	return insertReturningID(ctx, r.db, stmt, "request")
}
