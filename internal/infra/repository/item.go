package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (int64, error) {
	stmt := db.Dialect.Insert(db.TableItems).
		Rows(goqu.Record{
			"name":         it.Name(),
			"description":  it.Description(),
			"is_available": it.Available(),
			"owner_id":     it.OwnerID(),
			"request_id":   pgconv.Int64PtrToPgtype(it.RequestID()),
		}).
		Returning("id").
		Prepared(true)
	return insertReturningID(ctx, r.db, stmt, "item")
}

// Update rewrites the mutable fields; owner and request link never change.
func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	stmt := db.Dialect.Update(db.TableItems).
		Set(goqu.Record{
			"name":         it.Name(),
			"description":  it.Description(),
			"is_available": it.Available(),
		}).
		Where(goqu.C("id").Eq(it.ID())).
		Prepared(true)
	return execAffectingOne(ctx, r.db, stmt, "item")
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	stmt := db.Dialect.Delete(db.TableItems).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)
	return execAffectingOne(ctx, r.db, stmt, "item")
}
