package readstore

import (
	"context"

	"shareit/internal/infra/db"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
)

type itemRow struct {
	ID          int64       `db:"id"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	Available   bool        `db:"is_available"`
	OwnerID     int64       `db:"owner_id"`
	RequestID   pgtype.Int8 `db:"request_id"`
}

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error) {
	row, err := selectOne[itemRow](ctx, r.db, itemsQuery().Where(goqu.C("id").Eq(id)), "item")
	if err != nil {
		return nil, err
	}
	rm := toItemRM(*row)
	return &rm, nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.ItemRM, error) {
	return r.list(ctx, paged(ownerItemsQuery(ownerID), page), "owner items")
}

func (r *ItemReadStore) Search(ctx context.Context, text string, page readmodel.Page) ([]readmodel.ItemRM, error) {
	return r.list(ctx, paged(searchItemsQuery(text), page), "item search")
}

func (r *ItemReadStore) ListByRequests(ctx context.Context, requestIDs []int64) ([]readmodel.ItemRM, error) {
	if len(requestIDs) == 0 {
		return []readmodel.ItemRM{}, nil
	}
	ds := itemsQuery().
		Where(goqu.C("request_id").In(requestIDs)).
		Order(goqu.C("id").Asc())
	return r.list(ctx, ds, "request items")
}

func (r *ItemReadStore) list(ctx context.Context, ds *goqu.SelectDataset, what string) ([]readmodel.ItemRM, error) {
	rows, err := selectAll[itemRow](ctx, r.db, ds, what)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toItemRM), nil
}

func itemsQuery() *goqu.SelectDataset {
	return db.Dialect.From(db.TableItems).
		Select("id", "name", "description", "is_available", "owner_id", "request_id")
}

func ownerItemsQuery(ownerID int64) *goqu.SelectDataset {
	return itemsQuery().
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("id").Asc())
}

// searchItemsQuery matches available items on name or description,
// ignoring case.
func searchItemsQuery(text string) *goqu.SelectDataset {
	pattern := "%" + text + "%"
	return itemsQuery().
		Where(
			goqu.C("is_available").IsTrue(),
			goqu.Or(
				goqu.C("name").ILike(pattern),
				goqu.C("description").ILike(pattern),
			),
		).
		Order(goqu.C("id").Asc())
}

func toItemRM(r itemRow) readmodel.ItemRM {
	return readmodel.ItemRM{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		OwnerID:     r.OwnerID,
		RequestID:   ptr.Int64FromPgtype(r.RequestID),
	}
}
