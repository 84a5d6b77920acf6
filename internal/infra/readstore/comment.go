package readstore

import (
	"context"
	"time"

	"shareit/internal/infra/db"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
)

type commentRow struct {
	ID         int64     `db:"id"`
	Text       string    `db:"text"`
	ItemID     int64     `db:"item_id"`
	AuthorName string    `db:"author_name"`
	Created    time.Time `db:"created"`
}

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id int64) (*readmodel.CommentRM, error) {
	row, err := selectOne[commentRow](ctx, r.db, commentsQuery().Where(goqu.I("c.id").Eq(id)), "comment")
	if err != nil {
		return nil, err
	}
	rm := toCommentRM(*row)
	return &rm, nil
}

func (r *CommentReadStore) ListByItems(ctx context.Context, itemIDs []int64) ([]readmodel.CommentRM, error) {
	if len(itemIDs) == 0 {
		return []readmodel.CommentRM{}, nil
	}
	ds := commentsQuery().
		Where(goqu.I("c.item_id").In(itemIDs)).
		Order(goqu.I("c.id").Asc())
	rows, err := selectAll[commentRow](ctx, r.db, ds, "item comments")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toCommentRM), nil
}

func commentsQuery() *goqu.SelectDataset {
	return db.Dialect.From(goqu.T(db.TableComments).As("c")).
		Join(goqu.T(db.TableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.author_id")))).
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.text").As("text"),
			goqu.I("c.item_id").As("item_id"),
			goqu.I("u.name").As("author_name"),
			goqu.I("c.created").As("created"),
		)
}

func toCommentRM(r commentRow) readmodel.CommentRM {
	return readmodel.CommentRM{
		ID:         r.ID,
		Text:       r.Text,
		ItemID:     r.ItemID,
		AuthorName: r.AuthorName,
		Created:    r.Created,
	}
}
