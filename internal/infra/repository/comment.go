package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) *CommentRepository {
	return &CommentRepository{db: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	stmt := db.Dialect.Insert(db.TableComments).
		Rows(goqu.Record{
			"text":      c.Text().String(),
			"item_id":   c.ItemID(),
			"author_id": c.AuthorID(),
			"created":   c.Created(),
		}).
		Returning("id").
		Prepared(true)
	return insertReturningID(ctx, r.db, stmt, "comment")
}
