package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/errs"
)

var ErrNotEligible = errs.Validation("item was never rented by this user")

type Comment struct {
	id       int64
	text     Text
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment stamps the comment with the current time once the author has
// passed the eligibility check.
func NewComment(ctx context.Context, services *Services, itemID, authorID int64, text Text) (*Comment, error) {
	now := services.Clock.Now()

	ok, err := services.EligibilityChecker.HasRented(ctx, EligibilityInput{
		ItemID:   itemID,
		AuthorID: authorID,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotEligible
	}

	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func Reconstruct(id, itemID, authorID int64, text Text, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
