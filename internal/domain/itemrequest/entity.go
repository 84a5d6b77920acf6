package itemrequest

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

var ErrEmptyDescription = errs.Validation("request description must not be blank")

// ItemRequest is a user's public ask for something nobody lists yet.
type ItemRequest struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

func NewItemRequest(requesterID int64, description string, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		description: description,
		requesterID: requesterID,
		created:     now,
	}, nil
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequesterID() int64  { return r.requesterID }
func (r *ItemRequest) Created() time.Time  { return r.created }
