//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/readmodel"
)

type ItemBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
	Comments    []readmodel.CommentRM
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          1,
		OwnerID:     1,
		Name:        "Drill",
		Description: "Cordless drill, two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildReadModel() readmodel.ItemRM {
	return readmodel.ItemRM{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	comments := b.Comments
	if comments == nil {
		comments = []readmodel.CommentRM{}
	}
	return &queries.ItemView{ItemRM: b.BuildReadModel(), Comments: comments}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildCreateUseCase() commands.CreateItemRequest {
	return commands.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithOwner(ownerID int64) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithRequest(requestID int64) *ItemBuilder {
	b.RequestID = &requestID
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	b.Available = false
	return b
}

func (b *ItemBuilder) WithComment(id int64, text, author string, created time.Time) *ItemBuilder {
	b.Comments = append(b.Comments, readmodel.CommentRM{
		ID:         id,
		Text:       text,
		ItemID:     b.ID,
		AuthorName: author,
		Created:    created,
	})
	return b
}
