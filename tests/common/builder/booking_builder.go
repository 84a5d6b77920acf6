//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/readmodel"
)

type BookingBuilder struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status string
	Item   readmodel.ItemRM
	Booker readmodel.UserRM
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &BookingBuilder{
		ID:     1,
		Start:  start,
		End:    start.Add(48 * time.Hour),
		Status: "WAITING",
		Item:   NewItemBuilder().WithOwner(1).BuildReadModel(),
		Booker: *NewUserBuilder().WithID(2).WithName("Booker").WithEmail("booker@example.com").BuildReadModel(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   b.Item,
		Booker: b.Booker,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.Item.ID,
		Start:  reqdto.NewTimestamp(b.Start),
		End:    reqdto.NewTimestamp(b.End),
	}
}

func (b *BookingBuilder) BuildCreateUseCase() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{ItemID: b.Item.ID, Start: b.Start, End: b.End}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithItem(item readmodel.ItemRM) *BookingBuilder {
	b.Item = item
	return b
}

func (b *BookingBuilder) WithBooker(booker readmodel.UserRM) *BookingBuilder {
	b.Booker = booker
	return b
}
