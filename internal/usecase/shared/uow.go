package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
}

// CommandReads load the state a command decides on. Missing rows come back
// as errors whose kind is errs.KindNotFound.
type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id int64) (*RequestSnapshot, error)
	// HasRentedItem: a booking on the item by the booker, not rejected, started before the given time
	HasRentedItem(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) (int64, error)
	Update(ctx context.Context, it *item.Item) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	// UpdateStatus writes unconditionally; the WAITING check happens in the caller's transaction.
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *itemrequest.ItemRequest) (int64, error)
}
