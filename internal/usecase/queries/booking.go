package queries

import (
	"context"

	"shareit/internal/domain/access"
	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/readmodel"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error)
	// ListByBooker and ListByItemOwner return one page ordered by start, latest first.
	ListByBooker(ctx context.Context, bookerID int64, page readmodel.Page) ([]readmodel.BookingRM, error)
	ListByItemOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.BookingRM, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, bookingID int64) (*readmodel.BookingRM, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, page readmodel.Page) ([]readmodel.BookingRM, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, page readmodel.Page) ([]readmodel.BookingRM, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID int64) (*readmodel.BookingRM, error) {
	b, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if err = access.Check(access.CanView(actorID, b.Booker.ID, b.Item.OwnerID), access.ResourceBooking); err != nil {
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state string, page readmodel.Page) ([]readmodel.BookingRM, error) {
	return q.list(ctx, bookerID, state, page, q.bookings.ListByBooker)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state string, page readmodel.Page) ([]readmodel.BookingRM, error) {
	return q.list(ctx, ownerID, state, page, q.bookings.ListByItemOwner)
}

type pageFetcher func(ctx context.Context, userID int64, page readmodel.Page) ([]readmodel.BookingRM, error)

// list fetches one page and filters it afterwards. A filtered page can hold
// fewer rows than the page size even when later pages have matches.
func (q *bookingQueriesImpl) list(ctx context.Context, userID int64, token string, page readmodel.Page, fetch pageFetcher) ([]readmodel.BookingRM, error) {
	state, err := dombooking.ParseState(token)
	if err != nil {
		return nil, err
	}
	if err = ensureUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	rows, err := fetch(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return dombooking.Classify(rows, state, q.clock.Now(), bookingSnapshot), nil
}

func bookingSnapshot(b readmodel.BookingRM) dombooking.Snapshot {
	return dombooking.Snapshot{
		Start:  b.Start,
		End:    b.End,
		Status: dombooking.Status(b.Status),
	}
}
