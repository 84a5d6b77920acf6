package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRow struct {
	ID              int64       `db:"id"`
	Start           time.Time   `db:"start_date"`
	End             time.Time   `db:"end_date"`
	Status          string      `db:"status"`
	ItemID          int64       `db:"item_id"`
	ItemName        string      `db:"item_name"`
	ItemDescription string      `db:"item_description"`
	ItemAvailable   bool        `db:"item_available"`
	ItemOwnerID     int64       `db:"item_owner_id"`
	ItemRequestID   pgtype.Int8 `db:"item_request_id"`
	BookerID        int64       `db:"booker_id"`
	BookerName      string      `db:"booker_name"`
	BookerEmail     string      `db:"booker_email"`
}

type slotRow struct {
	ID       int64     `db:"id"`
	ItemID   int64     `db:"item_id"`
	BookerID int64     `db:"booker_id"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	Status   string    `db:"status"`
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	row, err := selectOne[bookingRow](ctx, r.db, bookingsQuery().Where(goqu.I("b.id").Eq(id)), "booking")
	if err != nil {
		return nil, err
	}
	rm := toBookingRM(*row)
	return &rm, nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, page readmodel.Page) ([]readmodel.BookingRM, error) {
	return r.list(ctx, paged(bookerBookingsQuery(bookerID), page), "booker bookings")
}

func (r *BookingReadStore) ListByItemOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.BookingRM, error) {
	return r.list(ctx, paged(ownerBookingsQuery(ownerID), page), "owner bookings")
}

// ApprovedByItems returns approved bookings of the given items, earliest first.
func (r *BookingReadStore) ApprovedByItems(ctx context.Context, itemIDs []int64) ([]readmodel.BookingSlotRM, error) {
	if len(itemIDs) == 0 {
		return []readmodel.BookingSlotRM{}, nil
	}
	rows, err := selectAll[slotRow](ctx, r.db, approvedSlotsQuery(itemIDs), "item bookings")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toSlotRM), nil
}

// HasRented reports whether the booker holds a booking on the item that was
// not rejected and started before the given instant.
func (r *BookingReadStore) HasRented(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	query, args, err := rentalCountQuery(itemID, bookerID, before).Prepared(true).ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build rental query", err, infra.KindDBFailure)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, infra.WrapRepoErr("failed to check rental history", err)
	}
	return n > 0, nil
}

func (r *BookingReadStore) list(ctx context.Context, ds *goqu.SelectDataset, what string) ([]readmodel.BookingRM, error) {
	rows, err := selectAll[bookingRow](ctx, r.db, ds, what)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toBookingRM), nil
}

func bookingsQuery() *goqu.SelectDataset {
	return db.Dialect.From(goqu.T(db.TableBookings).As("b")).
		Join(goqu.T(db.TableItems).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T(db.TableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select(
			goqu.I("b.id").As("id"),
			goqu.I("b.start_date").As("start_date"),
			goqu.I("b.end_date").As("end_date"),
			goqu.I("b.status").As("status"),
			goqu.I("i.id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.description").As("item_description"),
			goqu.I("i.is_available").As("item_available"),
			goqu.I("i.owner_id").As("item_owner_id"),
			goqu.I("i.request_id").As("item_request_id"),
			goqu.I("u.id").As("booker_id"),
			goqu.I("u.name").As("booker_name"),
			goqu.I("u.email").As("booker_email"),
		)
}

func bookerBookingsQuery(bookerID int64) *goqu.SelectDataset {
	return bookingsQuery().
		Where(goqu.I("b.booker_id").Eq(bookerID)).
		Order(goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc())
}

func ownerBookingsQuery(ownerID int64) *goqu.SelectDataset {
	return bookingsQuery().
		Where(goqu.I("i.owner_id").Eq(ownerID)).
		Order(goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc())
}

func approvedSlotsQuery(itemIDs []int64) *goqu.SelectDataset {
	return db.Dialect.From(db.TableBookings).
		Select("id", "item_id", "booker_id", "start_date", "end_date", "status").
		Where(
			goqu.C("item_id").In(itemIDs),
			goqu.C("status").Eq(booking.StatusApproved.String()),
		).
		Order(goqu.C("start_date").Asc())
}

func rentalCountQuery(itemID, bookerID int64, before time.Time) *goqu.SelectDataset {
	return db.Dialect.From(db.TableBookings).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("item_id").Eq(itemID),
			goqu.C("booker_id").Eq(bookerID),
			goqu.C("status").Neq(booking.StatusRejected.String()),
			goqu.C("start_date").Lt(before),
		)
}

func toBookingRM(r bookingRow) readmodel.BookingRM {
	return readmodel.BookingRM{
		ID:     r.ID,
		Start:  r.Start,
		End:    r.End,
		Status: r.Status,
		Item: readmodel.ItemRM{
			ID:          r.ItemID,
			Name:        r.ItemName,
			Description: r.ItemDescription,
			Available:   r.ItemAvailable,
			OwnerID:     r.ItemOwnerID,
			RequestID:   ptr.Int64FromPgtype(r.ItemRequestID),
		},
		Booker: readmodel.UserRM{
			ID:    r.BookerID,
			Name:  r.BookerName,
			Email: r.BookerEmail,
		},
	}
}

func toSlotRM(r slotRow) readmodel.BookingSlotRM {
	return readmodel.BookingSlotRM{
		ID:       r.ID,
		ItemID:   r.ItemID,
		BookerID: r.BookerID,
		Start:    r.Start,
		End:      r.End,
		Status:   r.Status,
	}
}
