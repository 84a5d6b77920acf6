package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	stmt := db.Dialect.Insert(db.TableBookings).
		Rows(goqu.Record{
			"start_date": b.Start(),
			"end_date":   b.End(),
			"item_id":    b.ItemID(),
			"booker_id":  b.BookerID(),
			"status":     b.Status().String(),
		}).
		Returning("id").
		Prepared(true)
	return insertReturningID(ctx, r.db, stmt, "booking")
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	stmt := db.Dialect.Update(db.TableBookings).
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)
	return execAffectingOne(ctx, r.db, stmt, "booking")
}
