package commands

import (
	"context"
	"log/slog"
	"time"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error)
	Decide(ctx context.Context, actorID, bookingID int64, approved bool) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error) {
	services := &dombooking.Services{Clock: uc.clock}

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, bookerID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		it, err := tx.Reads().ItemByID(ctx, req.ItemID)
		if err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		b, err := dombooking.NewBooking(services, bookerID, dombooking.ItemSpec{
			ID:        it.ID,
			OwnerID:   it.OwnerID,
			Available: it.Available,
		}, req.Start, req.End)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	slog.Info("booking created", "booking_id", createdID, "item_id", req.ItemID, "booker_id", bookerID)
	return &CreateBookingResult{BookingID: createdID}, nil
}

// Decide re-reads the booking inside the transaction and writes the new
// status without a version check. Two owners' requests that both read
// WAITING before either commits can both succeed.
func (uc *bookingCommandsImpl) Decide(ctx context.Context, actorID, bookingID int64, approved bool) error {
	var decided dombooking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		b, err := dombooking.Reconstruct(snap.ID, snap.ItemID, snap.BookerID, snap.Start, snap.End, dombooking.Status(snap.Status))
		if err != nil {
			return err
		}
		if err = b.Decide(actorID, snap.ItemOwnerID, approved); err != nil {
			return err
		}

		decided = b.Status()
		return tx.Bookings().UpdateStatus(ctx, b.ID(), b.Status())
	})
	if err != nil {
		return err
	}

	metrics.IncBookingDecision(decided.String())
	return nil
}
