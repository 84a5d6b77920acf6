package booking

import (
	"time"

	"shareit/internal/domain/access"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var (
	ErrItemUnavailable = errs.Validation("item is not available for booking")
	ErrAlreadyDecided  = errs.Validation("booking has already been approved or rejected")
	ErrInvalidStatus   = errs.Validation("invalid booking status")
)

type Services struct {
	Clock clock.Clock
}

// ItemSpec is what the booking rules need to know about the item being booked.
type ItemSpec struct {
	ID        int64
	OwnerID   int64
	Available bool
}

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

// NewBooking applies the creation rules in order: availability, self-booking,
// then the rental window. A new booking always starts out WAITING.
func NewBooking(services *Services, bookerID int64, item ItemSpec, start, end time.Time) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if err := access.Check(access.CanBook(bookerID, item.OwnerID), access.ResourceItem); err != nil {
		return nil, err
	}

	period, err := NewPeriod(start, end, services.Clock.Now())
	if err != nil {
		return nil, err
	}

	return &Booking{
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func Reconstruct(id, itemID, bookerID int64, start, end time.Time, status Status) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   ReconstructPeriod(start, end),
		status:   status,
	}, nil
}

// Decide moves a WAITING booking to APPROVED or REJECTED on behalf of the
// item owner. The status check comes first, so a decided booking fails the
// same way for every actor.
func (b *Booking) Decide(actorID, itemOwnerID int64, approved bool) error {
	if b.status.IsDecided() {
		return ErrAlreadyDecided
	}
	if err := access.Check(access.CanDecide(actorID, itemOwnerID), access.ResourceBooking); err != nil {
		return err
	}

	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Period() Period   { return b.period }
func (b *Booking) Start() time.Time { return b.period.Start() }
func (b *Booking) End() time.Time   { return b.period.End() }
func (b *Booking) Status() Status   { return b.status }
