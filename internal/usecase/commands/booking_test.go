//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmdNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	store  *memStore
	owner  int64
	booker int64
	item   int64
	uc     commands.BookingCommands
}

func newBookingFixture(available bool) bookingFixture {
	store := newMemStore()
	owner := store.addUser("Owner", "owner@example.com")
	booker := store.addUser("Booker", "booker@example.com")
	return bookingFixture{
		store:  store,
		owner:  owner,
		booker: booker,
		item:   store.addItem(owner, available),
		uc:     commands.NewBookingCommands(store, clock.NewMockClock(cmdNow)),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	start, end := cmdNow.Add(time.Hour), cmdNow.Add(26*time.Hour)

	t.Run("new booking waits for the owner", func(t *testing.T) {
		f := newBookingFixture(true)

		res, err := f.uc.Create(ctx, f.booker, commands.CreateBookingRequest{ItemID: f.item, Start: start, End: end})

		require.NoError(t, err)
		stored := f.store.bookings[res.BookingID]
		assert.Equal(t, string(dombooking.StatusWaiting), stored.Status)
		assert.Equal(t, f.booker, stored.BookerID)
	})

	tests := []struct {
		name     string
		avail    bool
		booker   func(f bookingFixture) int64
		item     func(f bookingFixture) int64
		start    time.Time
		end      time.Time
		wantErr  error
		wantKind errs.Kind
	}{
		{
			name: "unknown booker", avail: true,
			booker: func(bookingFixture) int64 { return 999 }, item: func(f bookingFixture) int64 { return f.item },
			start: start, end: end, wantErr: commands.ErrUserNotFound, wantKind: errs.KindNotFound,
		},
		{
			name: "unknown item", avail: true,
			booker: func(f bookingFixture) int64 { return f.booker }, item: func(bookingFixture) int64 { return 999 },
			start: start, end: end, wantErr: commands.ErrItemNotFound, wantKind: errs.KindNotFound,
		},
		{
			name: "unavailable item", avail: false,
			booker: func(f bookingFixture) int64 { return f.booker }, item: func(f bookingFixture) int64 { return f.item },
			start: start, end: end, wantErr: dombooking.ErrItemUnavailable, wantKind: errs.KindValidation,
		},
		{
			name: "owner cannot book own item", avail: true,
			booker: func(f bookingFixture) int64 { return f.owner }, item: func(f bookingFixture) int64 { return f.item },
			start: start, end: end, wantKind: errs.KindNotFound,
		},
		{
			name: "end equal to start", avail: true,
			booker: func(f bookingFixture) int64 { return f.booker }, item: func(f bookingFixture) int64 { return f.item },
			start: start, end: start, wantErr: dombooking.ErrInvalidPeriod, wantKind: errs.KindValidation,
		},
		{
			name: "start in the past", avail: true,
			booker: func(f bookingFixture) int64 { return f.booker }, item: func(f bookingFixture) int64 { return f.item },
			start: cmdNow.Add(-time.Minute), end: end, wantErr: dombooking.ErrStartInPast, wantKind: errs.KindValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(tt.avail)

			_, err := f.uc.Create(ctx, tt.booker(f), commands.CreateBookingRequest{ItemID: tt.item(f), Start: tt.start, End: tt.end})

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
			assert.Empty(t, f.store.bookings)
		})
	}
}

func TestBookingCommands_Decide(t *testing.T) {
	ctx := context.Background()
	start, end := cmdNow.Add(time.Hour), cmdNow.Add(2*time.Hour)

	t.Run("owner approves then cannot decide again", func(t *testing.T) {
		f := newBookingFixture(true)
		id := f.store.addBooking(f.item, f.booker, start, end, dombooking.StatusWaiting)

		require.NoError(t, f.uc.Decide(ctx, f.owner, id, true))
		assert.Equal(t, string(dombooking.StatusApproved), f.store.bookings[id].Status)

		err := f.uc.Decide(ctx, f.owner, id, false)
		assert.ErrorIs(t, err, dombooking.ErrAlreadyDecided)
		assert.Equal(t, string(dombooking.StatusApproved), f.store.bookings[id].Status)
	})

	t.Run("owner rejects", func(t *testing.T) {
		f := newBookingFixture(true)
		id := f.store.addBooking(f.item, f.booker, start, end, dombooking.StatusWaiting)

		require.NoError(t, f.uc.Decide(ctx, f.owner, id, false))
		assert.Equal(t, string(dombooking.StatusRejected), f.store.bookings[id].Status)
	})

	t.Run("rejected booking cannot be approved", func(t *testing.T) {
		f := newBookingFixture(true)
		id := f.store.addBooking(f.item, f.booker, start, end, dombooking.StatusWaiting)
		require.NoError(t, f.uc.Decide(ctx, f.owner, id, false))

		err := f.uc.Decide(ctx, f.owner, id, true)

		assert.ErrorIs(t, err, dombooking.ErrAlreadyDecided)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Equal(t, string(dombooking.StatusRejected), f.store.bookings[id].Status)
	})

	t.Run("booker cannot decide", func(t *testing.T) {
		f := newBookingFixture(true)
		id := f.store.addBooking(f.item, f.booker, start, end, dombooking.StatusWaiting)

		err := f.uc.Decide(ctx, f.booker, id, true)

		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, string(dombooking.StatusWaiting), f.store.bookings[id].Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(true)
		assert.ErrorIs(t, f.uc.Decide(ctx, f.owner, 999, true), commands.ErrBookingNotFound)
	})
}
