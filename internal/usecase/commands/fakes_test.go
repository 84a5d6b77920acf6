//go:build unit

package commands_test

import (
	"context"
	"time"

	dombooking "shareit/internal/domain/booking"
	domcomment "shareit/internal/domain/comment"
	domitem "shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	domuser "shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

// memStore is an in-memory unit of work. Writes are applied directly; a
// failing callback does not roll anything back.
type memStore struct {
	nextID   int64
	users    map[int64]shared.UserSnapshot
	items    map[int64]shared.ItemSnapshot
	bookings map[int64]shared.BookingSnapshot
	requests map[int64]shared.RequestSnapshot
	comments map[int64]*domcomment.Comment
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]shared.UserSnapshot{},
		items:    map[int64]shared.ItemSnapshot{},
		bookings: map[int64]shared.BookingSnapshot{},
		requests: map[int64]shared.RequestSnapshot{},
		comments: map[int64]*domcomment.Comment{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(name, email string) int64 {
	id := s.id()
	s.users[id] = shared.UserSnapshot{ID: id, Name: name, Email: email}
	return id
}

func (s *memStore) addItem(ownerID int64, available bool) int64 {
	id := s.id()
	s.items[id] = shared.ItemSnapshot{ID: id, OwnerID: ownerID, Name: "Drill", Description: "Cordless", Available: available}
	return id
}

func (s *memStore) addBooking(itemID, bookerID int64, start, end time.Time, status dombooking.Status) int64 {
	id := s.id()
	s.bookings[id] = shared.BookingSnapshot{
		ID:          id,
		ItemID:      itemID,
		ItemOwnerID: s.items[itemID].OwnerID,
		BookerID:    bookerID,
		Start:       start,
		End:         end,
		Status:      string(status),
	}
	return id
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{s})
}

func (s *memStore) CommandReads() shared.CommandReads { return memReads{s} }

type memTx struct{ s *memStore }

func (t memTx) Users() shared.UserRepository       { return memUsers{t.s} }
func (t memTx) Items() shared.ItemRepository       { return memItems{t.s} }
func (t memTx) Bookings() shared.BookingRepository { return memBookings{t.s} }
func (t memTx) Comments() shared.CommentRepository { return memComments{t.s} }
func (t memTx) Requests() shared.RequestRepository { return memRequests{t.s} }
func (t memTx) Reads() shared.CommandReads         { return memReads{t.s} }

var errNoRows = errs.NotFound("no rows")

type memReads struct{ s *memStore }

func (r memReads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, errNoRows
	}
	return &u, nil
}

func (r memReads) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, errNoRows
	}
	return &it, nil
}

func (r memReads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, errNoRows
	}
	return &b, nil
}

func (r memReads) RequestByID(_ context.Context, id int64) (*shared.RequestSnapshot, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return nil, errNoRows
	}
	return &req, nil
}

func (r memReads) HasRentedItem(_ context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	for _, b := range r.s.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID &&
			b.Status != string(dombooking.StatusRejected) && b.Start.Before(before) {
			return true, nil
		}
	}
	return false, nil
}

type memUsers struct{ s *memStore }

func (r memUsers) emailTaken(email string, except int64) bool {
	for id, u := range r.s.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (r memUsers) Create(_ context.Context, u *domuser.User) (int64, error) {
	if r.emailTaken(u.Email().Value(), 0) {
		return 0, errs.Conflict("duplicate key")
	}
	return r.s.addUser(u.Name().Value(), u.Email().Value()), nil
}

func (r memUsers) Update(_ context.Context, u *domuser.User) error {
	if r.emailTaken(u.Email().Value(), u.ID()) {
		return errs.Conflict("duplicate key")
	}
	r.s.users[u.ID()] = shared.UserSnapshot{ID: u.ID(), Name: u.Name().Value(), Email: u.Email().Value()}
	return nil
}

func (r memUsers) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.users[id]; !ok {
		return errNoRows
	}
	delete(r.s.users, id)
	return nil
}

type memItems struct{ s *memStore }

func (r memItems) Create(_ context.Context, it *domitem.Item) (int64, error) {
	id := r.s.id()
	r.s.items[id] = shared.ItemSnapshot{
		ID:          id,
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
	return id, nil
}

func (r memItems) Update(_ context.Context, it *domitem.Item) error {
	r.s.items[it.ID()] = shared.ItemSnapshot{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
	return nil
}

func (r memItems) Delete(_ context.Context, id int64) error {
	delete(r.s.items, id)
	return nil
}

type memBookings struct{ s *memStore }

func (r memBookings) Create(_ context.Context, b *dombooking.Booking) (int64, error) {
	return r.s.addBooking(b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status()), nil
}

func (r memBookings) UpdateStatus(_ context.Context, id int64, status dombooking.Status) error {
	b := r.s.bookings[id]
	b.Status = string(status)
	r.s.bookings[id] = b
	return nil
}

type memComments struct{ s *memStore }

func (r memComments) Create(_ context.Context, c *domcomment.Comment) (int64, error) {
	id := r.s.id()
	r.s.comments[id] = c
	return id, nil
}

type memRequests struct{ s *memStore }

func (r memRequests) Create(_ context.Context, req *itemrequest.ItemRequest) (int64, error) {
	id := r.s.id()
	r.s.requests[id] = shared.RequestSnapshot{ID: id, RequesterID: req.RequesterID()}
	return id, nil
}
