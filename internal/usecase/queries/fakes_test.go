//go:build unit

package queries_test

import (
	"context"

	"shareit/internal/usecase/readmodel"

	"github.com/stretchr/testify/mock"
)

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*readmodel.UserRM)
	return u, args.Error(1)
}

func (m *mockUserReadStore) List(ctx context.Context) ([]readmodel.UserRM, error) {
	args := m.Called(ctx)
	return args.Get(0).([]readmodel.UserRM), args.Error(1)
}

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*readmodel.BookingRM)
	return b, args.Error(1)
}

func (m *mockBookingReadStore) ListByBooker(ctx context.Context, bookerID int64, page readmodel.Page) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx, bookerID, page)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingReadStore) ListByItemOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

type mockItemReadStore struct {
	mock.Mock
}

func (m *mockItemReadStore) FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*readmodel.ItemRM)
	return it, args.Error(1)
}

func (m *mockItemReadStore) ListByOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.ItemRM, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]readmodel.ItemRM), args.Error(1)
}

func (m *mockItemReadStore) Search(ctx context.Context, text string, page readmodel.Page) ([]readmodel.ItemRM, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]readmodel.ItemRM), args.Error(1)
}

func (m *mockItemReadStore) ListByRequests(ctx context.Context, requestIDs []int64) ([]readmodel.ItemRM, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]readmodel.ItemRM), args.Error(1)
}

type mockSlotReadStore struct {
	mock.Mock
}

func (m *mockSlotReadStore) ApprovedByItems(ctx context.Context, itemIDs []int64) ([]readmodel.BookingSlotRM, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]readmodel.BookingSlotRM), args.Error(1)
}

type mockCommentReadStore struct {
	mock.Mock
}

func (m *mockCommentReadStore) FindByID(ctx context.Context, id int64) (*readmodel.CommentRM, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*readmodel.CommentRM)
	return c, args.Error(1)
}

func (m *mockCommentReadStore) ListByItems(ctx context.Context, itemIDs []int64) ([]readmodel.CommentRM, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]readmodel.CommentRM), args.Error(1)
}

type mockRequestReadStore struct {
	mock.Mock
}

func (m *mockRequestReadStore) FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*readmodel.RequestRM)
	return r, args.Error(1)
}

func (m *mockRequestReadStore) ListByRequester(ctx context.Context, requesterID int64) ([]readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestReadStore) ListExcludingRequester(ctx context.Context, requesterID int64, page readmodel.Page) ([]readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID, page)
	return args.Get(0).([]readmodel.RequestRM), args.Error(1)
}
