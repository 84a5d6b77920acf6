package queries

import (
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

var (
	ErrUserNotFound    = errs.NotFound("user not found")
	ErrItemNotFound    = errs.NotFound("item not found")
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrCommentNotFound = errs.NotFound("comment not found")
	ErrRequestNotFound = errs.NotFound("request not found")
)

// ItemView is an item as a particular viewer sees it. LastBooking and
// NextBooking are only ever set for the owner.
type ItemView struct {
	readmodel.ItemRM
	LastBooking *readmodel.BookingSlotRM `json:"last_booking,omitempty"`
	NextBooking *readmodel.BookingSlotRM `json:"next_booking,omitempty"`
	Comments    []readmodel.CommentRM    `json:"comments"`
}

// RequestView is an item request with the items offered in answer to it.
type RequestView struct {
	readmodel.RequestRM
	Items []readmodel.ItemRM `json:"items"`
}

func notFoundAs(err, sentinel error) error {
	if errs.KindOf(err) == errs.KindNotFound {
		return sentinel
	}
	return err
}
