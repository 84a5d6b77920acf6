package commands

import (
	"shareit/internal/pkg/errs"
)

var (
	ErrUserNotFound    = errs.NotFound("user not found")
	ErrItemNotFound    = errs.NotFound("item not found")
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrRequestNotFound = errs.NotFound("request not found")
	ErrEmailTaken      = errs.Conflict("email is already registered")
)

// notFoundAs swaps a storage-level "no rows" for the command's own sentinel
// and leaves every other error untouched.
func notFoundAs(err, sentinel error) error {
	if errs.KindOf(err) == errs.KindNotFound {
		return sentinel
	}
	return err
}

// conflictAs does the same for duplicate keys.
func conflictAs(err, sentinel error) error {
	if errs.KindOf(err) == errs.KindConflict {
		return sentinel
	}
	return err
}
