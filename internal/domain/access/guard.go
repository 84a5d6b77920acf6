// Package access holds the rules on who may act on or view bookings and items.
//
// A denied caller is told the resource does not exist. Every rule reports its
// denial through Deny, so this is the one place to change if callers should
// ever see a distinct "forbidden" outcome.
package access

import "shareit/internal/pkg/errs"

type Resource string

const (
	ResourceItem    Resource = "item"
	ResourceBooking Resource = "booking"
)

// Deny returns the error shown to a caller who may not touch the resource.
func Deny(resource Resource) error {
	return errs.NotFound(string(resource) + " not found")
}

// Check converts a rule outcome into nil or a denial.
func Check(allowed bool, resource Resource) error {
	if allowed {
		return nil
	}
	return Deny(resource)
}

// CanBook: anyone except the owner may book an item.
func CanBook(actorID, ownerID int64) bool {
	return actorID != ownerID
}

// CanDecide: only the item owner approves or rejects.
func CanDecide(actorID, ownerID int64) bool {
	return actorID == ownerID
}

// CanView: the booker and the item owner may see a single booking.
func CanView(actorID, bookerID, ownerID int64) bool {
	return actorID == bookerID || actorID == ownerID
}

// CanEditItem covers both update and delete.
func CanEditItem(actorID, ownerID int64) bool {
	return actorID == ownerID
}

// CanSeeTimeline decides who receives an item's last and next bookings.
func CanSeeTimeline(viewerID, ownerID int64) bool {
	return viewerID == ownerID
}
