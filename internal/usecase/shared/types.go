package shared

import "time"

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type BookingSnapshot struct {
	ID          int64
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      string
}

type RequestSnapshot struct {
	ID          int64
	RequesterID int64
}
