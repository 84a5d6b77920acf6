package readmodel

import "time"

// BookingRM is a booking joined with the item and booker it refers to.
type BookingRM struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRM    `json:"item"`
	Booker UserRM    `json:"booker"`
}

// BookingSlotRM is the short form used for an item's last and next bookings.
type BookingSlotRM struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"item_id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}
