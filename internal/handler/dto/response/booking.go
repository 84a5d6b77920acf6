package response

import (
	"time"

	"shareit/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID     int64        `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status string       `json:"status"`
	Item   ItemResponse `json:"item"`
	Booker UserResponse `json:"booker"`
}

func FromBooking(b readmodel.BookingRM) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   FromItem(b.Item),
		Booker: FromUser(b.Booker),
	}
}

func FromBookings(bs []readmodel.BookingRM) []BookingResponse {
	res := make([]BookingResponse, len(bs))
	for i, b := range bs {
		res[i] = FromBooking(b)
	}
	return res
}
