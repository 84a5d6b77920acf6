package request

import "shareit/internal/usecase/commands"

type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" binding:"required"`
	Start  *Timestamp `json:"start" binding:"required"`
	End    *Timestamp `json:"end" binding:"required"`
}

func (r *CreateBookingRequest) ToUseCase() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}

type BookingListQuery struct {
	PageQuery
	State string `form:"state"`
}

type DecisionQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}
