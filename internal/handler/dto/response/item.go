package response

import (
	"time"

	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/readmodel"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemDetailResponse carries the owner-only booking timeline; the fields are
// null for everyone else.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingSlotResponse `json:"lastBooking"`
	NextBooking *BookingSlotResponse `json:"nextBooking"`
	Comments    []CommentResponse    `json:"comments"`
}

type BookingSlotResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItem(it readmodel.ItemRM) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func FromItems(items []readmodel.ItemRM) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = FromItem(it)
	}
	return res
}

func FromItemView(v queries.ItemView) ItemDetailResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = FromComment(c)
	}
	return ItemDetailResponse{
		ItemResponse: FromItem(v.ItemRM),
		LastBooking:  fromSlot(v.LastBooking),
		NextBooking:  fromSlot(v.NextBooking),
		Comments:     comments,
	}
}

func FromItemViews(vs []queries.ItemView) []ItemDetailResponse {
	res := make([]ItemDetailResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemView(v)
	}
	return res
}

func FromComment(c readmodel.CommentRM) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func fromSlot(s *readmodel.BookingSlotRM) *BookingSlotResponse {
	if s == nil {
		return nil
	}
	return &BookingSlotResponse{ID: s.ID, BookerID: s.BookerID, Start: s.Start, End: s.End}
}
