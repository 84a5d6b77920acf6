package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

type RequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

func FromRequestView(v queries.RequestView) RequestResponse {
	items := make([]RequestItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = RequestItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   it.RequestID,
		}
	}
	return RequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       items,
	}
}

func FromRequestViews(vs []queries.RequestView) []RequestResponse {
	res := make([]RequestResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRequestView(v)
	}
	return res
}
