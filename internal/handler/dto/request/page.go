package request

import "shareit/internal/usecase/readmodel"

// PageQuery is the from/size window accepted by list endpoints.
type PageQuery struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}

func (q PageQuery) ToPage() readmodel.Page {
	return readmodel.NewPage(q.From, q.Size)
}

type SearchQuery struct {
	PageQuery
	Text string `form:"text"`
}
