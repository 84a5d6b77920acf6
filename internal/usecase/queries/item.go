package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/domain/access"
	domitem "shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/readmodel"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error)
	// ListByOwner is ordered by item id ascending.
	ListByOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]readmodel.ItemRM, error)
	// Search matches available items whose name or description contains text,
	// ignoring case.
	Search(ctx context.Context, text string, page readmodel.Page) ([]readmodel.ItemRM, error)
	ListByRequests(ctx context.Context, requestIDs []int64) ([]readmodel.ItemRM, error)
}

type BookingSlotReadStore interface {
	ApprovedByItems(ctx context.Context, itemIDs []int64) ([]readmodel.BookingSlotRM, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.CommentRM, error)
	// ListByItems is ordered by comment id ascending.
	ListByItems(ctx context.Context, itemIDs []int64) ([]readmodel.CommentRM, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, itemID int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]ItemView, error)
	Search(ctx context.Context, text string, page readmodel.Page) ([]readmodel.ItemRM, error)
	GetComment(ctx context.Context, commentID int64) (*readmodel.CommentRM, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	slots    BookingSlotReadStore
	comments CommentReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewItemQueries(
	items ItemReadStore,
	slots BookingSlotReadStore,
	comments CommentReadStore,
	users UserReadStore,
	clk clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		slots:    slots,
		comments: comments,
		users:    users,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID int64) (*ItemView, error) {
	it, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, notFoundAs(err, ErrItemNotFound)
	}

	views, err := q.project(ctx, viewerID, []readmodel.ItemRM{*it})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, page readmodel.Page) ([]ItemView, error) {
	if err := ensureUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}

	items, err := q.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	return q.project(ctx, ownerID, items)
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page readmodel.Page) ([]readmodel.ItemRM, error) {
	if strings.TrimSpace(text) == "" {
		return []readmodel.ItemRM{}, nil
	}
	return q.items.Search(ctx, text, page)
}

func (q *itemQueriesImpl) GetComment(ctx context.Context, commentID int64) (*readmodel.CommentRM, error) {
	c, err := q.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, notFoundAs(err, ErrCommentNotFound)
	}
	return c, nil
}

// project loads comments and approved bookings for the whole set in one pass
// each, then distributes them per item.
func (q *itemQueriesImpl) project(ctx context.Context, viewerID int64, items []readmodel.ItemRM) ([]ItemView, error) {
	views := make([]ItemView, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(items))
	var owned []int64
	for _, it := range items {
		ids = append(ids, it.ID)
		if access.CanSeeTimeline(viewerID, it.OwnerID) {
			owned = append(owned, it.ID)
		}
	}

	comments, err := q.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := domitem.GroupByItem(comments, func(c readmodel.CommentRM) int64 { return c.ItemID })

	var slotsByItem map[int64][]readmodel.BookingSlotRM
	if len(owned) > 0 {
		slots, err := q.slots.ApprovedByItems(ctx, owned)
		if err != nil {
			return nil, err
		}
		slotsByItem = domitem.GroupByItem(slots, func(s readmodel.BookingSlotRM) int64 { return s.ItemID })
	}

	now := q.clock.Now()
	for i, it := range items {
		views[i] = ItemView{ItemRM: it, Comments: commentsByItem[it.ID]}
		if views[i].Comments == nil {
			views[i].Comments = []readmodel.CommentRM{}
		}
		if access.CanSeeTimeline(viewerID, it.OwnerID) {
			views[i].LastBooking, views[i].NextBooking = timeline(slotsByItem[it.ID], now)
		}
	}
	return views, nil
}

func timeline(rows []readmodel.BookingSlotRM, now time.Time) (last, next *readmodel.BookingSlotRM) {
	byID := make(map[int64]readmodel.BookingSlotRM, len(rows))
	slots := make([]domitem.Slot, 0, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
		slots = append(slots, domitem.Slot{ID: r.ID, BookerID: r.BookerID, Start: r.Start, End: r.End})
	}

	tl := domitem.BuildTimeline(slots, now)
	pick := func(s *domitem.Slot) *readmodel.BookingSlotRM {
		if s == nil {
			return nil
		}
		r := byID[s.ID]
		return &r
	}
	return pick(tl.Last), pick(tl.Next)
}
