package item

import "time"

// Slot is an approved booking as seen from the item it belongs to.
type Slot struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// Timeline holds the bookings nearest to now on either side.
type Timeline struct {
	Last *Slot
	Next *Slot
}

// BuildTimeline picks the latest slot starting before now and the earliest
// slot starting after now. The two are chosen independently, so there may be
// any gap between them. A slot starting exactly at now is neither.
func BuildTimeline(slots []Slot, now time.Time) Timeline {
	var tl Timeline
	for i := range slots {
		s := slots[i]
		switch {
		case s.Start.Before(now):
			if tl.Last == nil || s.Start.After(tl.Last.Start) {
				tl.Last = &s
			}
		case s.Start.After(now):
			if tl.Next == nil || s.Start.Before(tl.Next.Start) {
				tl.Next = &s
			}
		}
	}
	return tl
}

// GroupByItem buckets slots by item id, keeping their relative order.
func GroupByItem[T any](rows []T, itemID func(T) int64) map[int64][]T {
	out := make(map[int64][]T)
	for _, r := range rows {
		id := itemID(r)
		out[id] = append(out[id], r)
	}
	return out
}
