//go:build unit

package item_test

import (
	"testing"
	"time"

	"shareit/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func slot(id int64, startOffset time.Duration) item.Slot {
	return item.Slot{ID: id, BookerID: 2, Start: now.Add(startOffset), End: now.Add(startOffset + time.Hour)}
}

func TestBuildTimeline(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name     string
		slots    []item.Slot
		wantLast int64
		wantNext int64
	}{
		{name: "no bookings"},
		{name: "only future", slots: []item.Slot{slot(1, time.Hour), slot(2, 2*time.Hour)}, wantNext: 1},
		{name: "only past", slots: []item.Slot{slot(1, -2*time.Hour), slot(2, -time.Hour)}, wantLast: 2},
		{
			name:     "distant last and next with a gap between them",
			slots:    []item.Slot{slot(1, -30*day), slot(2, -10*day), slot(3, 10*day), slot(4, 30*day)},
			wantLast: 2,
			wantNext: 3,
		},
		{
			name:     "input order does not matter",
			slots:    []item.Slot{slot(4, 30*day), slot(2, -10*day), slot(3, 10*day), slot(1, -30*day)},
			wantLast: 2,
			wantNext: 3,
		},
		{name: "slot starting exactly now is neither", slots: []item.Slot{slot(1, 0)}},
		{name: "ongoing booking counts as last", slots: []item.Slot{slot(1, -30*time.Minute)}, wantLast: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := item.BuildTimeline(tt.slots, now)

			if tt.wantLast == 0 {
				assert.Nil(t, tl.Last)
			} else {
				require.NotNil(t, tl.Last)
				assert.Equal(t, tt.wantLast, tl.Last.ID)
			}
			if tt.wantNext == 0 {
				assert.Nil(t, tl.Next)
			} else {
				require.NotNil(t, tl.Next)
				assert.Equal(t, tt.wantNext, tl.Next.ID)
			}
			if tl.Last != nil && tl.Next != nil {
				assert.True(t, tl.Last.Start.Before(now))
				assert.False(t, tl.Next.Start.Before(now))
			}
		})
	}
}

func TestGroupByItem(t *testing.T) {
	type row struct{ itemID, id int64 }
	rows := []row{{1, 10}, {2, 20}, {1, 11}}

	got := item.GroupByItem(rows, func(r row) int64 { return r.itemID })

	assert.Equal(t, []row{{1, 10}, {1, 11}}, got[1])
	assert.Equal(t, []row{{2, 20}}, got[2])
	assert.Empty(t, got[3])
}
