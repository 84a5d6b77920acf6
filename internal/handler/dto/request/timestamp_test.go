//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2030, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "rfc3339 utc", in: `"2030-05-01T12:30:00Z"`},
		{name: "rfc3339 with offset", in: `"2030-05-01T14:30:00+02:00"`},
		{name: "local layout read as utc", in: `"2030-05-01T12:30:00"`},
		{name: "garbage", in: `"tomorrow"`, wantErr: true},
		{name: "not a string", in: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts request.Timestamp
			err := json.Unmarshal([]byte(tt.in), &ts)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, want.Equal(ts.Time()), "got %v", ts.Time())
		})
	}
}

func TestCreateBookingRequest_NullTimes(t *testing.T) {
	var req request.CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"itemId":1,"start":null}`), &req))

	assert.Nil(t, req.Start)
	assert.Nil(t, req.End)
}

func TestPageQuery_ToPage(t *testing.T) {
	q := request.PageQuery{From: 5, Size: 2}

	page := q.ToPage()

	assert.Equal(t, 4, page.Offset)
	assert.Equal(t, 2, page.Limit)
}
