package request

import (
	"bytes"
	"encoding/json"
	"time"

	"shareit/internal/pkg/errs"
)

// LocalLayout is the zone-less form clients send; such values are read as UTC.
const LocalLayout = "2006-01-02T15:04:05"

// Timestamp accepts RFC 3339 as well as LocalLayout.
type Timestamp struct {
	t time.Time
}

func NewTimestamp(t time.Time) *Timestamp { return &Timestamp{t: t} }

func (ts Timestamp) Time() time.Time { return ts.t }

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		ts.t = t
		return nil
	}
	t, err := time.ParseInLocation(LocalLayout, s, time.UTC)
	if err != nil {
		return errs.Newf("invalid timestamp %q", s)
	}
	ts.t = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.t.UTC().Format(time.RFC3339))
}
