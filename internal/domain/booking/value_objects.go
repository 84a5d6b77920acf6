package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrInvalidPeriod = errs.Validation("booking start must be before its end")
	ErrStartInPast   = errs.Validation("booking start cannot be in the past")
)

// Period is the half-open rental window [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end, now time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) {
		return Period{}, ErrStartInPast
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}
