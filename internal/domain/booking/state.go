package booking

import (
	"sort"
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

// State selects a subset of bookings for list views.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// UnknownStateError is returned for a state token outside the closed set.
type UnknownStateError struct {
	Token string
}

func (e *UnknownStateError) Error() string        { return "Unknown state: " + e.Token }
func (e *UnknownStateError) ErrorKind() errs.Kind { return errs.KindValidation }

// Snapshot is the part of a booking the state predicates look at.
type Snapshot struct {
	Start  time.Time
	End    time.Time
	Status Status
}

type predicate func(s Snapshot, now time.Time) bool

// All bounds are strict, so CURRENT, PAST and FUTURE never overlap.
var predicates = map[State]predicate{
	StateAll: func(Snapshot, time.Time) bool { return true },
	StateCurrent: func(s Snapshot, now time.Time) bool {
		return s.Start.Before(now) && s.End.After(now)
	},
	StatePast: func(s Snapshot, now time.Time) bool {
		return s.End.Before(now)
	},
	StateFuture: func(s Snapshot, now time.Time) bool {
		return s.Start.After(now)
	},
	StateWaiting: func(s Snapshot, _ time.Time) bool {
		return s.Status == StatusWaiting
	},
	StateRejected: func(s Snapshot, _ time.Time) bool {
		return s.Status == StatusRejected
	},
}

// ParseState accepts the token exactly as the boundary received it.
// An empty token means ALL.
func ParseState(token string) (State, error) {
	if strings.TrimSpace(token) == "" {
		return StateAll, nil
	}
	s := State(token)
	if _, ok := predicates[s]; !ok {
		return "", &UnknownStateError{Token: token}
	}
	return s, nil
}

func (s State) Matches(snap Snapshot, now time.Time) bool {
	p, ok := predicates[s]
	return ok && p(snap, now)
}

// Classify keeps the rows matching state at now and returns them ordered by
// start, latest first. It works on whatever page it is handed; rows outside
// the page are never considered.
func Classify[T any](rows []T, state State, now time.Time, snapshot func(T) Snapshot) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if state.Matches(snapshot(r), now) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return snapshot(out[i]).Start.After(snapshot(out[j]).Start)
	})
	return out
}
