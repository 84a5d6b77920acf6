package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	ItemID   int64
	AuthorID int64
	Now      time.Time
}

// EligibilityChecker answers whether the author has rented the item: a
// booking on it that was not rejected and has already started.
type EligibilityChecker interface {
	HasRented(ctx context.Context, input EligibilityInput) (bool, error)
}
