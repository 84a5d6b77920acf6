package shared

import "context"

type IdempotencyState string

const (
	IdempotencyPending   IdempotencyState = "pending"
	IdempotencyCompleted IdempotencyState = "completed"
)

// IdempotencyRecord is the stored outcome of a request made under an
// idempotency key. Status and Body are set once the state is completed.
type IdempotencyRecord struct {
	State       IdempotencyState `json:"state"`
	RequestHash string           `json:"request_hash"`
	Status      int              `json:"status,omitempty"`
	Body        []byte           `json:"body,omitempty"`
}

type IdempotencyStore interface {
	// Reserve claims key for a new request. When the key is already taken it
	// returns the existing record and acquired=false.
	Reserve(ctx context.Context, key, requestHash string) (existing *IdempotencyRecord, acquired bool, err error)
	Complete(ctx context.Context, key string, rec IdempotencyRecord) error
	// Release drops a reservation so the key can be retried.
	Release(ctx context.Context, key string) error
}
