package booking

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the approval transition has already happened.
func (s Status) IsDecided() bool {
	return s != StatusWaiting
}
