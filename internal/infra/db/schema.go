package db

const (
	TableUsers    = "users"
	TableItems    = "items"
	TableBookings = "bookings"
	TableComments = "comments"
	TableRequests = "requests"
)

// Statement is any goqu dataset that renders to SQL.
type Statement interface {
	ToSQL() (string, []any, error)
}
