//go:build unit

package readstore

import (
	"testing"
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, ds *goqu.SelectDataset) (string, []any) {
	t.Helper()
	query, args, err := ds.Prepared(true).ToSQL()
	require.NoError(t, err)
	return query, args
}

func TestBookerBookingsQuery(t *testing.T) {
	query, args := render(t, paged(bookerBookingsQuery(7), readmodel.NewPage(4, 2)))

	assert.Contains(t, query, `FROM "bookings" AS "b"`)
	assert.Contains(t, query, `INNER JOIN "items" AS "i"`)
	assert.Contains(t, query, `INNER JOIN "users" AS "u"`)
	assert.Contains(t, query, `"b"."booker_id" = $1`)
	assert.Contains(t, query, `ORDER BY "b"."start_date" DESC`)
	assert.Contains(t, query, "LIMIT")
	assert.Contains(t, query, "OFFSET")
	assert.Contains(t, args, any(int64(7)))
}

func TestOwnerBookingsQuery(t *testing.T) {
	query, _ := render(t, ownerBookingsQuery(3))

	assert.Contains(t, query, `"i"."owner_id" = $1`)
	assert.NotContains(t, query, "LIMIT")
}

func TestSearchItemsQuery(t *testing.T) {
	query, args := render(t, searchItemsQuery("drill"))

	assert.Contains(t, query, `"is_available" IS TRUE`)
	assert.Contains(t, query, `"name" ILIKE`)
	assert.Contains(t, query, `"description" ILIKE`)
	assert.Contains(t, query, `ORDER BY "id" ASC`)
	assert.Contains(t, args, any("%drill%"))
}

func TestApprovedSlotsQuery(t *testing.T) {
	query, args := render(t, approvedSlotsQuery([]int64{1, 2}))

	assert.Contains(t, query, `"item_id" IN ($1, $2)`)
	assert.Contains(t, query, `ORDER BY "start_date" ASC`)
	assert.Contains(t, args, any("APPROVED"))
}

func TestRentalCountQuery(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	query, args := render(t, rentalCountQuery(5, 9, now))

	assert.Contains(t, query, "COUNT(*)")
	assert.Contains(t, query, `"status" != `)
	assert.Contains(t, query, `"start_date" < `)
	assert.Contains(t, args, any("REJECTED"))
	assert.Contains(t, args, any(int64(5)))
	assert.Contains(t, args, any(int64(9)))
}
