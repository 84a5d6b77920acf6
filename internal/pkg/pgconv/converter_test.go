//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"shareit/internal/pkg/pgconv"
	"shareit/internal/pkg/ptr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}

func TestPgCode(t *testing.T) {
	dup := &pgconn.PgError{Code: pgconv.CodeUniqueViolation}
	assert.Equal(t, pgconv.CodeUniqueViolation, pgconv.PgCode(fmt.Errorf("insert: %w", dup)))
	assert.Equal(t, "", pgconv.PgCode(errors.New("plain")))
}

func TestInt64PtrToPgtype(t *testing.T) {
	assert.False(t, pgconv.Int64PtrToPgtype(nil).Valid)

	v := pgconv.Int64PtrToPgtype(ptr.Of(int64(9)))
	assert.True(t, v.Valid)
	assert.Equal(t, int64(9), v.Int64)
	assert.Equal(t, int64(9), *ptr.Int64FromPgtype(v))
}
