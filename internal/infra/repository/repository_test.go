//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/tests/common/builder"
	dbmock "shareit/tests/mock/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

// =============================================================================
// Create
// =============================================================================

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        fakeRow
		wantID     int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: returns generated id", row: fakeRow{id: 42}, wantID: 42},
		{
			name:       "error: duplicate email",
			row:        fakeRow{err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database failure",
			row:        fakeRow{err: errors.New("connection reset")},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			mockDB.EXPECT().QueryRow(ctx, gomock.Any(), gomock.Any()).Return(tc.row)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			id, err := repository.NewUserRepository(mockDB).Create(ctx, u)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)

	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	b, err := booking.Reconstruct(0, 3, 4, start, start.Add(time.Hour), booking.StatusWaiting)
	require.NoError(t, err)

	mockDB.EXPECT().
		QueryRow(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sql string, args ...any) fakeRow {
			assert.Contains(t, sql, `INSERT INTO "bookings"`)
			assert.Contains(t, sql, `RETURNING "id"`)
			assert.Contains(t, args, any("WAITING"))
			return fakeRow{id: 9}
		})

	id, err := repository.NewBookingRepository(mockDB).Create(ctx, b)

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

// =============================================================================
// Update / Delete
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "error: booking not found", tag: pgconn.NewCommandTag("UPDATE 0"), expectKind: infra.KindNotFound},
		{name: "error: database failure", execErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			mockDB.EXPECT().Exec(ctx, gomock.Any(), gomock.Any()).Return(tc.tag, tc.execErr)

			err := repository.NewBookingRepository(mockDB).UpdateStatus(ctx, 5, booking.StatusApproved)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestItemRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		tag        pgconn.CommandTag
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: item deleted", tag: pgconn.NewCommandTag("DELETE 1")},
		{name: "error: item not found", tag: pgconn.NewCommandTag("DELETE 0"), expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			mockDB.EXPECT().
				Exec(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
					assert.Contains(t, sql, `DELETE FROM "items"`)
					assert.Equal(t, []any{int64(11)}, args)
					return tc.tag, nil
				})

			err := repository.NewItemRepository(mockDB).Delete(ctx, 11)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
