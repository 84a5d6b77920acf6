//go:build unit

package idempotency

import (
	"context"
	"testing"
	"time"

	"shareit/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	t.Run("first reservation acquires the key", func(t *testing.T) {
		existing, acquired, err := store.Reserve(ctx, "1:abc", "hash-1")

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.Nil(t, existing)
		assert.True(t, s.Exists(keyPrefix+"1:abc"))
		assert.Equal(t, time.Hour, s.TTL(keyPrefix+"1:abc"))
	})

	t.Run("second reservation sees the pending record", func(t *testing.T) {
		existing, acquired, err := store.Reserve(ctx, "1:abc", "hash-1")

		require.NoError(t, err)
		assert.False(t, acquired)
		require.NotNil(t, existing)
		assert.Equal(t, shared.IdempotencyPending, existing.State)
		assert.Equal(t, "hash-1", existing.RequestHash)
	})

	t.Run("completed record is replayed", func(t *testing.T) {
		err := store.Complete(ctx, "1:abc", shared.IdempotencyRecord{
			RequestHash: "hash-1",
			Status:      201,
			Body:        []byte(`{"id":5}`),
		})
		require.NoError(t, err)

		existing, acquired, err := store.Reserve(ctx, "1:abc", "hash-1")

		require.NoError(t, err)
		assert.False(t, acquired)
		require.NotNil(t, existing)
		assert.Equal(t, shared.IdempotencyCompleted, existing.State)
		assert.Equal(t, 201, existing.Status)
		assert.JSONEq(t, `{"id":5}`, string(existing.Body))
	})

	t.Run("released key can be reserved again", func(t *testing.T) {
		_, acquired, err := store.Reserve(ctx, "2:def", "hash-2")
		require.NoError(t, err)
		require.True(t, acquired)

		require.NoError(t, store.Release(ctx, "2:def"))

		_, acquired, err = store.Reserve(ctx, "2:def", "hash-2")
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("reservation expires with the ttl", func(t *testing.T) {
		_, acquired, err := store.Reserve(ctx, "3:ghi", "hash-3")
		require.NoError(t, err)
		require.True(t, acquired)

		s.FastForward(2 * time.Hour)

		_, acquired, err = store.Reserve(ctx, "3:ghi", "hash-3")
		require.NoError(t, err)
		assert.True(t, acquired)
	})
}
