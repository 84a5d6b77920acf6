//go:build unit

package commands_test

import (
	"context"
	"testing"

	domuser "shareit/internal/domain/user"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid user", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewUserCommands(store)

		res, err := uc.Create(ctx, commands.CreateUserRequest{Name: "Ann", Email: "ann@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", store.users[res.UserID].Email)
	})

	t.Run("rejects a duplicate email as conflict", func(t *testing.T) {
		store := newMemStore()
		store.addUser("Ann", "ann@example.com")
		uc := commands.NewUserCommands(store)

		_, err := uc.Create(ctx, commands.CreateUserRequest{Name: "Other", Email: "ann@example.com"})

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("rejects an invalid email before touching storage", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewUserCommands(store)

		_, err := uc.Create(ctx, commands.CreateUserRequest{Name: "Ann", Email: "ann"})

		assert.ErrorIs(t, err, domuser.ErrInvalidEmail)
		assert.Empty(t, store.users)
	})
}

func TestUserCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only the given fields", func(t *testing.T) {
		store := newMemStore()
		id := store.addUser("Ann", "ann@example.com")
		uc := commands.NewUserCommands(store)

		require.NoError(t, uc.Update(ctx, id, commands.UpdateUserRequest{Name: ptr.Of("Anna")}))

		assert.Equal(t, "Anna", store.users[id].Name)
		assert.Equal(t, "ann@example.com", store.users[id].Email)
	})

	t.Run("keeping the own email is not a conflict", func(t *testing.T) {
		store := newMemStore()
		id := store.addUser("Ann", "ann@example.com")
		uc := commands.NewUserCommands(store)

		assert.NoError(t, uc.Update(ctx, id, commands.UpdateUserRequest{Email: ptr.Of("ann@example.com")}))
	})

	t.Run("taking another user's email is a conflict", func(t *testing.T) {
		store := newMemStore()
		id := store.addUser("Ann", "ann@example.com")
		store.addUser("Bob", "bob@example.com")
		uc := commands.NewUserCommands(store)

		err := uc.Update(ctx, id, commands.UpdateUserRequest{Email: ptr.Of("bob@example.com")})

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := commands.NewUserCommands(newMemStore())

		err := uc.Update(ctx, 42, commands.UpdateUserRequest{Name: ptr.Of("x")})

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	uc := commands.NewUserCommands(newMemStore())

	assert.ErrorIs(t, uc.Delete(context.Background(), 42), commands.ErrUserNotFound)
}
