//go:build unit

package commands_test

import (
	"context"
	"testing"

	domitem "shareit/internal/domain/item"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("links the item to an existing request", func(t *testing.T) {
		store := newMemStore()
		owner := store.addUser("Ann", "ann@example.com")
		reqID := store.id()
		store.requests[reqID] = shared.RequestSnapshot{ID: reqID, RequesterID: 99}
		uc := commands.NewItemCommands(store)

		res, err := uc.Create(ctx, owner, commands.CreateItemRequest{
			Name: "Ladder", Description: "3m", Available: true, RequestID: ptr.Of(reqID),
		})

		require.NoError(t, err)
		require.NotNil(t, store.items[res.ItemID].RequestID)
		assert.Equal(t, reqID, *store.items[res.ItemID].RequestID)
	})

	tests := []struct {
		name    string
		owner   func(s *memStore) int64
		req     commands.CreateItemRequest
		wantErr error
	}{
		{
			name:    "unknown owner",
			owner:   func(*memStore) int64 { return 77 },
			req:     commands.CreateItemRequest{Name: "x", Description: "y", Available: true},
			wantErr: commands.ErrUserNotFound,
		},
		{
			name:    "unknown request",
			owner:   func(s *memStore) int64 { return s.addUser("Ann", "ann@example.com") },
			req:     commands.CreateItemRequest{Name: "x", Description: "y", RequestID: ptr.Of(int64(500))},
			wantErr: commands.ErrRequestNotFound,
		},
		{
			name:    "blank name",
			owner:   func(s *memStore) int64 { return s.addUser("Ann", "ann@example.com") },
			req:     commands.CreateItemRequest{Name: "  ", Description: "y"},
			wantErr: domitem.ErrEmptyName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			owner := tt.owner(store)

			_, err := commands.NewItemCommands(store).Create(ctx, owner, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemCommands_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	owner := store.addUser("Ann", "ann@example.com")
	stranger := store.addUser("Bob", "bob@example.com")
	itemID := store.addItem(owner, true)
	uc := commands.NewItemCommands(store)

	t.Run("owner can toggle availability", func(t *testing.T) {
		require.NoError(t, uc.Update(ctx, owner, itemID, commands.UpdateItemRequest{Available: ptr.Of(false)}))
		assert.False(t, store.items[itemID].Available)
		assert.Equal(t, "Drill", store.items[itemID].Name)
	})

	t.Run("stranger sees not found on update", func(t *testing.T) {
		err := uc.Update(ctx, stranger, itemID, commands.UpdateItemRequest{Name: ptr.Of("Mine")})
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("stranger sees not found on delete", func(t *testing.T) {
		err := uc.Delete(ctx, stranger, itemID)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Contains(t, store.items, itemID)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, owner, itemID))
		assert.NotContains(t, store.items, itemID)
	})

	t.Run("missing item", func(t *testing.T) {
		assert.ErrorIs(t, uc.Delete(ctx, owner, itemID), commands.ErrItemNotFound)
	})
}
