package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallencrown/crown-cli/internal/model"
	"github.com/fallencrown/crown-cli/internal/testutil"
)

func inventoryBody(equipped bool) []map[string]any {
	return []map[string]any{
		{"id": 21, "name": "Straw Hat", "slot": "head", "rarity": "common", "cosmetic": true, "is_equipped": equipped},
		{"id": 22, "name": "Iron Hoe", "slot": "weapon", "rarity": "uncommon", "is_equipped": false},
	}
}

func newInventoryFixture(t *testing.T) (*fakeBackend, *Inventory) {
	t.Helper()
	backend := newFakeBackend(t)
	return backend, NewInventory(backend.client(), testutil.NopLogger())
}

func TestInventory_Fetch(t *testing.T) {
	backend, inventory := newInventoryFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/inventory", http.StatusOK, inventoryBody(false))

	items, err := inventory.Fetch(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Straw Hat", items[0].Name)
	assert.Equal(t, items, inventory.Items())

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/inventory", reqs[0].Path)
}

func TestInventory_FetchWithoutPlayerID(t *testing.T) {
	backend, inventory := newInventoryFixture(t)

	_, err := inventory.Fetch(context.Background(), 0)
	require.ErrorIs(t, err, model.ErrPlayerNotSet)
	assert.Empty(t, backend.requests())
}

func TestInventory_EquipReplacesList(t *testing.T) {
	backend, inventory := newInventoryFixture(t)
	backend.respond(http.MethodPost, "/player/{id}/inventory/equip", http.StatusOK, map[string]any{
		"status":    "ok",
		"inventory": inventoryBody(true),
	})

	items, err := inventory.Equip(context.Background(), 7, 21)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsEquipped)
	assert.Equal(t, items, inventory.Items())

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/inventory/equip", reqs[0].Path)
	assert.JSONEq(t, `{"item_id":21}`, reqs[0].Body)
}

func TestInventory_Unequip(t *testing.T) {
	backend, inventory := newInventoryFixture(t)
	backend.respond(http.MethodPost, "/player/{id}/inventory/unequip", http.StatusOK, map[string]any{
		"status":    "ok",
		"inventory": inventoryBody(false),
	})

	items, err := inventory.Unequip(context.Background(), 7, 21)
	require.NoError(t, err)
	assert.False(t, items[0].IsEquipped)

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/inventory/unequip", reqs[0].Path)
	assert.JSONEq(t, `{"item_id":21}`, reqs[0].Body)
}

func TestInventory_MutationFailureKeepsList(t *testing.T) {
	backend, inventory := newInventoryFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/inventory", http.StatusOK, inventoryBody(false))
	backend.respond(http.MethodPost, "/player/{id}/inventory/equip", http.StatusConflict,
		map[string]string{"detail": "slot already filled"})

	_, err := inventory.Fetch(context.Background(), 7)
	require.NoError(t, err)

	_, err = inventory.Equip(context.Background(), 7, 21)
	require.Error(t, err)
	assert.Equal(t, "slot already filled", inventory.Error())
	assert.Len(t, inventory.Items(), 2)
}
