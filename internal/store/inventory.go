package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// Inventory owns the player's item list. Equip and unequip replace the list
// from the mutation response rather than patching single items.
type Inventory struct {
	client *client.Client
	logger *slog.Logger

	mu      sync.Mutex
	items   []model.InventoryItem
	loading bool
	errMsg  string
	gen     uint64
}

// NewInventory creates an inventory store
func NewInventory(c *client.Client, logger *slog.Logger) *Inventory {
	return &Inventory{
		client: c,
		logger: logger,
	}
}

// Items returns the last fetched inventory
func (s *Inventory) Items() []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Error returns the stored error message
func (s *Inventory) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Reset restores the initial empty state
func (s *Inventory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.errMsg = ""
	s.gen++
}

// Fetch loads the full inventory. Stale responses are discarded.
func (s *Inventory) Fetch(ctx context.Context, playerID int) ([]model.InventoryItem, error) {
	if playerID <= 0 {
		return nil, model.ErrPlayerNotSet
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var items []model.InventoryItem
	err := s.client.Get(ctx, fmt.Sprintf("/player/%d/inventory", playerID), &items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding stale inventory response", slog.Int("player_id", playerID))
		return nil, nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to load inventory.")
		return nil, err
	}
	s.items = items
	return items, nil
}

// Equip equips an item and replaces the inventory from the response
func (s *Inventory) Equip(ctx context.Context, playerID, itemID int) ([]model.InventoryItem, error) {
	return s.mutate(ctx, playerID, itemID, "equip", "Failed to equip the item.")
}

// Unequip unequips an item and replaces the inventory from the response
func (s *Inventory) Unequip(ctx context.Context, playerID, itemID int) ([]model.InventoryItem, error) {
	return s.mutate(ctx, playerID, itemID, "unequip", "Failed to unequip the item.")
}

func (s *Inventory) mutate(ctx context.Context, playerID, itemID int, op, fallback string) ([]model.InventoryItem, error) {
	if playerID <= 0 {
		return nil, model.ErrPlayerNotSet
	}

	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()

	var resp model.InventoryMutationResponse
	path := fmt.Sprintf("/player/%d/inventory/%s", playerID, op)
	err := s.client.Post(ctx, path, model.EquipRequest{ItemID: itemID}, &resp)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = errorMessage(err, fallback)
		return nil, err
	}
	s.items = resp.Inventory
	return resp.Inventory, nil
}
