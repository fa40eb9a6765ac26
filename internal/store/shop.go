package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// Shop owns the shop snapshot: wallet plus current offers. A purchase updates
// the wallet from the response; the page refetches the offer list to pick up
// ownership changes.
type Shop struct {
	client *client.Client
	logger *slog.Logger

	mu       sync.Mutex
	snapshot *model.ShopSnapshot
	loading  bool
	buying   int
	errMsg   string
	gen      uint64
}

// NewShop creates a shop store
func NewShop(c *client.Client, logger *slog.Logger) *Shop {
	return &Shop{
		client: c,
		logger: logger,
	}
}

// Snapshot returns the last fetched shop state, nil before the first fetch
func (s *Shop) Snapshot() *model.ShopSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Buying returns the offer id of an in-flight purchase, 0 when idle
func (s *Shop) Buying() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buying
}

// Error returns the stored error message
func (s *Shop) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Reset restores the initial empty state
func (s *Shop) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.loading = false
	s.buying = 0
	s.errMsg = ""
	s.gen++
}

// Fetch loads the wallet and offer list. Stale responses are discarded.
func (s *Shop) Fetch(ctx context.Context, playerID int) (*model.ShopSnapshot, error) {
	if playerID <= 0 {
		return nil, model.ErrPlayerNotSet
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var snapshot model.ShopSnapshot
	err := s.client.Get(ctx, fmt.Sprintf("/player/%d/shop", playerID), &snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding stale shop response", slog.Int("player_id", playerID))
		return nil, nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to load the shop.")
		return nil, err
	}
	s.snapshot = &snapshot
	return &snapshot, nil
}

// Buy purchases an offer and applies the returned wallet to the snapshot
func (s *Shop) Buy(ctx context.Context, playerID, offerID int) (*model.PurchaseResponse, error) {
	if playerID <= 0 {
		return nil, model.ErrPlayerNotSet
	}

	s.mu.Lock()
	s.buying = offerID
	s.errMsg = ""
	s.mu.Unlock()

	var resp model.PurchaseResponse
	path := fmt.Sprintf("/player/%d/shop/buy", playerID)
	err := s.client.Post(ctx, path, model.PurchaseRequest{OfferID: offerID}, &resp)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.buying = 0
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to complete the purchase.")
		return nil, err
	}
	if s.snapshot != nil {
		s.snapshot.Wallet = resp.Wallet
	}
	return &resp, nil
}
