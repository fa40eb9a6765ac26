package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// FarmAction tags the single write operation currently in flight. The page
// layer disables competing triggers while it is non-empty.
type FarmAction string

// Farm action tags
const (
	FarmActionPlant   FarmAction = "plant"
	FarmActionHarvest FarmAction = "harvest"
	FarmActionUnlock  FarmAction = "unlock"
	FarmActionUpgrade FarmAction = "upgrade"
	FarmActionRefill  FarmAction = "refill"
)

// Farm owns the farm snapshot and issues farm actions. Every action follows
// the same protocol: set the action tag and clear the error, POST, then on
// success replace the farm wholesale with the returned state; on either
// outcome the tag is cleared before the method returns. A second action
// while one is in flight is rejected with model.ErrActionInFlight instead of
// silently overwriting the first one's tag.
type Farm struct {
	client *client.Client
	logger *slog.Logger

	mu          sync.Mutex
	farm        *model.FarmSnapshot
	loading     bool
	action      FarmAction
	errMsg      string
	lastMessage string
	gen         uint64
}

// NewFarm creates a farm store
func NewFarm(c *client.Client, logger *slog.Logger) *Farm {
	return &Farm{
		client: c,
		logger: logger,
	}
}

// Reset restores the initial empty state
func (s *Farm) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farm = nil
	s.loading = false
	s.action = ""
	s.errMsg = ""
	s.lastMessage = ""
	s.gen++
}

// Farm returns the last applied snapshot, nil before the first fetch
func (s *Farm) Farm() *model.FarmSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.farm
}

// Action returns the in-flight action tag, empty when idle
func (s *Farm) Action() FarmAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.action
}

// Error returns the stored error message
func (s *Farm) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// LastMessage returns the message of the last successful action
func (s *Farm) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMessage
}

// FetchFarm replaces the farm with the backend's current state. Stale
// responses are discarded, reported as (nil, nil).
func (s *Farm) FetchFarm(ctx context.Context, playerID int) (*model.FarmSnapshot, error) {
	if playerID <= 0 {
		s.mu.Lock()
		s.farm = nil
		s.errMsg = "Player ID is not set."
		s.mu.Unlock()
		return nil, model.ErrPlayerNotSet
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var snapshot model.FarmSnapshot
	err := s.client.Get(ctx, fmt.Sprintf("/farm/%d", playerID), &snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding stale farm response", slog.Int("player_id", playerID))
		return nil, nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to load the farm.")
		return nil, err
	}
	s.farm = &snapshot
	return &snapshot, nil
}

// PlantCrop plants the given plant type into a plot
func (s *Farm) PlantCrop(ctx context.Context, playerID, plotID, plantTypeID int) (*model.FarmActionResponse, error) {
	return s.doAction(ctx, FarmActionPlant,
		fmt.Sprintf("/farm/%d/plant", playerID),
		model.PlantCropRequest{PlotID: plotID, PlantTypeID: plantTypeID},
		"Failed to plant the crop.")
}

// HarvestCrop harvests the crop in a plot
func (s *Farm) HarvestCrop(ctx context.Context, playerID, plotID int) (*model.FarmActionResponse, error) {
	return s.doAction(ctx, FarmActionHarvest,
		fmt.Sprintf("/farm/%d/harvest", playerID),
		model.HarvestCropRequest{PlotID: plotID},
		"Failed to harvest the crop.")
}

// UnlockPlot unlocks a locked plot
func (s *Farm) UnlockPlot(ctx context.Context, playerID, plotID int) (*model.FarmActionResponse, error) {
	return s.doAction(ctx, FarmActionUnlock,
		fmt.Sprintf("/farm/%d/plots/%d/unlock", playerID, plotID),
		nil,
		"Failed to unlock the plot.")
}

// UpgradeTool upgrades the farming tool
func (s *Farm) UpgradeTool(ctx context.Context, playerID int) (*model.FarmActionResponse, error) {
	return s.doAction(ctx, FarmActionUpgrade,
		fmt.Sprintf("/farm/%d/tool/upgrade", playerID),
		nil,
		"Failed to upgrade the tool.")
}

// RefillEnergy refills farm energy by the given amount
func (s *Farm) RefillEnergy(ctx context.Context, playerID, amount int) (*model.FarmActionResponse, error) {
	return s.doAction(ctx, FarmActionRefill,
		fmt.Sprintf("/farm/%d/energy/refill", playerID),
		model.RefillEnergyRequest{Amount: amount},
		"Failed to refill energy.")
}

func (s *Farm) doAction(ctx context.Context, action FarmAction, path string, body any, fallback string) (*model.FarmActionResponse, error) {
	s.mu.Lock()
	if s.action != "" {
		s.mu.Unlock()
		return nil, model.ErrActionInFlight
	}
	s.action = action
	s.errMsg = ""
	s.mu.Unlock()

	var resp model.FarmActionResponse
	err := s.client.Post(ctx, path, body, &resp)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.action = ""
	if err != nil {
		s.errMsg = errorMessage(err, fallback)
		return nil, err
	}
	s.farm = &resp.State
	s.lastMessage = resp.Message
	return &resp, nil
}
