package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// Player owns the active player id and the aggregated dashboard snapshot.
// The snapshot is replaced wholesale on every fetch. Fetches carry a
// generation counter: a response is applied only if no newer fetch has been
// issued since, so the latest user-initiated fetch wins deterministically.
type Player struct {
	client *client.Client
	logger *slog.Logger

	mu        sync.Mutex
	playerID  int
	dashboard *model.DashboardSnapshot
	loading   bool
	errMsg    string
	gen       uint64
}

// NewPlayer creates a player dashboard store
func NewPlayer(c *client.Client, logger *slog.Logger) *Player {
	return &Player{
		client: c,
		logger: logger,
	}
}

// SetPlayerID sets the active player; ids below 1 clear it
func (s *Player) SetPlayerID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > 0 {
		s.playerID = id
	} else {
		s.playerID = 0
	}
}

// ApplyAuthSession primes the store from an authenticated player profile.
// A nil profile clears the store, covering logout and profile-less accounts.
func (s *Player) ApplyAuthSession(profile *model.PlayerProfile) {
	if profile == nil {
		s.Clear()
		return
	}
	s.SetPlayerID(profile.PlayerID)
}

// Clear resets the store to its initial state
func (s *Player) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = 0
	s.dashboard = nil
	s.loading = false
	s.errMsg = ""
	s.gen++
}

// PlayerID returns the active player id, false when unset
func (s *Player) PlayerID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerID, s.playerID > 0
}

// Dashboard returns the last applied snapshot, nil before the first fetch
func (s *Player) Dashboard() *model.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Loading reports whether a dashboard fetch is in flight
func (s *Player) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the stored error message, empty after a successful fetch
func (s *Player) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// FetchDashboard replaces the dashboard with the backend's current snapshot.
// Stale responses (a newer fetch was issued meanwhile) are discarded and
// reported as (nil, nil).
func (s *Player) FetchDashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	s.mu.Lock()
	id := s.playerID
	if id <= 0 {
		s.dashboard = nil
		s.errMsg = "Player ID is not set."
		s.mu.Unlock()
		return nil, model.ErrPlayerNotSet
	}
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var snapshot model.DashboardSnapshot
	err := s.client.Get(ctx, fmt.Sprintf("/player/%d/dashboard", id), &snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer fetch owns the loading flag now; it clears it when it
		// settles, so the stale branch must not touch it.
		s.logger.Debug("discarding stale dashboard response", slog.Int("player_id", id))
		return nil, nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to load dashboard.")
		return nil, err
	}
	s.dashboard = &snapshot
	return &snapshot, nil
}

// ClaimDaily claims the daily reward, then refetches the dashboard. The POST
// response body is discarded; the refetch is what makes the claim visible.
func (s *Player) ClaimDaily(ctx context.Context) error {
	id, err := s.beginAction()
	if err != nil {
		return err
	}

	if err := s.client.Post(ctx, fmt.Sprintf("/player/%d/claim-daily-reward", id), nil, nil); err != nil {
		s.recordFailure(err, "Failed to claim daily reward.")
		return err
	}

	_, err = s.FetchDashboard(ctx)
	return err
}

// Choose submits a quest choice, then refetches the dashboard
func (s *Player) Choose(ctx context.Context, choiceID string) error {
	id, err := s.beginAction()
	if err != nil {
		return err
	}

	req := model.ChooseRequest{ChoiceID: choiceID}
	if err := s.client.Post(ctx, fmt.Sprintf("/player/%d/quest/choose", id), req, nil); err != nil {
		s.recordFailure(err, "Failed to submit choice.")
		return err
	}

	_, err = s.FetchDashboard(ctx)
	return err
}

func (s *Player) beginAction() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerID <= 0 {
		s.errMsg = "Player ID is not set."
		return 0, model.ErrPlayerNotSet
	}
	s.loading = true
	s.errMsg = ""
	return s.playerID, nil
}

func (s *Player) recordFailure(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = errorMessage(err, fallback)
}
