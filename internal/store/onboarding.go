package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// Onboarding owns the first-time-user flow state. Fetch is idempotent-guarded:
// while one fetch is loading, further calls are no-ops returning nil, so a
// page cannot issue duplicate concurrent fetches.
type Onboarding struct {
	client *client.Client
	logger *slog.Logger

	mu      sync.Mutex
	state   *model.OnboardingState
	loading bool
	errMsg  string
}

// NewOnboarding creates an onboarding store
func NewOnboarding(c *client.Client, logger *slog.Logger) *Onboarding {
	return &Onboarding{
		client: c,
		logger: logger,
	}
}

// State returns the last fetched onboarding state, nil before the first fetch
func (s *Onboarding) State() *model.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a fetch is in flight
func (s *Onboarding) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the stored error message
func (s *Onboarding) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Fetch loads the onboarding state for the player. An unset player id clears
// the state silently; a call while another fetch is loading returns (nil, nil)
// without touching state or the network.
func (s *Onboarding) Fetch(ctx context.Context, playerID int) (*model.OnboardingState, error) {
	if playerID <= 0 {
		s.mu.Lock()
		s.state = nil
		s.errMsg = ""
		s.loading = false
		s.mu.Unlock()
		return nil, nil
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, nil
	}
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var state model.OnboardingState
	err := s.client.Get(ctx, fmt.Sprintf("/player/%d/onboarding", playerID), &state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to load the welcome flow.")
		return nil, err
	}
	s.state = &state
	return &state, nil
}

// Complete marks onboarding finished and replaces state with the response,
// which is expected to carry completed: true.
func (s *Onboarding) Complete(ctx context.Context, playerID int) (*model.OnboardingState, error) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var state model.OnboardingState
	err := s.client.Post(ctx, fmt.Sprintf("/player/%d/onboarding/complete", playerID), nil, &state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = errorMessage(err, "Failed to complete the welcome flow.")
		return nil, err
	}
	s.state = &state
	return &state, nil
}

// Reset restores the initial empty state, used when the player id unsets
func (s *Onboarding) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	s.loading = false
	s.errMsg = ""
}
