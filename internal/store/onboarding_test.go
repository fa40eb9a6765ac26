package store

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallencrown/crown-cli/internal/testutil"
)

func onboardingBody(completed bool) map[string]any {
	return map[string]any{
		"player_id": 7,
		"completed": completed,
		"steps": []map[string]any{
			{"title": "Welcome", "body": "This is your farm."},
			{"title": "First seed", "body": "Plant something."},
		},
		"starter_seed_charges": 1,
		"current_node": map[string]any{
			"node_id": "n1",
			"title":   "The Broken Gate",
		},
	}
}

func newOnboardingFixture(t *testing.T) (*fakeBackend, *Onboarding) {
	t.Helper()
	backend := newFakeBackend(t)
	return backend, NewOnboarding(backend.client(), testutil.NopLogger())
}

func TestOnboarding_Fetch(t *testing.T) {
	backend, onboarding := newOnboardingFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/onboarding", http.StatusOK, onboardingBody(false))

	state, err := onboarding.Fetch(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.False(t, state.Completed)
	assert.Len(t, state.Steps, 2)
	assert.Equal(t, 1, state.StarterSeedCharges)
	require.NotNil(t, state.CurrentNode)
	assert.Equal(t, "The Broken Gate", state.CurrentNode.Title)
	assert.Same(t, state, onboarding.State())

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/onboarding", reqs[0].Path)
}

func TestOnboarding_FetchWithoutPlayerClearsState(t *testing.T) {
	backend, onboarding := newOnboardingFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/onboarding", http.StatusOK, onboardingBody(false))

	_, err := onboarding.Fetch(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, onboarding.State())

	state, err := onboarding.Fetch(context.Background(), 0)
	assert.NoError(t, err)
	assert.Nil(t, state)
	assert.Nil(t, onboarding.State())
}

func TestOnboarding_ConcurrentFetchIsSingleFlight(t *testing.T) {
	backend, onboarding := newOnboardingFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	backend.respondFunc(http.MethodGet, "/player/{id}/onboarding", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		writeJSON(w, http.StatusOK, onboardingBody(false))
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		state, err := onboarding.Fetch(context.Background(), 7)
		assert.NoError(t, err)
		assert.NotNil(t, state)
	}()

	// While the first fetch is held, a second one is a silent no-op
	<-entered
	state, err := onboarding.Fetch(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, state)

	close(release)
	wg.Wait()

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.NotNil(t, onboarding.State())
}

func TestOnboarding_Complete(t *testing.T) {
	backend, onboarding := newOnboardingFixture(t)
	backend.respond(http.MethodPost, "/player/{id}/onboarding/complete", http.StatusOK, onboardingBody(true))

	state, err := onboarding.Complete(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.Completed)
	assert.True(t, onboarding.State().Completed)

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/onboarding/complete", reqs[0].Path)
	assert.JSONEq(t, `{}`, reqs[0].Body)
}

func TestOnboarding_FetchFailure(t *testing.T) {
	backend, onboarding := newOnboardingFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/onboarding", http.StatusInternalServerError,
		map[string]string{"detail": "boom"})

	state, err := onboarding.Fetch(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, state)
	assert.Equal(t, "boom", onboarding.Error())
	assert.False(t, onboarding.Loading())
}
