package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallencrown/crown-cli/internal/model"
	"github.com/fallencrown/crown-cli/internal/storage"
	"github.com/fallencrown/crown-cli/internal/storage/file"
)

// gameBackend fakes the game API for whole-command tests, recording the
// requests each command produces.
type gameBackend struct {
	router *mux.Router
	server *httptest.Server

	mu    sync.Mutex
	paths []string
}

func newGameBackend(t *testing.T) *gameBackend {
	t.Helper()

	b := &gameBackend{router: mux.NewRouter()}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.paths = append(b.paths, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *gameBackend) respond(method, path string, status int, body any) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}).Methods(method)
}

func (b *gameBackend) requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

// seedSession persists a signed-in session into the data dir so commands that
// require a player find one on hydrate.
func seedSession(t *testing.T, dataDir string) {
	t.Helper()

	name := "Rosalind"
	session := model.Session{
		Token:  "tok-cli",
		User:   &model.User{ID: 1, Login: "rose"},
		Player: &model.PlayerProfile{PlayerID: 7, Username: &name},
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, file.New(dataDir).Save(storage.KeySession, data))
}

// runCrown executes one command against the backend, as the binary would
func runCrown(t *testing.T, backend *gameBackend, dataDir string, args ...string) error {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", backend.server.URL, "--data-dir", dataDir}, args...))
	return cmd.Execute()
}

func shopSnapshotBody(gold int) map[string]any {
	return map[string]any{
		"wallet": map[string]any{"gold": gold, "gems": 0},
		"offers": []map[string]any{
			{"offer_id": 31, "item_name": "Velvet Cloak", "rarity": "rare", "price_gold": 300, "slot": "chest"},
		},
	}
}

func TestShopBuy_InsufficientFundsMessage(t *testing.T) {
	backend := newGameBackend(t)
	backend.respond(http.MethodPost, "/player/{id}/shop/buy", http.StatusPaymentRequired,
		map[string]string{"detail": "not enough gold"})

	dataDir := t.TempDir()
	seedSession(t, dataDir)

	err := runCrown(t, backend, dataDir, "shop", "buy", "31")
	require.Error(t, err)
	assert.Equal(t, msgNotEnoughGold, err.Error())

	// The failed purchase does not trigger the post-purchase refetch
	assert.Equal(t, []string{"POST /player/7/shop/buy"}, backend.requests())
}

func TestShopBuy_SuccessRefetchesOffers(t *testing.T) {
	backend := newGameBackend(t)
	backend.respond(http.MethodPost, "/player/{id}/shop/buy", http.StatusOK, map[string]any{
		"status":  "purchased",
		"wallet":  map[string]any{"gold": 200, "gems": 0},
		"granted": map[string]any{"inventory_item_id": 99, "catalog_item_id": 31},
	})
	backend.respond(http.MethodGet, "/player/{id}/shop", http.StatusOK, shopSnapshotBody(200))

	dataDir := t.TempDir()
	seedSession(t, dataDir)

	err := runCrown(t, backend, dataDir, "shop", "buy", "31")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /player/7/shop/buy",
		"GET /player/7/shop",
	}, backend.requests())
}

func TestShopBuy_RequiresSession(t *testing.T) {
	backend := newGameBackend(t)

	err := runCrown(t, backend, t.TempDir(), "shop", "buy", "31")
	require.ErrorIs(t, err, model.ErrNoSession)
	assert.Empty(t, backend.requests())
}

func TestShopBuy_RejectsBadOfferID(t *testing.T) {
	backend := newGameBackend(t)

	dataDir := t.TempDir()
	seedSession(t, dataDir)

	err := runCrown(t, backend, dataDir, "shop", "buy", "cloak")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid offer id")
	assert.Empty(t, backend.requests())
}
