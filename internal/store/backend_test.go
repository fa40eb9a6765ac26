package store

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/testutil"
)

// recordedRequest is one request the fake backend received
type recordedRequest struct {
	Method string
	Path   string
	Body   string
	Auth   string
}

// fakeBackend is an in-memory stand-in for the game API. Handlers are
// registered per route; every request is recorded so tests can assert on the
// exact traffic the stores produced.
type fakeBackend struct {
	t      *testing.T
	router *mux.Router
	server *httptest.Server

	mu   sync.Mutex
	reqs []recordedRequest
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		t:      t,
		router: mux.NewRouter(),
	}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.reqs = append(b.reqs, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   string(body),
			Auth:   r.Header.Get("Authorization"),
		})
		b.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

// respond registers a route that always answers with status and a JSON body
func (b *fakeBackend) respond(method, path string, status int, body any) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	}).Methods(method)
}

// respondFunc registers a custom handler for a route
func (b *fakeBackend) respondFunc(method, path string, handler http.HandlerFunc) {
	b.router.HandleFunc(path, handler).Methods(method)
}

// requests returns a snapshot of the recorded traffic
func (b *fakeBackend) requests() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedRequest, len(b.reqs))
	copy(out, b.reqs)
	return out
}

// client builds a client pointed at the fake backend
func (b *fakeBackend) client() *client.Client {
	b.t.Helper()
	c, err := client.New(b.server.URL, client.WithLogger(testutil.NopLogger()))
	require.NoError(b.t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
