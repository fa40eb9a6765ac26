package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
	"github.com/fallencrown/crown-cli/internal/storage"
)

// Auth owns the session: token, user and player profile. It is a two-state
// machine, unauthenticated or authenticated, and enforces the invariant that
// token and user are both present or both absent. On every transition it
// re-primes the injected client's token and the player store, and keeps the
// durable session key in sync.
type Auth struct {
	client  *client.Client
	storage storage.Storage
	player  *Player
	logger  *slog.Logger

	mu      sync.Mutex
	session *model.Session
	loading bool
	errMsg  string
}

// NewAuth creates an auth session store
func NewAuth(c *client.Client, st storage.Storage, player *Player, logger *slog.Logger) *Auth {
	return &Auth{
		client:  c,
		storage: st,
		player:  player,
		logger:  logger,
	}
}

// Register creates a new hero account and enters the authenticated state
func (s *Auth) Register(ctx context.Context, req model.RegisterRequest) (*model.Session, error) {
	return s.authenticate(ctx, "/auth/register", req, "Could not create the hero.")
}

// Login authenticates an existing account
func (s *Auth) Login(ctx context.Context, req model.LoginRequest) (*model.Session, error) {
	return s.authenticate(ctx, "/auth/login", req, "Could not sign in.")
}

func (s *Auth) authenticate(ctx context.Context, path string, req any, fallback string) (*model.Session, error) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var resp model.AuthResponse
	if err := s.client.Post(ctx, path, req, &resp); err != nil {
		s.mu.Lock()
		s.loading = false
		s.errMsg = errorMessage(err, fallback)
		s.mu.Unlock()
		return nil, err
	}

	session := resp.Session()
	if !session.Valid() {
		err := fmt.Errorf("%w: auth response missing token or user", model.ErrSessionMalformed)
		s.clearSession()
		s.mu.Lock()
		s.errMsg = errorMessage(err, fallback)
		s.mu.Unlock()
		return nil, err
	}

	s.applySession(session)
	return session, nil
}

// Hydrate restores a persisted session on startup. Absent, malformed or
// partial data leaves the store unauthenticated without recording an error;
// malformed data is also removed from storage.
func (s *Auth) Hydrate() bool {
	data, ok, err := s.storage.Load(storage.KeySession)
	if err != nil {
		s.logger.Warn("could not read persisted session", slog.String("error", err.Error()))
		return false
	}
	if !ok {
		return false
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil || !session.Valid() {
		_ = s.storage.Delete(storage.KeySession)
		return false
	}

	s.client.SetToken(session.Token)
	s.player.ApplyAuthSession(session.Player)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	s.loading = false
	s.errMsg = ""
	return true
}

// Logout returns to the unauthenticated state: token cleared in the client,
// player store reset, durable session key removed.
func (s *Auth) Logout() error {
	s.clearSession()
	return s.storage.Delete(storage.KeySession)
}

// ClearError drops the stored error message
func (s *Auth) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// Session returns the current session, nil when unauthenticated
func (s *Auth) Session() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Authenticated reports whether a session is held
func (s *Auth) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Valid()
}

// Loading reports whether a login or register call is in flight
func (s *Auth) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the stored error message, empty after a successful transition
func (s *Auth) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// applySession enters the authenticated state: primes the client token,
// pushes the player profile into the player store and persists the session.
func (s *Auth) applySession(session *model.Session) {
	s.client.SetToken(session.Token)
	s.player.ApplyAuthSession(session.Player)

	if data, err := json.Marshal(session); err == nil {
		if err := s.storage.Save(storage.KeySession, data); err != nil {
			s.logger.Warn("could not persist session", slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.loading = false
	s.errMsg = ""
}

func (s *Auth) clearSession() {
	s.client.SetToken("")
	s.player.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.loading = false
	s.errMsg = ""
}
