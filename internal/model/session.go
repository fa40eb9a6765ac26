package model

// User is the authenticated account attached to a session
type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	IsAdmin  bool   `json:"is_admin"`
	PlayerID *int   `json:"player_id,omitempty"`
}

// Session is the client identity held from login until logout.
// Token and User are both present or both absent, never one without the other.
type Session struct {
	Token  string         `json:"token"`
	User   *User          `json:"user"`
	Player *PlayerProfile `json:"player,omitempty"`
}

// Valid reports whether the session satisfies the token/user invariant
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	HeroName string `json:"hero_name"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse is the backend's response to register and login
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	User        *User          `json:"user"`
	Player      *PlayerProfile `json:"player,omitempty"`
}

// Session converts an auth response into a persistable session
func (r *AuthResponse) Session() *Session {
	return &Session{
		Token:  r.AccessToken,
		User:   r.User,
		Player: r.Player,
	}
}
