// Package session manages the client's auth token lifecycle: decode,
// expiry check, persistence and logout.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidToken covers malformed payloads, missing identity fields and
// expired tokens alike; all of them force logout semantics.
var ErrInvalidToken = errors.New("session: invalid or expired token")

// User is the identity decoded from the token payload.
type User struct {
	ID    string
	Email string
	Name  string
}

// Manager holds the current auth session. It is constructed explicitly and
// passed to whatever needs it; there is no package-level state.
type Manager struct {
	mu       sync.Mutex
	store    TokenStore
	log      *zap.Logger
	token    string
	user     *User
	authed   bool
	onChange []func(authenticated bool)
}

func NewManager(store TokenStore, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// decodeToken parses the token payload without verifying the signature.
// The client treats the token as informational; the server re-validates it
// on every request.
func decodeToken(token string) (*User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if id == "" || email == "" || name == "" {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(time.Now()) {
		return nil, ErrInvalidToken
	}

	return &User{ID: id, Email: email, Name: name}, nil
}

// SetToken validates and adopts a token. An invalid or expired token runs
// full logout semantics; the session is never left half authenticated.
func (m *Manager) SetToken(token string) error {
	user, err := decodeToken(token)
	if err != nil {
		m.log.Warn("rejecting token", zap.Error(err))
		m.Logout()
		return err
	}

	m.mu.Lock()
	if err := m.store.Save(token); err != nil {
		m.mu.Unlock()
		m.log.Error("failed to persist token", zap.Error(err))
		m.Logout()
		return err
	}
	m.token = token
	m.user = user
	m.authed = true
	m.mu.Unlock()

	m.notify(true)
	return nil
}

// Logout clears the persisted token and the in-memory identity.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasAuthed := m.authed
	if err := m.store.Clear(); err != nil {
		m.log.Warn("failed to clear persisted token", zap.Error(err))
	}
	m.token = ""
	m.user = nil
	m.authed = false
	m.mu.Unlock()

	if wasAuthed {
		m.notify(false)
	}
}

// Initialize restores a persisted session at startup, discarding any token
// that no longer passes the same validation SetToken applies.
func (m *Manager) Initialize() {
	token, err := m.store.Load()
	if err != nil || token == "" {
		return
	}

	user, err := decodeToken(token)
	if err != nil {
		m.log.Info("discarding stale token")
		_ = m.store.Clear()
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.authed = true
	m.mu.Unlock()

	m.notify(true)
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authed
}

// Current returns the decoded identity, if any.
func (m *Manager) Current() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// OnChange registers a callback fired after every authenticated/guest
// transition. The cart store uses this to swap backends and reconcile.
func (m *Manager) OnChange(fn func(authenticated bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

func (m *Manager) notify(authenticated bool) {
	m.mu.Lock()
	subs := make([]func(bool), len(m.onChange))
	copy(subs, m.onChange)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(authenticated)
	}
}
