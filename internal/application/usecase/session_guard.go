package usecase

import (
	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// usernameKey is session-scoped: it lives in the in-memory store and is
// gone when the process exits, like the browser's sessionStorage.
const usernameKey = "username"

// SessionGuard gates every protected operation on a stored access token.
// It performs no token validation of its own; a 401 from a gateway call
// is the only signal that a token went stale.
type SessionGuard struct {
	store        repository.LocalStoreRepository
	sessionStore repository.LocalStoreRepository
}

// NewSessionGuard creates a guard over the durable store and a separate
// session-scoped store for values that must not survive the process.
func NewSessionGuard(store, sessionStore repository.LocalStoreRepository) *SessionGuard {
	return &SessionGuard{store: store, sessionStore: sessionStore}
}

// AccessToken returns the stored access token, or ErrNotAuthenticated
// when none is present. Callers must not issue any network request on
// that error.
func (g *SessionGuard) AccessToken() (string, error) {
	token, ok := g.store.Get(repository.KeyAccessToken)
	if !ok || token == "" {
		return "", types.ErrNotAuthenticated
	}
	return token, nil
}

// RefreshToken returns the stored refresh token, if any.
func (g *SessionGuard) RefreshToken() (string, bool) {
	token, ok := g.store.Get(repository.KeyRefreshToken)
	return token, ok && token != ""
}

// SaveSession persists a freshly issued token pair.
func (g *SessionGuard) SaveSession(session entity.Session) error {
	if err := g.store.Set(repository.KeyAccessToken, session.AccessToken); err != nil {
		return err
	}
	return g.store.Set(repository.KeyRefreshToken, session.RefreshToken)
}

// SaveAccessToken replaces only the access token (refresh flow).
func (g *SessionGuard) SaveAccessToken(token string) error {
	return g.store.Set(repository.KeyAccessToken, token)
}

// SetUsername stores the username for this session only.
func (g *SessionGuard) SetUsername(username string) error {
	return g.sessionStore.Set(usernameKey, username)
}

// Username returns the session-scoped username, if known.
func (g *SessionGuard) Username() (string, bool) {
	name, ok := g.sessionStore.Get(usernameKey)
	return name, ok && name != ""
}

// Logout clears both tokens and the session username. No server-side
// invalidation call is made.
func (g *SessionGuard) Logout() error {
	if err := g.store.Remove(repository.KeyAccessToken); err != nil {
		return err
	}
	if err := g.store.Remove(repository.KeyRefreshToken); err != nil {
		return err
	}
	return g.sessionStore.Remove(usernameKey)
}
