// Package session maps opaque tokens to authenticated user ids. The token is
// the only thing handed to the client; everything else lives server-side in
// the configured Store.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists the token -> user id association. Implementations must treat
// deletion of an unknown token as success.
type Store interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// Lookup returns the user id for a live token. A hit refreshes the idle
	// deadline by ttl. Unknown and expired tokens report found=false.
	Lookup(ctx context.Context, token string, ttl time.Duration) (userID int64, found bool, err error)
	Delete(ctx context.Context, token string) error
}

// Manager issues, resolves and destroys sessions against a Store.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a Manager. A ttl of zero disables expiry.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Create generates a fresh opaque token for userID and stores the association.
func (m *Manager) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := m.store.Save(ctx, token, userID, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id behind token. Missing, expired and malformed
// tokens all come back as found=false; only store failures produce an error.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	return m.store.Lookup(ctx, token, m.ttl)
}

// Destroy removes the session. Destroying an unknown or already-destroyed
// token succeeds.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}
