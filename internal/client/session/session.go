// Package session persists the signed-in user's identity across restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

// Key is the fixed storage key of the session record.
const Key = "@user_session"

// savedAtKey records when the session was last written.
const savedAtKey = Key + "_saved_at"

// Store is the subset of the key/value store the manager needs.
// metadata.Repository satisfies it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}

// Manager loads, saves and clears the persisted session. It keeps no copy
// in memory, so Load always reflects the store.
type Manager struct {
	store Store
	log   logging.Logger
	now   func() time.Time
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log.With("component", "session"), now: time.Now}
}

// Load returns the persisted session, or (nil, false) when there is none.
// Read, decode and validation failures are logged and reported as absent;
// they never reach the caller.
func (m *Manager) Load(ctx context.Context) (*models.Session, bool) {
	raw, err := m.store.Get(ctx, Key)
	if err != nil {
		m.log.Warn(ctx, "failed to load user session", "error", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		m.log.Warn(ctx, "failed to parse user session", "error", err)
		return nil, false
	}
	if err := s.Validate(); err != nil {
		m.log.Warn(ctx, "ignoring stored user session", "error", err)
		return nil, false
	}

	if ts, err := m.store.Get(ctx, savedAtKey); err == nil && ts != nil {
		m.log.Debug(ctx, "user session restored", "user_id", s.ID, "saved_at", string(ts))
	}
	return &s, true
}

// Save writes s. The error is logged here and also returned, so a caller
// can acknowledge a login only once the write has completed.
func (m *Manager) Save(ctx context.Context, s *models.Session) error {
	if err := s.Validate(); err != nil {
		m.log.Error(ctx, "refusing to save user session", "error", err)
		return err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		m.log.Error(ctx, "failed to encode user session", "error", err)
		return fmt.Errorf("encode session: %w", err)
	}

	err = m.store.SetMany(ctx, map[string][]byte{
		Key:        raw,
		savedAtKey: []byte(m.now().UTC().Format(time.RFC3339)),
	})
	if err != nil {
		m.log.Error(ctx, "failed to save user session", "user_id", s.ID, "error", err)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Failures are logged and returned.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, Key); err != nil {
		m.log.Error(ctx, "failed to clear user session", "error", err)
		return fmt.Errorf("clear session: %w", err)
	}
	if err := m.store.Delete(ctx, savedAtKey); err != nil {
		m.log.Warn(ctx, "failed to clear session timestamp", "error", err)
	}
	return nil
}
