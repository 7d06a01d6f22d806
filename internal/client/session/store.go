// Package session owns the client's login state.
//
// Store is the single source of truth for "is there a usable session". It
// keeps an in-memory snapshot for lock-protected, non-blocking reads and
// writes every change through to a durable Backend first, so the token and
// the authenticated flag survive a restart. Token and flag are always
// written and read as one unit.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
)

// Store is the session contract used by the auth and resource services.
type Store interface {
	// Get returns the current snapshot without blocking on I/O.
	Get() models.Session
	// SetAuthenticated persists token and display name and marks the
	// session authenticated. The token must be non-empty.
	SetAuthenticated(ctx context.Context, token, displayName string) error
	// Clear drops the token and display name. Idempotent.
	Clear(ctx context.Context) error
	// ClearIfToken clears the session only while it still holds token, so a
	// late rejection of an old token cannot drop a newer login. It reports
	// whether the session was cleared.
	ClearIfToken(ctx context.Context, token string) (bool, error)
}

// Backend is durable storage for a session.
type Backend interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Erase(ctx context.Context) error
}

// store keeps two locks: writeMu orders writers around the durable I/O,
// mu only guards the in-memory snapshot and is never held across I/O.
type store struct {
	writeMu sync.Mutex

	mu      sync.RWMutex
	current models.Session

	backend Backend
	log     logging.Logger
}

// NewStore loads the persisted session from backend and returns a Store
// serving it.
func NewStore(ctx context.Context, backend Backend, log logging.Logger) (Store, error) {
	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s := sanitize(loaded)
	if s != loaded {
		log.Warn(ctx, "discarding half-written session",
			"flag", loaded.IsAuthenticated, "has_token", loaded.HasToken())
	}
	log.Debug(ctx, "session loaded", "authenticated", s.IsAuthenticated)
	return &store{current: s, backend: backend, log: log}, nil
}

// sanitize enforces IsAuthenticated <=> token present. Leftovers of a
// half-written session are treated as logged out.
func sanitize(s models.Session) models.Session {
	if !s.IsAuthenticated || !s.HasToken() {
		return models.Session{}
	}
	return s
}

func (s *store) Get() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *store) swap(next models.Session) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	s.current = next
	return prev
}

func (s *store) SetAuthenticated(ctx context.Context, token, displayName string) error {
	if token == "" {
		return fmt.Errorf("%w: empty session token", common.ErrValidation)
	}

	next := models.Session{Token: token, DisplayName: displayName, IsAuthenticated: true}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.swap(next)
	s.log.Info(ctx, "session authenticated", "user", displayName, "token", logging.MaskToken(token))
	return nil
}

// Clear always drops the in-memory session, even when the durable erase
// fails, so a rejected token is never presented again by this process.
func (s *store) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.clearLocked(ctx)
}

func (s *store) ClearIfToken(ctx context.Context, token string) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if cur := s.Get(); !cur.IsAuthenticated || cur.Token != token {
		return false, nil
	}
	return true, s.clearLocked(ctx)
}

// clearLocked requires writeMu.
func (s *store) clearLocked(ctx context.Context) error {
	prev := s.swap(models.Session{})

	if err := s.backend.Erase(ctx); err != nil {
		return fmt.Errorf("erase session: %w", err)
	}
	if prev.IsAuthenticated {
		s.log.Info(ctx, "session cleared")
	}
	return nil
}
