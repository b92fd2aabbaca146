package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
)

type entry struct {
	state     domain.ClientState
	expiresAt time.Time
}

// Store keeps client state in process memory. Entries older than ttl are treated as absent.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

var _ ports.StateStore = (*Store)(nil)

// NewStore creates a memory store. A ttl of zero keeps entries forever.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, userID string) (*domain.ClientState, error) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return nil, apperrors.ErrNotFound
	}
	state := e.state
	return &state, nil
}

func (s *Store) Put(_ context.Context, userID string, state domain.ClientState) error {
	e := entry{state: state}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[userID] = e
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
	return nil
}

func (s *Store) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}
