package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps client state in the client_state table as jsonb.
type Store struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

var _ ports.StateStore = (*Store)(nil)

// NewStore creates a Postgres-backed store. Rows older than ttl are ignored on read; zero disables expiry.
func NewStore(pool *pgxpool.Pool, ttl time.Duration) *Store {
	return &Store{pool: pool, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, userID string) (*domain.ClientState, error) {
	query := `SELECT state, updated_at FROM client_state WHERE user_id = $1`

	var (
		raw       []byte
		updatedAt time.Time
	)
	err := s.pool.QueryRow(ctx, query, userID).Scan(&raw, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read client state for %s: %w", userID, err)
	}
	if s.ttl > 0 && time.Since(updatedAt) > s.ttl {
		return nil, apperrors.ErrNotFound
	}

	var state domain.ClientState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode client state for %s: %w", userID, err)
	}
	return &state, nil
}

func (s *Store) Put(ctx context.Context, userID string, state domain.ClientState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode client state: %w", err)
	}
	query := `
		INSERT INTO client_state (user_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at;
	`
	if _, err := s.pool.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to write client state for %s: %w", userID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM client_state WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete client state for %s: %w", userID, err)
	}
	return nil
}
