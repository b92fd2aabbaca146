package ports

import (
	"context"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

// StateStore holds the shared per-user client state (limit snapshot, linked account).
// Writes replace the whole entry; the last write wins.
type StateStore interface {
	// Get returns apperrors.ErrNotFound when nothing is cached for the user.
	Get(ctx context.Context, userID string) (*domain.ClientState, error)
	Put(ctx context.Context, userID string, state domain.ClientState) error
	Delete(ctx context.Context, userID string) error
}
