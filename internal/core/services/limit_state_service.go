package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
)

// limitStateService is the Limit State Reader.
type limitStateService struct {
	BaseService
	backend ports.LimitBackend
	store   ports.StateStore
	now     func() time.Time
}

// NewLimitStateService creates the Limit State Reader over backend, caching in store.
func NewLimitStateService(backend ports.LimitBackend, store ports.StateStore) portssvc.LimitStateSvc {
	return &limitStateService{backend: backend, store: store, now: time.Now}
}

var _ portssvc.LimitStateSvc = (*limitStateService)(nil)

func (s *limitStateService) Read(ctx context.Context, userID string) (*domain.LimitState, error) {
	cached, err := s.store.Get(ctx, userID)
	switch {
	case err == nil && cached.Limit != nil:
		return cached.Limit, nil
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		// A broken cache must not hide the backend.
		s.LogError(ctx, err, "Failed to read cached limit state", slog.String("user_id", userID))
	}
	return s.Refresh(ctx, userID)
}

func (s *limitStateService) Refresh(ctx context.Context, userID string) (*domain.LimitState, error) {
	limit, err := s.backend.FetchLimit(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch remittance limit", slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrLimitUnavailable, err)
	}
	requests, err := s.backend.ListLimitRequests(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list limit requests", slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrLimitUnavailable, err)
	}

	state := domain.NewLimitState(*limit, requests)

	entry := domain.ClientState{}
	if cached, err := s.store.Get(ctx, userID); err == nil {
		entry = *cached
	}
	entry.Limit = &state
	entry.LoadedAt = s.now()
	if err := s.store.Put(ctx, userID, entry); err != nil {
		s.LogError(ctx, err, "Failed to cache limit state", slog.String("user_id", userID))
	}

	s.LogDebug(ctx, "Limit state refreshed",
		slog.String("user_id", userID),
		slog.String("limit_type", string(state.CurrentLimit.LimitType)),
		slog.Bool("has_active_request", state.ActiveRequest != nil))
	return &state, nil
}

func (s *limitStateService) Invalidate(ctx context.Context, userID string) error {
	cached, err := s.store.Get(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cached state: %w", err)
	}
	cached.Limit = nil
	if err := s.store.Put(ctx, userID, *cached); err != nil {
		return fmt.Errorf("failed to invalidate limit state: %w", err)
	}
	return nil
}
