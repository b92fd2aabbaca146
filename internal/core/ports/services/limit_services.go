package services

import (
	"context"
	"io"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

// LimitStateSvc is the Limit State Reader.
type LimitStateSvc interface {
	// Read returns the cached state, fetching it when nothing is cached.
	Read(ctx context.Context, userID string) (*domain.LimitState, error)
	// Refresh always re-fetches from the backend and overwrites the cache.
	Refresh(ctx context.Context, userID string) (*domain.LimitState, error)
	// Invalidate drops the cached limit state.
	Invalidate(ctx context.Context, userID string) error
}

// LimitEditorSvc is the Limit Request Editor. Each user has at most one open editor.
type LimitEditorSvc interface {
	Open(ctx context.Context, userID string, mode domain.EditorMode) (*domain.EditorSnapshot, error)
	Get(ctx context.Context, userID string) (*domain.EditorSnapshot, error)
	SetFields(ctx context.Context, userID string, fields domain.EditorFields) (*domain.EditorSnapshot, error)
	SelectFile(ctx context.Context, userID string, kind domain.EvidenceKind, name string, data []byte) (*domain.EditorSnapshot, error)
	RemoveFile(ctx context.Context, userID string, kind domain.EvidenceKind) (*domain.EditorSnapshot, error)
	Submit(ctx context.Context, userID string, confirm Confirmer) (*domain.LimitRequest, error)
	Close(ctx context.Context, userID string) error
	// CancelRequest soft-deletes a PENDING request.
	CancelRequest(ctx context.Context, userID string, requestID int64, confirm Confirmer) error
}

// FileSvc streams evidence attachments to a viewer.
type FileSvc interface {
	DownloadFile(ctx context.Context, userID string, fileID int64) (io.ReadCloser, string, error)
}
