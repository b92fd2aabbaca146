package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
)

const limitRequestAction = "limit-request"

// ErrNoOpenEditor is returned when an editor operation runs without Open.
var ErrNoOpenEditor = fmt.Errorf("%w: no limit request editor is open", apperrors.ErrNotFound)

// limitEditorService is the Limit Request Editor. Forms live in process memory,
// one per user, until they are submitted or closed.
type limitEditorService struct {
	BaseService
	backend ports.Backend
	reader  portssvc.LimitStateSvc
	guard   *submissionGuard

	mu    sync.Mutex
	forms map[string]*domain.LimitRequestForm
}

// NewLimitEditorService creates the editor. reader is refreshed after every successful mutation.
func NewLimitEditorService(backend ports.Backend, reader portssvc.LimitStateSvc) *limitEditorService {
	return &limitEditorService{
		backend: backend,
		reader:  reader,
		guard:   newSubmissionGuard(),
		forms:   make(map[string]*domain.LimitRequestForm),
	}
}

var (
	_ portssvc.LimitEditorSvc = (*limitEditorService)(nil)
	_ portssvc.FileSvc        = (*limitEditorService)(nil)
)

func (s *limitEditorService) Open(ctx context.Context, userID string, mode domain.EditorMode) (*domain.EditorSnapshot, error) {
	state, err := s.reader.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	var base *domain.LimitRequest
	switch mode.Kind() {
	case domain.ModeCreate:
		if !state.CanRequest() {
			return nil, fmt.Errorf("%w: a first limit request cannot be made now", apperrors.ErrConflict)
		}
	case domain.ModeReRequest:
		if !state.CanReRequest() {
			return nil, fmt.Errorf("%w: a limit re-request cannot be made now", apperrors.ErrConflict)
		}
	case domain.ModeEdit:
		id, _ := mode.RequestID()
		if !state.CanEdit(id) {
			return nil, fmt.Errorf("%w: request %d is not a rejected request that can be edited", apperrors.ErrConflict, id)
		}
		base = state.ActiveRequest
	default:
		return nil, apperrors.NewValidationError("mode", "editor mode is required")
	}

	form := domain.NewLimitRequestForm(mode, base)
	s.mu.Lock()
	s.forms[userID] = form
	snap := form.Snapshot()
	s.mu.Unlock()

	s.LogInfo(ctx, "Limit request editor opened", slog.String("user_id", userID), slog.String("mode", string(mode.Kind())))
	return &snap, nil
}

// withForm runs fn on the user's open form under the service lock.
func (s *limitEditorService) withForm(userID string, fn func(*domain.LimitRequestForm) error) (*domain.EditorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	form, ok := s.forms[userID]
	if !ok {
		return nil, ErrNoOpenEditor
	}
	if fn != nil {
		if err := fn(form); err != nil {
			return nil, err
		}
	}
	snap := form.Snapshot()
	return &snap, nil
}

func (s *limitEditorService) Get(_ context.Context, userID string) (*domain.EditorSnapshot, error) {
	return s.withForm(userID, nil)
}

func (s *limitEditorService) SetFields(_ context.Context, userID string, fields domain.EditorFields) (*domain.EditorSnapshot, error) {
	return s.withForm(userID, func(f *domain.LimitRequestForm) error {
		f.Apply(fields)
		return nil
	})
}

func (s *limitEditorService) SelectFile(ctx context.Context, userID string, kind domain.EvidenceKind, name string, data []byte) (*domain.EditorSnapshot, error) {
	upload, err := domain.NewEvidenceUpload(name, data)
	if err != nil {
		s.LogInfo(ctx, "Evidence file rejected", slog.String("slot", string(kind)), slog.String("reason", err.Error()))
		return nil, apperrors.NewValidationError(kind.FieldName(), err.Error())
	}
	return s.withForm(userID, func(f *domain.LimitRequestForm) error {
		return f.SelectFile(kind, upload)
	})
}

func (s *limitEditorService) RemoveFile(_ context.Context, userID string, kind domain.EvidenceKind) (*domain.EditorSnapshot, error) {
	return s.withForm(userID, func(f *domain.LimitRequestForm) error {
		return f.RemoveFile(kind)
	})
}

func (s *limitEditorService) Close(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.forms, userID)
	s.mu.Unlock()
	return nil
}

func (s *limitEditorService) Submit(ctx context.Context, userID string, confirm portssvc.Confirmer) (*domain.LimitRequest, error) {
	var (
		mode domain.EditorMode
		sub  domain.LimitRequestSubmission
	)
	_, err := s.withForm(userID, func(f *domain.LimitRequestForm) error {
		var verr error
		sub, verr = f.Validate()
		mode = f.Mode
		return verr
	})
	if err != nil {
		return nil, err
	}

	release, err := s.guard.acquire(userID, limitRequestAction)
	if err != nil {
		return nil, err
	}
	defer release()

	if confirm == nil || !confirm(ctx, submitSummary(mode, sub)) {
		return nil, apperrors.ErrConfirmationRequired
	}

	logger := s.GetLogger(ctx).With(slog.String("user_id", userID), slog.String("mode", string(mode.Kind())))

	var created *domain.LimitRequest
	switch mode.Kind() {
	case domain.ModeEdit:
		id, _ := mode.RequestID()
		created, err = s.backend.UpdateLimitRequest(ctx, userID, id, sub)
	case domain.ModeReRequest:
		sub.Files, sub.RemoveExisting = nil, nil
		created, err = s.backend.CreateLimitRequest(ctx, userID, sub)
	default:
		created, err = s.backend.CreateLimitRequest(ctx, userID, sub)
	}
	if err != nil {
		// The form stays open so the user can retry.
		logger.Error("Limit request submission failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to submit limit request: %w", err)
	}

	s.mu.Lock()
	delete(s.forms, userID)
	s.mu.Unlock()

	if _, err := s.reader.Refresh(ctx, userID); err != nil {
		logger.Warn("Limit state refresh after submission failed", slog.String("error", err.Error()))
	}
	logger.Info("Limit request submitted", slog.Int64("request_id", created.ID))
	return created, nil
}

func submitSummary(mode domain.EditorMode, sub domain.LimitRequestSubmission) string {
	verb := "Submit"
	if mode.Kind() == domain.ModeEdit {
		verb = "Resubmit"
	}
	return fmt.Sprintf("%s limit request: daily %s, monthly %s, single %s KRW", verb,
		domain.FormatAmount(sub.DailyLimit), domain.FormatAmount(sub.MonthlyLimit), domain.FormatAmount(sub.SingleLimit))
}

func (s *limitEditorService) CancelRequest(ctx context.Context, userID string, requestID int64, confirm portssvc.Confirmer) error {
	state, err := s.reader.Read(ctx, userID)
	if err != nil {
		return err
	}
	if !state.CanCancel(requestID) {
		return fmt.Errorf("%w: request %d is not a pending request", apperrors.ErrConflict, requestID)
	}
	if confirm == nil || !confirm(ctx, fmt.Sprintf("Cancel limit request %d", requestID)) {
		return apperrors.ErrConfirmationRequired
	}
	if err := s.backend.CancelLimitRequest(ctx, userID, requestID); err != nil {
		s.LogError(ctx, err, "Failed to cancel limit request", slog.Int64("request_id", requestID))
		return fmt.Errorf("failed to cancel limit request: %w", err)
	}
	if _, err := s.reader.Refresh(ctx, userID); err != nil {
		s.LogError(ctx, err, "Limit state refresh after cancel failed")
	}
	s.LogInfo(ctx, "Limit request cancelled", slog.String("user_id", userID), slog.Int64("request_id", requestID))
	return nil
}

func (s *limitEditorService) DownloadFile(ctx context.Context, userID string, fileID int64) (io.ReadCloser, string, error) {
	body, contentType, err := s.backend.DownloadFile(ctx, userID, fileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to download evidence file", slog.Int64("file_id", fileID))
		}
		return nil, "", fmt.Errorf("failed to download file %d: %w", fileID, err)
	}
	return body, contentType, nil
}
