package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const remittanceAction = "remittance"

// remittanceService is the Remittance Submission Flow.
type remittanceService struct {
	BaseService
	backend  ports.RemittanceBackend
	rates    portssvc.ExchangeRateSvc
	reader   portssvc.LimitStateSvc
	accounts portssvc.BankAccountSvc
	guard    *submissionGuard
	newKey   func() string
}

// NewRemittanceService wires the submission flow.
func NewRemittanceService(
	backend ports.RemittanceBackend,
	rates portssvc.ExchangeRateSvc,
	reader portssvc.LimitStateSvc,
	accounts portssvc.BankAccountSvc,
) portssvc.RemittanceSvc {
	return &remittanceService{
		backend:  backend,
		rates:    rates,
		reader:   reader,
		accounts: accounts,
		guard:    newSubmissionGuard(),
		newKey:   uuid.NewString,
	}
}

// preview never fails on a missing rate table; the converted amount is just unavailable.
func (s *remittanceService) preview(ctx context.Context, draft domain.RemittanceDraft) domain.Preview {
	table, err := s.rates.RateTable(ctx)
	if err != nil {
		table = map[string]decimal.Decimal{}
	}
	return domain.NewPreview(draft.Amount, draft.Currency, table)
}

func (s *remittanceService) Preview(ctx context.Context, userID string, draft domain.RemittanceDraft) (*portssvc.PreviewResult, error) {
	res := &portssvc.PreviewResult{Preview: s.preview(ctx, draft)}
	state, err := s.reader.Read(ctx, userID)
	if err == nil {
		limit := state.CurrentLimit
		res.Limit = &limit
	}
	return res, nil
}

func (s *remittanceService) Submit(ctx context.Context, userID string, draft domain.RemittanceDraft, confirm portssvc.Confirmer) (*portssvc.SubmitResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	release, err := s.guard.acquire(userID, remittanceAction)
	if err != nil {
		return nil, err
	}
	defer release()

	preview := s.preview(ctx, draft)
	summary := fmt.Sprintf("Send %s KRW (fee %s KRW, total %s KRW) to %s",
		domain.FormatAmount(preview.Amount), domain.FormatAmount(preview.Fee),
		domain.FormatAmount(preview.Total), draft.ReceiverName)
	if confirm == nil || !confirm(ctx, summary) {
		return nil, apperrors.ErrConfirmationRequired
	}

	logger := s.GetLogger(ctx).With(slog.String("user_id", userID), slog.Int64("amount", draft.Amount))

	check, err := s.backend.CheckLimit(ctx, userID, draft.Amount)
	if err != nil {
		logger.Error("Limit check failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check remittance limit: %w", err)
	}
	if !check.Success {
		logger.Info("Remittance blocked by limit check", slog.String("exceeded_type", string(check.ExceededType)))
		return nil, &domain.LimitExceededError{Check: *check}
	}

	order := domain.NewRemittanceOrder(userID, draft, preview)
	order.IdempotencyKey = s.newKey()
	result, err := s.backend.CreateRemittance(ctx, order)
	if err != nil {
		logger.Error("Remittance creation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create remittance: %w", err)
	}
	if !result.Success {
		logger.Warn("Backend refused remittance", slog.String("message", result.Message))
		return nil, &apperrors.BackendError{StatusCode: 422, Message: result.Message}
	}

	if _, err := s.reader.Refresh(ctx, userID); err != nil {
		logger.Warn("Limit state refresh after remittance failed", slog.String("error", err.Error()))
	}

	account, err := s.accounts.Get(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Could not load linked bank account for draft reset", slog.String("error", err.Error()))
	}
	logger.Info("Remittance created", slog.Int64("remittance_id", result.ID), slog.String("idempotency_key", order.IdempotencyKey))
	return &portssvc.SubmitResult{
		Result:    *result,
		Preview:   preview,
		NextDraft: draft.Reset(account),
	}, nil
}
