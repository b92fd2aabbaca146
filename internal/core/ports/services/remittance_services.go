package services

import (
	"context"

	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PreviewResult is a draft preview plus the limits known at the time.
type PreviewResult struct {
	Preview domain.Preview
	// Limit is nil when limit info could not be loaded.
	Limit *domain.RemittanceLimit
}

// SubmitResult is returned after a remittance was created.
type SubmitResult struct {
	Result    domain.RemittanceResult
	Preview   domain.Preview
	NextDraft domain.RemittanceDraft
}

// RemittanceSvc is the Remittance Submission Flow.
type RemittanceSvc interface {
	Preview(ctx context.Context, userID string, draft domain.RemittanceDraft) (*PreviewResult, error)
	Submit(ctx context.Context, userID string, draft domain.RemittanceDraft, confirm Confirmer) (*SubmitResult, error)
}

// ExchangeRateSvc serves cached exchange rates.
type ExchangeRateSvc interface {
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	RateTable(ctx context.Context) (map[string]decimal.Decimal, error)
}

// BankAccountSvc manages the linked "my bank account".
type BankAccountSvc interface {
	// Get returns nil without error when no account is registered.
	Get(ctx context.Context, userID string) (*domain.BankAccount, error)
	Save(ctx context.Context, userID string, account domain.BankAccount, confirm Confirmer) (*domain.BankAccount, error)
}

// BoardSvc serves notices and Q&A.
type BoardSvc interface {
	ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error)
	GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error)
	ListQuestions(ctx context.Context, userID string) ([]domain.Question, error)
	AskQuestion(ctx context.Context, userID string, q domain.NewQuestion, confirm Confirmer) (*domain.Question, error)
}
