package ports

import (
	"context"
	"io"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

// Note: the remittance backend is the authority for every business rule. Implementations
// return *apperrors.BackendError (or a wrapped apperrors.ErrBackend) on failure.

// LimitBackend covers the user's limit snapshot and limit change requests.
type LimitBackend interface {
	FetchLimit(ctx context.Context, userID string) (*domain.RemittanceLimit, error)
	ListLimitRequests(ctx context.Context, userID string) ([]domain.LimitRequest, error)
	CreateLimitRequest(ctx context.Context, userID string, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error)
	UpdateLimitRequest(ctx context.Context, userID string, requestID int64, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error)
	CancelLimitRequest(ctx context.Context, userID string, requestID int64) error
}

// RemittanceBackend covers the pre-flight limit check and remittance creation.
type RemittanceBackend interface {
	CheckLimit(ctx context.Context, userID string, amount int64) (*domain.LimitCheckResult, error)
	CreateRemittance(ctx context.Context, order domain.RemittanceOrder) (*domain.RemittanceResult, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// AccountBackend covers the linked bank account.
type AccountBackend interface {
	// FetchBankAccount returns apperrors.ErrNotFound when nothing is registered.
	FetchBankAccount(ctx context.Context, userID string) (*domain.BankAccount, error)
	SaveBankAccount(ctx context.Context, userID string, account domain.BankAccount) (*domain.BankAccount, error)
}

// FileBackend streams evidence files. The caller closes the returned body.
type FileBackend interface {
	DownloadFile(ctx context.Context, userID string, fileID int64) (body io.ReadCloser, contentType string, err error)
}

// BoardBackend covers notices and Q&A.
type BoardBackend interface {
	ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error)
	GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error)
	ListQuestions(ctx context.Context, userID string) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, userID string, q domain.NewQuestion) (*domain.Question, error)
}

// Backend is everything the front-end server needs from the remittance backend.
type Backend interface {
	LimitBackend
	RemittanceBackend
	AccountBackend
	FileBackend
	BoardBackend
}
