package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/remittance_web/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LimitStateSvc ---
type MockLimitStateService struct {
	mock.Mock
}

func (m *MockLimitStateService) Read(ctx context.Context, userID string) (*domain.LimitState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitState), args.Error(1)
}
func (m *MockLimitStateService) Refresh(ctx context.Context, userID string) (*domain.LimitState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitState), args.Error(1)
}
func (m *MockLimitStateService) Invalidate(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.LimitStateSvc = (*MockLimitStateService)(nil)

// --- Mock LimitEditorSvc ---
type MockLimitEditorService struct {
	mock.Mock
}

func (m *MockLimitEditorService) snapshot(args mock.Arguments) (*domain.EditorSnapshot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EditorSnapshot), args.Error(1)
}
func (m *MockLimitEditorService) Open(ctx context.Context, userID string, mode domain.EditorMode) (*domain.EditorSnapshot, error) {
	return m.snapshot(m.Called(ctx, userID, mode))
}
func (m *MockLimitEditorService) Get(ctx context.Context, userID string) (*domain.EditorSnapshot, error) {
	return m.snapshot(m.Called(ctx, userID))
}
func (m *MockLimitEditorService) SetFields(ctx context.Context, userID string, fields domain.EditorFields) (*domain.EditorSnapshot, error) {
	return m.snapshot(m.Called(ctx, userID, fields))
}
func (m *MockLimitEditorService) SelectFile(ctx context.Context, userID string, kind domain.EvidenceKind, name string, data []byte) (*domain.EditorSnapshot, error) {
	return m.snapshot(m.Called(ctx, userID, kind, name, data))
}
func (m *MockLimitEditorService) RemoveFile(ctx context.Context, userID string, kind domain.EvidenceKind) (*domain.EditorSnapshot, error) {
	return m.snapshot(m.Called(ctx, userID, kind))
}
func (m *MockLimitEditorService) Submit(ctx context.Context, userID string, confirm portssvc.Confirmer) (*domain.LimitRequest, error) {
	args := m.Called(ctx, userID, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitRequest), args.Error(1)
}
func (m *MockLimitEditorService) Close(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockLimitEditorService) CancelRequest(ctx context.Context, userID string, requestID int64, confirm portssvc.Confirmer) error {
	return m.Called(ctx, userID, requestID, confirm).Error(0)
}

var _ portssvc.LimitEditorSvc = (*MockLimitEditorService)(nil)

// --- Mock RemittanceSvc ---
type MockRemittanceService struct {
	mock.Mock
}

func (m *MockRemittanceService) Preview(ctx context.Context, userID string, draft domain.RemittanceDraft) (*portssvc.PreviewResult, error) {
	args := m.Called(ctx, userID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.PreviewResult), args.Error(1)
}
func (m *MockRemittanceService) Submit(ctx context.Context, userID string, draft domain.RemittanceDraft, confirm portssvc.Confirmer) (*portssvc.SubmitResult, error) {
	args := m.Called(ctx, userID, draft, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SubmitResult), args.Error(1)
}

var _ portssvc.RemittanceSvc = (*MockRemittanceService)(nil)

// --- Mock ExchangeRateSvc ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) RateTable(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

var _ portssvc.ExchangeRateSvc = (*MockExchangeRateService)(nil)

// --- Mock BankAccountSvc ---
type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) Get(ctx context.Context, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockBankAccountService) Save(ctx context.Context, userID string, account domain.BankAccount, confirm portssvc.Confirmer) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID, account, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

var _ portssvc.BankAccountSvc = (*MockBankAccountService)(nil)

// --- Mock BoardSvc ---
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticePage), args.Error(1)
}
func (m *MockBoardService) GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error) {
	args := m.Called(ctx, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}
func (m *MockBoardService) ListQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}
func (m *MockBoardService) AskQuestion(ctx context.Context, userID string, q domain.NewQuestion, confirm portssvc.Confirmer) (*domain.Question, error) {
	args := m.Called(ctx, userID, q, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

var _ portssvc.BoardSvc = (*MockBoardService)(nil)

// --- Mock FileSvc ---
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) DownloadFile(ctx context.Context, userID string, fileID int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, userID, fileID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

var _ portssvc.FileSvc = (*MockFileService)(nil)
