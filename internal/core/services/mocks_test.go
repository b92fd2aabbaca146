package services_test

import (
	"context"
	"io"

	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// --- Mock Backend ---
type MockBackend struct {
	mock.Mock
}

var _ ports.Backend = (*MockBackend)(nil)

func (m *MockBackend) FetchLimit(ctx context.Context, userID string) (*domain.RemittanceLimit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemittanceLimit), args.Error(1)
}

func (m *MockBackend) ListLimitRequests(ctx context.Context, userID string) ([]domain.LimitRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LimitRequest), args.Error(1)
}

func (m *MockBackend) CreateLimitRequest(ctx context.Context, userID string, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error) {
	args := m.Called(ctx, userID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitRequest), args.Error(1)
}

func (m *MockBackend) UpdateLimitRequest(ctx context.Context, userID string, requestID int64, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error) {
	args := m.Called(ctx, userID, requestID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitRequest), args.Error(1)
}

func (m *MockBackend) CancelLimitRequest(ctx context.Context, userID string, requestID int64) error {
	args := m.Called(ctx, userID, requestID)
	return args.Error(0)
}

func (m *MockBackend) CheckLimit(ctx context.Context, userID string, amount int64) (*domain.LimitCheckResult, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitCheckResult), args.Error(1)
}

func (m *MockBackend) CreateRemittance(ctx context.Context, order domain.RemittanceOrder) (*domain.RemittanceResult, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemittanceResult), args.Error(1)
}

func (m *MockBackend) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockBackend) FetchBankAccount(ctx context.Context, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBackend) SaveBankAccount(ctx context.Context, userID string, account domain.BankAccount) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBackend) DownloadFile(ctx context.Context, userID string, fileID int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, userID, fileID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *MockBackend) ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticePage), args.Error(1)
}

func (m *MockBackend) GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error) {
	args := m.Called(ctx, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockBackend) ListQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockBackend) CreateQuestion(ctx context.Context, userID string, q domain.NewQuestion) (*domain.Question, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}
