package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
)

// bankAccountService keeps the linked account in the shared state store after the first read.
type bankAccountService struct {
	BaseService
	backend ports.AccountBackend
	store   ports.StateStore
}

func NewBankAccountService(backend ports.AccountBackend, store ports.StateStore) portssvc.BankAccountSvc {
	return &bankAccountService{backend: backend, store: store}
}

func (s *bankAccountService) Get(ctx context.Context, userID string) (*domain.BankAccount, error) {
	if cached, err := s.store.Get(ctx, userID); err == nil && cached.BankAccount != nil {
		return cached.BankAccount, nil
	}
	account, err := s.backend.FetchBankAccount(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank account: %w", err)
	}
	s.remember(ctx, userID, account)
	return account, nil
}

func (s *bankAccountService) Save(ctx context.Context, userID string, account domain.BankAccount, confirm portssvc.Confirmer) (*domain.BankAccount, error) {
	account.BankCode = strings.TrimSpace(account.BankCode)
	account.AccountNumber = strings.TrimSpace(account.AccountNumber)
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if confirm == nil || !confirm(ctx, fmt.Sprintf("Register account %s at bank %s", account.AccountNumber, account.BankCode)) {
		return nil, apperrors.ErrConfirmationRequired
	}
	saved, err := s.backend.SaveBankAccount(ctx, userID, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	s.remember(ctx, userID, saved)
	s.LogInfo(ctx, "Bank account saved", slog.String("user_id", userID), slog.String("bank_code", saved.BankCode))
	return saved, nil
}

func (s *bankAccountService) remember(ctx context.Context, userID string, account *domain.BankAccount) {
	entry := domain.ClientState{}
	if cached, err := s.store.Get(ctx, userID); err == nil {
		entry = *cached
	}
	entry.BankAccount = account
	if err := s.store.Put(ctx, userID, entry); err != nil {
		s.LogError(ctx, err, "Failed to cache bank account", slog.String("user_id", userID))
	}
}
