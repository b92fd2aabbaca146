package backend

import (
	"context"
	"net/http"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

func (c *Client) FetchBankAccount(ctx context.Context, userID string) (*domain.BankAccount, error) {
	var account domain.BankAccount
	if err := c.doJSON(ctx, http.MethodGet, userPath(userID, "/bank-account"), nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) SaveBankAccount(ctx context.Context, userID string, account domain.BankAccount) (*domain.BankAccount, error) {
	var saved domain.BankAccount
	if err := c.doJSON(ctx, http.MethodPut, userPath(userID, "/bank-account"), nil, account, &saved); err != nil {
		return nil, err
	}
	if saved.BankCode == "" {
		saved = account
	}
	return &saved, nil
}
