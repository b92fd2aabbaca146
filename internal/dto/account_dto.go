package dto

import "github.com/SscSPs/remittance_web/internal/core/domain"

// SaveBankAccountRequest registers or replaces the linked bank account.
type SaveBankAccountRequest struct {
	BankCode      string `json:"bankCode"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Confirm       bool   `json:"confirm"`
}

func (r SaveBankAccountRequest) ToDomain() domain.BankAccount {
	return domain.BankAccount{
		BankCode:      r.BankCode,
		AccountNumber: r.AccountNumber,
		AccountHolder: r.AccountHolder,
	}
}

// BankAccountResponse wraps the account so "nothing registered" is an explicit null.
type BankAccountResponse struct {
	Account *domain.BankAccount `json:"account"`
}
