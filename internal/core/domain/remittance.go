package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RemittanceDraft is the form a user fills in before sending money.
type RemittanceDraft struct {
	SenderBank      string `json:"senderBank"`
	SenderAccount   string `json:"senderAccount"`
	ReceiverBank    string `json:"receiverBank"`
	ReceiverAccount string `json:"receiverAccount"`
	ReceiverName    string `json:"receiverName"`
	ReceiverCountry string `json:"receiverCountry"`
	Currency        string `json:"currency"`
	Amount          int64  `json:"amount"`
}

// Validate runs the field checks in their fixed order and returns the first failure.
func (d RemittanceDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.SenderBank) == "":
		return apperrors.NewValidationError("senderBank", "select the sending bank")
	case strings.TrimSpace(d.SenderAccount) == "":
		return apperrors.NewValidationError("senderAccount", "enter the sending account number")
	case strings.TrimSpace(d.Currency) == "":
		return apperrors.NewValidationError("currency", "select the currency to send")
	case strings.TrimSpace(d.ReceiverBank) == "":
		return apperrors.NewValidationError("receiverBank", "select the receiving bank")
	case strings.TrimSpace(d.ReceiverAccount) == "":
		return apperrors.NewValidationError("receiverAccount", "enter the receiving account number")
	case strings.TrimSpace(d.ReceiverName) == "":
		return apperrors.NewValidationError("receiverName", "enter the receiver name")
	case d.Amount < MinRemittanceAmount:
		return apperrors.NewValidationError("amount", fmt.Sprintf("amount must be at least %s KRW", FormatAmount(MinRemittanceAmount)))
	}
	return nil
}

// Reset returns a blank draft that keeps only the registered sender bank and account.
func (d RemittanceDraft) Reset(account *BankAccount) RemittanceDraft {
	if account == nil {
		return RemittanceDraft{}
	}
	return RemittanceDraft{
		SenderBank:    account.BankCode,
		SenderAccount: account.AccountNumber,
	}
}

// RemittanceOrder is what gets sent to the backend to create a remittance.
type RemittanceOrder struct {
	UserID          string          `json:"userId"`
	SenderBank      string          `json:"senderBank"`
	SenderAccount   string          `json:"senderAccount"`
	ReceiverBank    string          `json:"receiverBank"`
	ReceiverAccount string          `json:"receiverAccount"`
	ReceiverName    string          `json:"receiverName"`
	ReceiverCountry string          `json:"receiverCountry"`
	Currency        string          `json:"currency"`
	Amount          int64           `json:"amount"`
	Fee             int64           `json:"fee"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	IdempotencyKey  string          `json:"-"`
}

// NewRemittanceOrder combines a validated draft with its preview.
func NewRemittanceOrder(userID string, d RemittanceDraft, p Preview) RemittanceOrder {
	return RemittanceOrder{
		UserID:          userID,
		SenderBank:      d.SenderBank,
		SenderAccount:   d.SenderAccount,
		ReceiverBank:    d.ReceiverBank,
		ReceiverAccount: d.ReceiverAccount,
		ReceiverName:    strings.TrimSpace(d.ReceiverName),
		ReceiverCountry: d.ReceiverCountry,
		Currency:        strings.ToUpper(d.Currency),
		Amount:          d.Amount,
		Fee:             p.Fee,
		ExchangeRate:    p.ExchangeRate,
		ConvertedAmount: p.ConvertedAmount,
	}
}

// RemittanceResult is the backend's answer to a create-remittance call.
type RemittanceResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// ExceededType names which period limits a checked amount exceeded.
type ExceededType string

const (
	ExceededDaily   ExceededType = "DAILY"
	ExceededMonthly ExceededType = "MONTHLY"
	ExceededBoth    ExceededType = "BOTH"
)

// LimitCheckResult is the backend's pre-flight answer for a candidate amount.
type LimitCheckResult struct {
	Success               bool         `json:"success"`
	Message               string       `json:"message,omitempty"`
	ExceededType          ExceededType `json:"exceededType,omitempty"`
	DailyLimit            int64        `json:"dailyLimit,omitempty"`
	MonthlyLimit          int64        `json:"monthlyLimit,omitempty"`
	DailyExceededAmount   int64        `json:"dailyExceededAmount,omitempty"`
	MonthlyExceededAmount int64        `json:"monthlyExceededAmount,omitempty"`
	RequestedAmount       int64        `json:"requestedAmount,omitempty"`
}

// Explain renders the exceeded-limit breakdown as human readable lines.
func (r LimitCheckResult) Explain() []string {
	var lines []string
	if r.ExceededType == ExceededDaily || r.ExceededType == ExceededBoth {
		lines = append(lines, fmt.Sprintf("Daily limit %s KRW exceeded by %s KRW",
			FormatAmount(r.DailyLimit), FormatAmount(r.DailyExceededAmount)))
	}
	if r.ExceededType == ExceededMonthly || r.ExceededType == ExceededBoth {
		lines = append(lines, fmt.Sprintf("Monthly limit %s KRW exceeded by %s KRW",
			FormatAmount(r.MonthlyLimit), FormatAmount(r.MonthlyExceededAmount)))
	}
	if len(lines) == 0 && r.Message != "" {
		lines = append(lines, r.Message)
	}
	lines = append(lines, fmt.Sprintf("Requested amount: %s KRW", FormatAmount(r.RequestedAmount)))
	return lines
}

// LimitExceededError carries the structured limit-check rejection.
type LimitExceededError struct {
	Check LimitCheckResult
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s (%s)", apperrors.ErrLimitExceeded.Error(), e.Check.ExceededType)
}

func (e *LimitExceededError) Unwrap() error {
	return apperrors.ErrLimitExceeded
}

// BankAccount is the user's linked "my bank account" registration.
type BankAccount struct {
	BankCode      string     `json:"bankCode"`
	AccountNumber string     `json:"accountNumber"`
	AccountHolder string     `json:"accountHolder,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// Validate checks that both parts of the registration are present and well formed.
func (a BankAccount) Validate() error {
	if strings.TrimSpace(a.BankCode) == "" {
		return apperrors.NewValidationError("bankCode", "select a bank")
	}
	number := strings.TrimSpace(a.AccountNumber)
	if number == "" {
		return apperrors.NewValidationError("accountNumber", "enter the account number")
	}
	for _, r := range number {
		if (r < '0' || r > '9') && r != '-' {
			return apperrors.NewValidationError("accountNumber", "account number may only contain digits and hyphens")
		}
	}
	return nil
}

// ExchangeRate is the KRW price of one unit of CurrencyCode.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"`
	CurrencyName string          `json:"currencyName,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RateTable indexes rates by upper-case currency code.
func RateTable(rates []ExchangeRate) map[string]decimal.Decimal {
	table := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		table[strings.ToUpper(r.CurrencyCode)] = r.Rate
	}
	return table
}
