package domain

import (
	"errors"
	"testing"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() RemittanceDraft {
	return RemittanceDraft{
		SenderBank:      "004",
		SenderAccount:   "123-456-789",
		ReceiverBank:    "CHASUS33",
		ReceiverAccount: "000123456",
		ReceiverName:    "Jane Doe",
		ReceiverCountry: "US",
		Currency:        "USD",
		Amount:          100000,
	}
}

func TestRemittanceDraft_ValidateOrder(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	empty := RemittanceDraft{}
	var verr *apperrors.ValidationError
	require.True(t, errors.As(empty.Validate(), &verr))
	assert.Equal(t, "senderBank", verr.Field)

	d := validDraft()
	d.Currency = ""
	d.ReceiverName = ""
	require.True(t, errors.As(d.Validate(), &verr))
	assert.Equal(t, "currency", verr.Field)

	d = validDraft()
	d.Amount = 999
	require.True(t, errors.As(d.Validate(), &verr))
	assert.Equal(t, "amount", verr.Field)
	assert.ErrorIs(t, d.Validate(), apperrors.ErrValidation)
}

func TestRemittanceDraft_Reset(t *testing.T) {
	next := validDraft().Reset(&BankAccount{BankCode: "088", AccountNumber: "110-222"})
	assert.Equal(t, RemittanceDraft{SenderBank: "088", SenderAccount: "110-222"}, next)
	assert.Equal(t, RemittanceDraft{}, validDraft().Reset(nil))
}

func TestLimitCheckResult_Explain(t *testing.T) {
	daily := LimitCheckResult{
		ExceededType:        ExceededDaily,
		DailyLimit:          5000000,
		DailyExceededAmount: 1000000,
		RequestedAmount:     6000000,
	}
	assert.Equal(t, []string{
		"Daily limit 5,000,000 KRW exceeded by 1,000,000 KRW",
		"Requested amount: 6,000,000 KRW",
	}, daily.Explain())

	both := LimitCheckResult{
		ExceededType:          ExceededBoth,
		DailyLimit:            5000000,
		MonthlyLimit:          20000000,
		DailyExceededAmount:   1000000,
		MonthlyExceededAmount: 2000000,
		RequestedAmount:       6000000,
	}
	assert.Len(t, both.Explain(), 3)

	err := error(&LimitExceededError{Check: daily})
	assert.ErrorIs(t, err, apperrors.ErrLimitExceeded)
}

func TestBankAccount_Validate(t *testing.T) {
	assert.NoError(t, BankAccount{BankCode: "004", AccountNumber: "123-45-6789"}.Validate())
	assert.ErrorIs(t, BankAccount{AccountNumber: "1"}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, BankAccount{BankCode: "004", AccountNumber: "12a4"}.Validate(), apperrors.ErrValidation)
}
