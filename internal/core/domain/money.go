package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.Korean)

// ErrEmptyAmount is returned by ParseAmount when the input has no digits at all.
var ErrEmptyAmount = errors.New("amount has no digits")

// FormatAmount renders a whole-won amount with thousands separators, e.g. 1000000 -> "1,000,000".
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}

// ParseAmount strips every non-digit character and parses what is left.
// ParseAmount(FormatAmount(x)) == x for every non-negative x.
func ParseAmount(s string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, ErrEmptyAmount
	}
	return strconv.ParseInt(digits, 10, 64)
}

// FeeRate is the remittance fee applied to the sent amount.
var FeeRate = decimal.RequireFromString("0.01")

// MinRemittanceAmount is the smallest amount accepted by the submission flow.
const MinRemittanceAmount int64 = 1000

// Fee returns floor(amount * 0.01).
func Fee(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(FeeRate).Floor().IntPart()
}

// Preview is the live fee/conversion preview for a draft. It is never persisted.
type Preview struct {
	Amount          int64           `json:"amount"`
	Fee             int64           `json:"fee"`
	Total           int64           `json:"total"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	RateAvailable   bool            `json:"rateAvailable"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// convertedScale is the number of decimal places kept on converted amounts.
const convertedScale = 2

// NewPreview computes fee, total and converted amount. A missing or non-positive
// rate yields a zero converted amount with RateAvailable=false.
func NewPreview(amount int64, currency string, rates map[string]decimal.Decimal) Preview {
	if amount < 0 {
		amount = 0
	}
	fee := Fee(amount)
	p := Preview{
		Amount:          amount,
		Fee:             fee,
		Total:           safeAdd(amount, fee),
		Currency:        currency,
		ConvertedAmount: decimal.Zero,
	}
	rate, ok := rates[strings.ToUpper(currency)]
	if !ok || !rate.IsPositive() {
		return p
	}
	p.ExchangeRate = rate
	p.RateAvailable = true
	p.ConvertedAmount = decimal.NewFromInt(amount).DivRound(rate, convertedScale)
	return p
}

func safeAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
