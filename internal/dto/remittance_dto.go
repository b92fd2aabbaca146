package dto

import (
	"time"

	"github.com/SscSPs/remittance_web/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RemittanceDraftRequest is the remittance form as posted by the browser.
type RemittanceDraftRequest struct {
	SenderBank      string `json:"senderBank"`
	SenderAccount   string `json:"senderAccount"`
	ReceiverBank    string `json:"receiverBank"`
	ReceiverAccount string `json:"receiverAccount"`
	ReceiverName    string `json:"receiverName"`
	ReceiverCountry string `json:"receiverCountry"`
	Currency        string `json:"currency"`
	// Amount accepts formatted input such as "1,000,000".
	Amount string `json:"amount"`
}

// ToDomain parses the amount. An empty or unparsable amount becomes zero and
// fails the minimum amount check downstream.
func (r RemittanceDraftRequest) ToDomain() domain.RemittanceDraft {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		amount = 0
	}
	return domain.RemittanceDraft{
		SenderBank:      r.SenderBank,
		SenderAccount:   r.SenderAccount,
		ReceiverBank:    r.ReceiverBank,
		ReceiverAccount: r.ReceiverAccount,
		ReceiverName:    r.ReceiverName,
		ReceiverCountry: r.ReceiverCountry,
		Currency:        r.Currency,
		Amount:          amount,
	}
}

// SubmitRemittanceRequest is a draft plus the confirmation answer.
type SubmitRemittanceRequest struct {
	RemittanceDraftRequest
	Confirm bool `json:"confirm"`
}

// PreviewResponse is the live fee and conversion preview.
type PreviewResponse struct {
	Amount             int64           `json:"amount"`
	AmountFormatted    string          `json:"amountFormatted"`
	Fee                int64           `json:"fee"`
	FeeFormatted       string          `json:"feeFormatted"`
	Total              int64           `json:"total"`
	TotalFormatted     string          `json:"totalFormatted"`
	Currency           string          `json:"currency"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	RateAvailable      bool            `json:"rateAvailable"`
	ConvertedAmount    decimal.Decimal `json:"convertedAmount"`
	Limit              *LimitResponse  `json:"limit,omitempty"`
	LimitUnavailable   bool            `json:"limitUnavailable,omitempty"`
	ExceedsSingleLimit bool            `json:"exceedsSingleLimit,omitempty"`
}

func ToPreviewResponse(p domain.Preview) PreviewResponse {
	return PreviewResponse{
		Amount:          p.Amount,
		AmountFormatted: domain.FormatAmount(p.Amount),
		Fee:             p.Fee,
		FeeFormatted:    domain.FormatAmount(p.Fee),
		Total:           p.Total,
		TotalFormatted:  domain.FormatAmount(p.Total),
		Currency:        p.Currency,
		ExchangeRate:    p.ExchangeRate,
		RateAvailable:   p.RateAvailable,
		ConvertedAmount: p.ConvertedAmount,
	}
}

// ToPreviewResultResponse adds the limit hint to a preview. The single-limit flag is advisory only.
func ToPreviewResultResponse(r *portssvc.PreviewResult) PreviewResponse {
	resp := ToPreviewResponse(r.Preview)
	if r.Limit == nil {
		resp.LimitUnavailable = true
		return resp
	}
	limit := ToLimitResponse(*r.Limit)
	resp.Limit = &limit
	resp.ExceedsSingleLimit = r.Limit.SingleLimit > 0 && r.Preview.Amount > r.Limit.SingleLimit
	return resp
}

// SubmitRemittanceResponse is returned after a remittance was accepted.
type SubmitRemittanceResponse struct {
	ID        int64                  `json:"id,omitempty"`
	Message   string                 `json:"message"`
	Preview   PreviewResponse        `json:"preview"`
	NextDraft domain.RemittanceDraft `json:"nextDraft"`
}

func ToSubmitRemittanceResponse(r *portssvc.SubmitResult) SubmitRemittanceResponse {
	msg := r.Result.Message
	if msg == "" {
		msg = "Remittance completed"
	}
	return SubmitRemittanceResponse{
		ID:        r.Result.ID,
		Message:   msg,
		Preview:   ToPreviewResponse(r.Preview),
		NextDraft: r.NextDraft,
	}
}

// ExchangeRateResponse is one currency's KRW rate.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	CurrencyName string          `json:"currencyName,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}

func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, r := range rates {
		responses[i] = ExchangeRateResponse{
			CurrencyCode: r.CurrencyCode,
			CurrencyName: r.CurrencyName,
			Rate:         r.Rate,
		}
		if !r.UpdatedAt.IsZero() {
			responses[i].UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
		}
	}
	return responses
}
