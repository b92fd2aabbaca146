package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
)

type limitCheckRequest struct {
	UserID string `json:"userId"`
	Amount int64  `json:"amount"`
}

// CheckLimit asks the backend whether amount fits the user's limits. An exceeded
// limit may come back as a 200 with success=false or as a 4xx carrying the same
// body; both are returned as a result with Success=false.
func (c *Client) CheckLimit(ctx context.Context, userID string, amount int64) (*domain.LimitCheckResult, error) {
	var result domain.LimitCheckResult
	err := c.doJSON(ctx, http.MethodPost, "/api/remittances/check-limit", nil,
		limitCheckRequest{UserID: userID, Amount: amount}, &result)
	if err == nil {
		return &result, nil
	}

	var be *apperrors.BackendError
	if errors.As(err, &be) && be.StatusCode >= 400 && be.StatusCode < 500 && len(be.Body) > 0 {
		var rejected domain.LimitCheckResult
		if json.Unmarshal(be.Body, &rejected) == nil && rejected.ExceededType != "" {
			rejected.Success = false
			if rejected.RequestedAmount == 0 {
				rejected.RequestedAmount = amount
			}
			return &rejected, nil
		}
	}
	return nil, err
}

func (c *Client) CreateRemittance(ctx context.Context, order domain.RemittanceOrder) (*domain.RemittanceResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to encode remittance: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/remittances", nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if order.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", order.IdempotencyKey)
	}

	var result domain.RemittanceResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	if err := c.doJSON(ctx, http.MethodGet, "/api/exchange-rates", nil, nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}
