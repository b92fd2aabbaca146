package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService caches the backend's rate list for ttl.
type exchangeRateService struct {
	BaseService
	backend ports.RemittanceBackend
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	rates     []domain.ExchangeRate
	fetchedAt time.Time
}

// NewExchangeRateService creates a rate service. A zero ttl disables caching.
func NewExchangeRateService(backend ports.RemittanceBackend, ttl time.Duration) portssvc.ExchangeRateSvc {
	return &exchangeRateService{backend: backend, ttl: ttl, now: time.Now}
}

func (s *exchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	s.mu.RLock()
	if s.rates != nil && s.ttl > 0 && s.now().Sub(s.fetchedAt) < s.ttl {
		rates := s.rates
		s.mu.RUnlock()
		return rates, nil
	}
	s.mu.RUnlock()

	rates, err := s.backend.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates")
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = s.now()
	s.mu.Unlock()
	s.LogDebug(ctx, "Exchange rates refreshed", slog.Int("count", len(rates)))
	return rates, nil
}

func (s *exchangeRateService) RateTable(ctx context.Context) (map[string]decimal.Decimal, error) {
	rates, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RateTable(rates), nil
}
