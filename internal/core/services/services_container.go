package services

import (
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, backend ports.Backend, store ports.StateStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The reader goes first; the editor and the remittance flow refresh it.
	container.LimitState = NewLimitStateService(backend, store)
	container.ExchangeRate = NewExchangeRateService(backend, cfg.RatesCacheTTL)
	container.BankAccount = NewBankAccountService(backend, store)

	editor := NewLimitEditorService(backend, container.LimitState)
	container.LimitEditor = editor
	container.Files = editor

	container.Remittance = NewRemittanceService(backend, container.ExchangeRate, container.LimitState, container.BankAccount)
	container.Board = NewBoardService(backend)

	return container
}
