package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	LimitState   LimitStateSvc
	LimitEditor  LimitEditorSvc
	Remittance   RemittanceSvc
	BankAccount  BankAccountSvc
	ExchangeRate ExchangeRateSvc
	Board        BoardSvc
	Files        FileSvc
}
