package services

import (
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...LedgerOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.AccountRepo, repos.TransactionRepo, options...),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
