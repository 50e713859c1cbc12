package memory

import (
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates an empty in-memory ledger: one account sequence
// and one transaction log, each with its own lock.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newAccountRepository(),
		TransactionRepo: newTransactionRepository(),
	}
}
