package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc defines read operations for the transaction log
type TransactionReaderSvc interface {
	// LookupTransaction returns a snapshot of the transaction, or apperrors.ErrNotFound.
	LookupTransaction(ctx context.Context, transactionID int) (*domain.Transaction, error)

	// ListAccountTransactions returns up to limit transactions involving the account with
	// ids greater than afterID, oldest first. next is non-nil when another page may follow
	// and holds the afterID to request it with.
	ListAccountTransactions(ctx context.Context, accountID int, limit int, afterID int) (page []domain.Transaction, next *int, err error)
}

// TransactionWriterSvc defines the balance-changing operations
type TransactionWriterSvc interface {
	// Deposit credits amount to the target account.
	Deposit(ctx context.Context, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error)

	// Withdraw debits amount from the source account.
	Withdraw(ctx context.Context, sourceAccountID int, amount decimal.Decimal) (*domain.Transaction, error)

	// Transfer moves amount from the source to the target account atomically.
	Transfer(ctx context.Context, sourceAccountID int, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// LedgerSvcFacade is the complete ledger engine surface used by the handlers.
type LedgerSvcFacade interface {
	AccountSvcFacade
	TransactionSvcFacade
}
