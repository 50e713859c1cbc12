package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log
type TransactionReader interface {
	// FindTransactionByID returns a copy of the transaction, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID int) (domain.Transaction, error)

	// ListTransactionsByAccount returns up to limit transactions involving the account
	// with ids strictly greater than afterID, in ascending id order.
	ListTransactionsByAccount(ctx context.Context, accountID int, afterID int, limit int) ([]domain.Transaction, error)

	// CountTransactions returns the number of committed transactions.
	CountTransactions(ctx context.Context) int
}

// TransactionWriter defines write operations for the transaction log
type TransactionWriter interface {
	// AppendTransaction assigns the next id and the commit time (from stamp, called once
	// inside the append section) to draft and appends it. A draft that fails
	// domain.Transaction.Validate is rejected with apperrors.ErrInvariant.
	AppendTransaction(ctx context.Context, draft domain.Transaction, stamp func() time.Time) (domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
