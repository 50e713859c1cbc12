package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
)

// TransactionRepository is the append-only transaction log.
// Stored transactions are never modified; reads hand out clones.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// newTransactionRepository creates a new, empty transaction log.
func newTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure TransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// AppendTransaction validates the draft, then assigns id and time and appends it
// in one exclusive section.
func (r *TransactionRepository) AppendTransaction(_ context.Context, draft domain.Transaction, stamp func() time.Time) (domain.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrInvariant, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx := draft.Clone()
	tx.TransactionID = len(r.transactions)
	tx.TransactionTime = stamp()
	r.transactions = append(r.transactions, tx)
	return tx.Clone(), nil
}

// FindTransactionByID returns a copy of an assigned transaction.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID int) (domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if transactionID < 0 || transactionID >= len(r.transactions) {
		return domain.Transaction{}, fmt.Errorf("transaction %d: %w", transactionID, apperrors.ErrNotFound)
	}
	return r.transactions[transactionID].Clone(), nil
}

// ListTransactionsByAccount scans the log after afterID for transactions that
// involve the account. A limit of zero returns an empty page.
func (r *TransactionRepository) ListTransactionsByAccount(_ context.Context, accountID int, afterID int, limit int) ([]domain.Transaction, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Transaction, 0, min(limit, len(r.transactions)))
	for i := max(afterID+1, 0); i < len(r.transactions) && len(result) < limit; i++ {
		if r.transactions[i].Involves(accountID) {
			result = append(result, r.transactions[i].Clone())
		}
	}
	return result, nil
}

// CountTransactions returns the number of committed transactions.
func (r *TransactionRepository) CountTransactions(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}
