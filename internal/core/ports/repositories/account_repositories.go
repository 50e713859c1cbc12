package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountCell is the mutable, lockable state of a single account owned by the store.
// Balance, SetBalance and Snapshot must only be called while the cell is locked.
type AccountCell interface {
	sync.Locker

	// AccountID returns the immutable id of the account. Safe without the lock.
	AccountID() int

	// Balance returns the current balance.
	Balance() decimal.Decimal

	// SetBalance replaces the current balance.
	SetBalance(balance decimal.Decimal)

	// Snapshot returns an immutable copy of the account state.
	Snapshot() domain.Account
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID returns the cell for an assigned id, or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID int) (AccountCell, error)

	// ListAccounts returns the cells with ids in [offset, offset+limit) that exist.
	ListAccounts(ctx context.Context, limit int, offset int) ([]AccountCell, error)

	// CountAccounts returns the number of accounts created so far.
	CountAccounts(ctx context.Context) int
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// AppendAccount creates an account with a zero balance. The id is the previous
	// account count; stamp is called exactly once, inside the append section.
	AppendAccount(ctx context.Context, owner string, stamp func() time.Time) domain.Account
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
