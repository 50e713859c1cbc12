package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// LookupAccount returns a snapshot of the account, or apperrors.ErrNotFound.
	LookupAccount(ctx context.Context, accountID int) (*domain.Account, error)

	// ListAccounts returns snapshots of up to limit accounts starting at offset, in id order.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// CountAccounts returns the number of accounts opened so far.
	CountAccounts(ctx context.Context) int
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens a zero-balance account for owner.
	CreateAccount(ctx context.Context, owner string) (*domain.Account, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance replays the account's transaction history. It returns the
	// replayed balance together with the live balance observed at the same instant.
	CalculateAccountBalance(ctx context.Context, accountID int) (replayed decimal.Decimal, live decimal.Decimal, err error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
