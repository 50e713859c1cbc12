package handlers_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, owner string) (*domain.Account, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) LookupAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerService) CountAccounts(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockLedgerService) CalculateAccountBalance(ctx context.Context, accountID int) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerService) LookupTransaction(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListAccountTransactions(ctx context.Context, accountID int, limit int, afterID int) ([]domain.Transaction, *int, error) {
	args := m.Called(ctx, accountID, limit, afterID)
	var page []domain.Transaction
	if args.Get(0) != nil {
		page = args.Get(0).([]domain.Transaction)
	}
	var next *int
	if args.Get(1) != nil {
		next = args.Get(1).(*int)
	}
	return page, next, args.Error(2)
}

func (m *MockLedgerService) Deposit(ctx context.Context, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, targetAccountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) Withdraw(ctx context.Context, sourceAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, sourceAccountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, sourceAccountID int, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, sourceAccountID, targetAccountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// Helper functions

func intPtr(i int) *int {
	return &i
}

// amountEq matches a decimal argument by value rather than representation.
func amountEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}

func testConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		LogLevel:           slog.LevelError,
		RateLimit:          "100000-S",
		CORSAllowedOrigins: []string{"*"},
		EnableMetrics:      true,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
