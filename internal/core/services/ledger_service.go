package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/ports"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/observability"
	"github.com/SscSPs/bank_ledger_app/internal/platform/clock"
	"github.com/SscSPs/bank_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Operation label values for observability.LedgerOperations.
const (
	opCreateAccount = "create_account"
	opDeposit       = "deposit"
	opWithdraw      = "withdraw"
	opTransfer      = "transfer"
	opReplay        = "replay_balance"
)

// replayPageSize bounds how many log entries CalculateAccountBalance pulls per read.
const replayPageSize = 512

// ledgerService is the ledger engine. Every account is guarded by its own lock;
// a balance change and the append of its transaction happen while the lock(s) of
// the touched account(s) are held, so no observer ever sees one without the other.
type ledgerService struct {
	BaseService
	clock           ports.Clock
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithClock replaces the system clock used to stamp accounts and transactions.
func WithClock(c ports.Clock) LedgerOption {
	return func(s *ledgerService) {
		s.clock = c
	}
}

// NewLedgerService creates a ledger engine over the given stores.
func NewLedgerService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	options ...LedgerOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		clock:           clock.System{},
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *ledgerService) now() time.Time {
	return s.clock.Now()
}

// CreateAccount opens a new account with a zero balance.
func (s *ledgerService) CreateAccount(ctx context.Context, owner string) (*domain.Account, error) {
	account := s.accountRepo.AppendAccount(ctx, owner, s.now)
	s.record(opCreateAccount, nil)
	s.LogInfo(ctx, "Account created",
		slog.Int("account_id", account.AccountID),
		slog.String("owner", account.Owner))
	return &account, nil
}

// LookupAccount returns a consistent snapshot of one account.
func (s *ledgerService) LookupAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	cell, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cell.Lock()
	account := cell.Snapshot()
	cell.Unlock()

	return &account, nil
}

// ListAccounts returns snapshots of a window of accounts in id order. Each snapshot
// is individually consistent; the page as a whole is not a single point in time.
func (s *ledgerService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	cells, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(cells))
	for _, cell := range cells {
		cell.Lock()
		accounts = append(accounts, cell.Snapshot())
		cell.Unlock()
	}
	return accounts, nil
}

// CountAccounts returns the number of accounts opened so far.
func (s *ledgerService) CountAccounts(ctx context.Context) int {
	return s.accountRepo.CountAccounts(ctx)
}

// Deposit credits amount to the target account.
func (s *ledgerService) Deposit(ctx context.Context, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, s.reject(ctx, opDeposit, err)
	}

	target, err := s.findAccount(ctx, targetAccountID)
	if err != nil {
		return nil, s.reject(ctx, opDeposit, err)
	}

	target.Lock()
	defer target.Unlock()

	before := target.Balance()
	target.SetBalance(before.Add(amount))

	txn, err := s.commit(ctx, opDeposit, domain.Transaction{
		TargetAccountID: &targetAccountID,
		Amount:          amount,
	})
	if err != nil {
		target.SetBalance(before)
		return nil, err
	}
	return txn, nil
}

// Withdraw debits amount from the source account, refusing to overdraw it.
func (s *ledgerService) Withdraw(ctx context.Context, sourceAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, s.reject(ctx, opWithdraw, err)
	}

	source, err := s.findAccount(ctx, sourceAccountID)
	if err != nil {
		return nil, s.reject(ctx, opWithdraw, err)
	}

	source.Lock()
	defer source.Unlock()

	before := source.Balance()
	if before.LessThan(amount) {
		return nil, s.reject(ctx, opWithdraw, overdraftError(sourceAccountID, before, amount))
	}
	source.SetBalance(before.Sub(amount))

	txn, err := s.commit(ctx, opWithdraw, domain.Transaction{
		SourceAccountID: &sourceAccountID,
		Amount:          amount,
	})
	if err != nil {
		source.SetBalance(before)
		return nil, err
	}
	return txn, nil
}

// Transfer moves amount between two distinct accounts as one step. The account
// with the lower id is always locked first so that concurrent transfers in
// opposite directions cannot deadlock.
func (s *ledgerService) Transfer(ctx context.Context, sourceAccountID int, targetAccountID int, amount decimal.Decimal) (*domain.Transaction, error) {
	if sourceAccountID == targetAccountID {
		return nil, s.reject(ctx, opTransfer,
			fmt.Errorf("account %d: %w", sourceAccountID, apperrors.ErrSelfTransfer))
	}
	if err := validateAmount(amount); err != nil {
		return nil, s.reject(ctx, opTransfer, err)
	}

	source, err := s.findAccount(ctx, sourceAccountID)
	if err != nil {
		return nil, s.reject(ctx, opTransfer, err)
	}
	target, err := s.findAccount(ctx, targetAccountID)
	if err != nil {
		return nil, s.reject(ctx, opTransfer, err)
	}

	first, second := source, target
	if targetAccountID < sourceAccountID {
		first, second = target, source
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	sourceBefore := source.Balance()
	if sourceBefore.LessThan(amount) {
		return nil, s.reject(ctx, opTransfer, overdraftError(sourceAccountID, sourceBefore, amount))
	}
	targetBefore := target.Balance()
	source.SetBalance(sourceBefore.Sub(amount))
	target.SetBalance(targetBefore.Add(amount))

	txn, err := s.commit(ctx, opTransfer, domain.Transaction{
		SourceAccountID: &sourceAccountID,
		TargetAccountID: &targetAccountID,
		Amount:          amount,
	})
	if err != nil {
		source.SetBalance(sourceBefore)
		target.SetBalance(targetBefore)
		return nil, err
	}
	return txn, nil
}

// LookupTransaction returns a copy of one committed transaction.
func (s *ledgerService) LookupTransaction(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListAccountTransactions returns one page of an account's history, oldest first.
func (s *ledgerService) ListAccountTransactions(ctx context.Context, accountID int, limit int, afterID int) ([]domain.Transaction, *int, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	if _, err := s.findAccount(ctx, accountID); err != nil {
		return nil, nil, err
	}

	// One extra entry tells us whether another page exists.
	fetch := limit
	if fetch < math.MaxInt {
		fetch++
	}
	page, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, afterID, fetch)
	if err != nil {
		return nil, nil, err
	}
	if len(page) <= limit {
		return page, nil, nil
	}

	page = page[:limit]
	next := page[limit-1].TransactionID
	return page, &next, nil
}

// CalculateAccountBalance replays the account's history while holding its lock,
// so the replayed and live balances describe the same instant.
func (s *ledgerService) CalculateAccountBalance(ctx context.Context, accountID int) (decimal.Decimal, decimal.Decimal, error) {
	cell, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	cell.Lock()
	defer cell.Unlock()

	var history []domain.Transaction
	afterID := -1
	for {
		page, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, afterID, replayPageSize)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		history = append(history, page...)
		if len(page) < replayPageSize {
			break
		}
		afterID = page[len(page)-1].TransactionID
	}

	live := cell.Balance()
	replayed, err := accounting.ReplayBalance(history, accountID)
	if err != nil {
		s.record(opReplay, err)
		s.LogError(ctx, err, "Transaction history does not replay", slog.Int("account_id", accountID))
		return decimal.Zero, decimal.Zero, err
	}
	if !replayed.Equal(live) {
		err = fmt.Errorf("%w: account %d balance %s differs from replayed %s",
			apperrors.ErrInvariant, accountID, live.String(), replayed.String())
		s.record(opReplay, err)
		s.LogError(ctx, err, "Balance does not match history", slog.Int("account_id", accountID))
		return replayed, live, err
	}

	s.record(opReplay, nil)
	return replayed, live, nil
}

// findAccount resolves an account referenced by a balance operation.
func (s *ledgerService) findAccount(ctx context.Context, accountID int) (portsrepo.AccountCell, error) {
	cell, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w (id %d)", apperrors.ErrAccountNotFound, accountID)
		}
		return nil, err
	}
	return cell, nil
}

// commit appends the transaction for a balance change already applied by the
// caller. The caller must hold the locks of every account the draft touches.
func (s *ledgerService) commit(ctx context.Context, op string, draft domain.Transaction) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.AppendTransaction(ctx, draft, s.now)
	if err != nil {
		s.record(op, err)
		s.LogError(ctx, err, "Failed to append transaction", slog.String("operation", op))
		return nil, err
	}

	s.record(op, nil)
	s.LogInfo(ctx, "Transaction committed",
		slog.Int("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind())),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// reject records and logs an operation refused before any state changed.
func (s *ledgerService) reject(ctx context.Context, op string, err error) error {
	s.record(op, err)
	s.LogDebug(ctx, "Ledger operation rejected",
		slog.String("operation", op),
		slog.String("reason", err.Error()))
	return err
}

func (s *ledgerService) record(op string, err error) {
	observability.LedgerOperations.WithLabelValues(op, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrOverdraft):
		return observability.OutcomeRejected
	default:
		return observability.OutcomeError
	}
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s: %w", amount.String(), apperrors.ErrInvalidAmount)
	}
	return nil
}

func overdraftError(accountID int, balance, amount decimal.Decimal) error {
	return fmt.Errorf("account %d has %s, needs %s: %w",
		accountID, balance.String(), amount.String(), apperrors.ErrOverdraft)
}
