package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// accountRecord is the store-owned state of one account.
// The embedded mutex guards balance; id, owner and creationTime never change.
type accountRecord struct {
	sync.Mutex
	id           int
	owner        string
	creationTime time.Time
	balance      decimal.Decimal
}

func (a *accountRecord) AccountID() int { return a.id }

func (a *accountRecord) Balance() decimal.Decimal { return a.balance }

func (a *accountRecord) SetBalance(balance decimal.Decimal) { a.balance = balance }

func (a *accountRecord) Snapshot() domain.Account {
	return domain.Account{
		AccountID:    a.id,
		Owner:        a.owner,
		CreationTime: a.creationTime,
		Balance:      a.balance,
	}
}

// AccountRepository is an append-only, index-addressed sequence of accounts.
// An account's id is its position in the sequence.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*accountRecord
}

// newAccountRepository creates a new, empty account sequence.
func newAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// Ensure AccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// AppendAccount creates a zero-balance account under the sequence lock, so id
// assignment and append are a single step.
func (r *AccountRepository) AppendAccount(_ context.Context, owner string, stamp func() time.Time) domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &accountRecord{
		id:           len(r.accounts),
		owner:        owner,
		creationTime: stamp(),
		balance:      decimal.Zero,
	}
	r.accounts = append(r.accounts, record)
	// Not yet visible to anyone else, so reading it without the record lock is safe.
	return record.Snapshot()
}

// FindAccountByID returns the account cell for an assigned id.
func (r *AccountRepository) FindAccountByID(_ context.Context, accountID int) (portsrepo.AccountCell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if accountID < 0 || accountID >= len(r.accounts) {
		return nil, fmt.Errorf("account %d: %w", accountID, apperrors.ErrNotFound)
	}
	return r.accounts[accountID], nil
}

// ListAccounts returns the cells in [offset, offset+limit) that exist, in id order.
func (r *AccountRepository) ListAccounts(_ context.Context, limit int, offset int) ([]portsrepo.AccountCell, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", apperrors.ErrValidation)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.accounts) {
		return []portsrepo.AccountCell{}, nil
	}
	end := offset + min(limit, len(r.accounts)-offset)
	cells := make([]portsrepo.AccountCell, 0, end-offset)
	for _, record := range r.accounts[offset:end] {
		cells = append(cells, record)
	}
	return cells, nil
}

// CountAccounts returns the number of accounts created so far.
func (r *AccountRepository) CountAccounts(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
