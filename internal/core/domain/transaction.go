package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction by which account ids it carries.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
	Transfer   TransactionKind = "TRANSFER"
)

// Transaction is an immutable record of one balance-changing event.
type Transaction struct {
	TransactionID   int             `json:"transactionId"`   // Sequential, zero-based, never reused
	TransactionTime time.Time       `json:"transactionTime"` // Commit time from the ledger clock
	SourceAccountID *int            `json:"sourceAccountId"` // Nil for deposits
	TargetAccountID *int            `json:"targetAccountId"` // Nil for withdrawals
	Amount          decimal.Decimal `json:"amount"`          // Strictly positive
}

// Kind reports the shape of the transaction. It is only meaningful for a transaction that passes Validate.
func (t Transaction) Kind() TransactionKind {
	switch {
	case t.SourceAccountID == nil:
		return Deposit
	case t.TargetAccountID == nil:
		return Withdrawal
	default:
		return Transfer
	}
}

// Validate checks the shape and amount invariants of a transaction.
func (t Transaction) Validate() error {
	if t.SourceAccountID == nil && t.TargetAccountID == nil {
		return errors.New("transaction must have a source or a target account")
	}
	if t.SourceAccountID != nil && t.TargetAccountID != nil && *t.SourceAccountID == *t.TargetAccountID {
		return errors.New("transfer source and target must differ")
	}
	if !t.Amount.IsPositive() {
		return errors.New("transaction amount must be positive")
	}
	return nil
}

// Involves reports whether the account is the source or the target of the transaction.
func (t Transaction) Involves(accountID int) bool {
	return (t.SourceAccountID != nil && *t.SourceAccountID == accountID) ||
		(t.TargetAccountID != nil && *t.TargetAccountID == accountID)
}

// Clone returns a deep copy so the optional ids never alias the original.
func (t Transaction) Clone() Transaction {
	c := t
	c.SourceAccountID = copyID(t.SourceAccountID)
	c.TargetAccountID = copyID(t.TargetAccountID)
	return c
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
