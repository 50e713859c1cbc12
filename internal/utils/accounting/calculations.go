package accounting

import (
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of txn on the balance of accountID.
// Credits to the account are positive, debits negative, and transactions that
// do not touch the account contribute zero.
func CalculateSignedAmount(txn domain.Transaction, accountID int) decimal.Decimal {
	signedAmount := decimal.Zero
	if txn.TargetAccountID != nil && *txn.TargetAccountID == accountID {
		signedAmount = signedAmount.Add(txn.Amount)
	}
	if txn.SourceAccountID != nil && *txn.SourceAccountID == accountID {
		signedAmount = signedAmount.Sub(txn.Amount)
	}
	return signedAmount
}

// ReplayBalance folds the account's history, oldest first, into a balance.
// A running total that dips below zero means the history could not have been
// produced by a ledger that forbids overdrafts.
func ReplayBalance(history []domain.Transaction, accountID int) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, txn := range history {
		balance = balance.Add(CalculateSignedAmount(txn, accountID))
		if balance.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: account %d goes negative at transaction %d (running balance %s)",
				apperrors.ErrInvariant, accountID, txn.TransactionID, balance.String())
		}
	}
	return balance, nil
}
