package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a point-in-time snapshot of a ledger account.
// Values of this type are copies; mutating one never affects the ledger.
type Account struct {
	AccountID    int             `json:"accountId"`    // Sequential, zero-based, never reused
	Owner        string          `json:"owner"`        // Set once at creation
	CreationTime time.Time       `json:"creationTime"` // Taken from the ledger clock
	Balance      decimal.Decimal `json:"balance"`      // Never negative
}
