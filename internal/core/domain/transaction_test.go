package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Kind(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        domain.TransactionKind
	}{
		{
			name:        "deposit has only a target",
			transaction: domain.Transaction{TargetAccountID: intPtr(1)},
			want:        domain.Deposit,
		},
		{
			name:        "withdrawal has only a source",
			transaction: domain.Transaction{SourceAccountID: intPtr(1)},
			want:        domain.Withdrawal,
		},
		{
			name:        "transfer has both",
			transaction: domain.Transaction{SourceAccountID: intPtr(1), TargetAccountID: intPtr(2)},
			want:        domain.Transfer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.Kind())
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid deposit",
			tx: domain.Transaction{
				TransactionTime: now,
				TargetAccountID: intPtr(0),
				Amount:          decimal.RequireFromString("100.00"),
			},
		},
		{
			name: "valid transfer",
			tx: domain.Transaction{
				TransactionTime: now,
				SourceAccountID: intPtr(0),
				TargetAccountID: intPtr(1),
				Amount:          decimal.RequireFromString("0.01"),
			},
		},
		{
			name:    "no accounts",
			tx:      domain.Transaction{Amount: decimal.NewFromInt(1)},
			wantErr: true,
			errMsg:  "must have a source or a target",
		},
		{
			name: "self transfer",
			tx: domain.Transaction{
				SourceAccountID: intPtr(3),
				TargetAccountID: intPtr(3),
				Amount:          decimal.NewFromInt(1),
			},
			wantErr: true,
			errMsg:  "source and target must differ",
		},
		{
			name: "zero amount",
			tx: domain.Transaction{
				SourceAccountID: intPtr(3),
				Amount:          decimal.Zero,
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "negative amount",
			tx: domain.Transaction{
				TargetAccountID: intPtr(3),
				Amount:          decimal.RequireFromString("-5"),
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Involves(t *testing.T) {
	tx := domain.Transaction{SourceAccountID: intPtr(1), TargetAccountID: intPtr(2)}
	assert.True(t, tx.Involves(1))
	assert.True(t, tx.Involves(2))
	assert.False(t, tx.Involves(3))

	deposit := domain.Transaction{TargetAccountID: intPtr(4)}
	assert.True(t, deposit.Involves(4))
	assert.False(t, deposit.Involves(1))
}

func TestTransaction_CloneDoesNotAlias(t *testing.T) {
	original := domain.Transaction{SourceAccountID: intPtr(1), TargetAccountID: intPtr(2), Amount: decimal.NewFromInt(5)}
	clone := original.Clone()

	*clone.SourceAccountID = 10
	*clone.TargetAccountID = 20

	assert.Equal(t, 1, *original.SourceAccountID)
	assert.Equal(t, 2, *original.TargetAccountID)
	assert.True(t, original.Amount.Equal(clone.Amount))

	assert.Nil(t, domain.Transaction{TargetAccountID: intPtr(1)}.Clone().SourceAccountID)
}

// Helper functions
func intPtr(i int) *int {
	return &i
}
