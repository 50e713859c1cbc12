package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalJSONKeepsScale(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{"trailing zeros", decimal.RequireFromString("100.00"), `"100.00"`},
		{"one trailing zero", decimal.RequireFromString("75.50"), `"75.50"`},
		{"accumulated scale", decimal.RequireFromString("100.00").Sub(decimal.RequireFromString("75.5")), `"24.50"`},
		{"zero", decimal.Zero, `"0"`},
		{"zero with scale", decimal.RequireFromString("0.00"), `"0.00"`},
		{"integer", decimal.NewFromInt(42), `"42"`},
		{"positive exponent", decimal.New(3, 2), `"300"`},
		{"negative", decimal.RequireFromString("-1.10"), `"-1.10"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(dto.NewMoney(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	var m dto.Money
	require.NoError(t, json.Unmarshal([]byte(`"24.50"`), &m))
	assert.True(t, decimal.RequireFromString("24.5").Equal(m.Decimal))
	assert.Equal(t, "24.50", m.String())
}

func TestAccountResponse_BalanceKeepsScale(t *testing.T) {
	resp := dto.AccountResponse{AccountID: 1, Owner: "Jane Doe", Balance: dto.NewMoney(decimal.RequireFromString("75.50"))}
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"balance":"75.50"`)
}
