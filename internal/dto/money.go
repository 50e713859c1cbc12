package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a decimal that keeps its scale on the wire: 24.50 is written as
// "24.50", not "24.5".
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d for a response body.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// String renders the value with exactly as many fraction digits as it carries.
func (m Money) String() string {
	if exp := m.Exponent(); exp < 0 {
		return m.StringFixed(-exp)
	}
	return m.Decimal.String()
}

// MarshalJSON writes the scale-preserving string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}
