package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount that travels as a bare JSON number, the
// way the storefront backend emits prices and totals. Arithmetic stays
// exact; floats never enter the picture.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

func MoneyFromString(v string) (Money, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", v, err)
	}
	return Money{Decimal: d}, nil
}

// MarshalJSON emits an unquoted number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) MulInt(qty int) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(int64(qty)))}
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}
