package kernel

import (
	"fmt"

	"orderdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Currency is the only settlement currency of the platform.
const Currency = "USD"

// Money is a non-negative amount in Currency, kept at cent precision.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is 0.00 USD.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney rounds amount to cents and rejects negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(2)}, nil
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(amount string) Money {
	m, err := NewMoney(decimal.RequireFromString(amount))
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub never goes below zero: the ledger only ever subtracts a share of the
// same amount.
func (m Money) Sub(other Money) Money {
	if other.amount.GreaterThan(m.amount) {
		return ZeroMoney
	}
	return Money{amount: m.amount.Sub(other.amount)}
}

// Percent returns pct percent of m rounded half away from zero to cents.
func (m Money) Percent(pct int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100)).Round(2)}
}

func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string and applies the
// NewMoney rules.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	parsed, err := NewMoney(amount)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
