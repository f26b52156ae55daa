package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

// Money is a non-negative monetary amount stored as integer cents.
// Integer arithmetic keeps wallet credits and advance debits exact; ledger
// balances must never drift by rounding.
//
// The zero value is a valid zero amount, so Money carries no constructor
// guard; negative amounts are unrepresentable through the constructors.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from integer cents. Negative amounts are
// rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, 0, math.MaxInt64)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money from a decimal amount such as 125.40,
// rounding to the nearest cent.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0.0, math.MaxFloat64)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount as a decimal number of currency units.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m minus other. Fails if the result would be negative: balances
// are never negative by construction.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", other.cents, 0, m.cents)
	}
	return Money{cents: m.cents - other.cents}, nil
}

// Percent returns p percent of the amount, truncated to whole cents.
func (m Money) Percent(p int) (Money, error) {
	if p < 0 || p > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("percent", p, 0, 100)
	}
	return Money{cents: m.cents * int64(p) / 100}, nil
}

// String formats the amount with two decimal places, e.g. "125.40".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
