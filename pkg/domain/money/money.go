// Package money provides the monetary value object used for account
// balances and deposit amounts. Amounts are stored in centavos.
package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Money errors
var (
	// ErrInvalidAmount is returned when an amount is not a representable number.
	ErrInvalidAmount = errors.New("amount is not a valid monetary value")
	// ErrTooManyDecimals is returned when an amount has sub-centavo precision.
	ErrTooManyDecimals = errors.New("amount has more than two decimal places")
	// ErrAmountExceedsMaxSafeInt is returned when an amount or sum would overflow int64.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)

// Amount represents a monetary amount as an integer in centavos.
type Amount = int64

// Money represents a monetary value in centavos (BRL smallest unit).
// Invariants:
//   - Amount is always stored in centavos.
//   - Arithmetic never overflows silently; operations that would overflow
//     return ErrAmountExceedsMaxSafeInt.
type Money struct {
	amount Amount
}

// New creates a Money value from an amount in reais.
// Invariants enforced:
//   - Amount must be a finite number.
//   - Amount must not have more than two decimal places.
//   - Amount must fit int64 centavos.
//
// Returns Money or an error if any invariant is violated.
func New(amount float64) (m Money, err error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		err = ErrInvalidAmount
		return
	}

	centavos, err := toCentavos(amount)
	if err != nil {
		return
	}

	m = Money{amount: centavos}
	return
}

// NewFromData creates a Money value directly from centavos (used for DB hydration).
func NewFromData(amount int64) Money {
	return Money{amount: amount}
}

// Zero returns the zero monetary value.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in centavos.
func (m Money) Amount() Amount {
	return m.amount
}

// Float returns the amount as a float64 in reais.
func (m Money) Float() float64 {
	return float64(m.amount) / 100.0
}

// Add adds another Money value to the current one.
// Returns ErrAmountExceedsMaxSafeInt if the sum would overflow.
func (m Money) Add(other Money) (Money, error) {
	if other.amount > 0 && m.amount > math.MaxInt64-other.amount {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	if other.amount < 0 && m.amount < math.MinInt64-other.amount {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Equals checks if two Money values are equal.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a string representation of the Money value in reais.
func (m Money) String() string {
	return fmt.Sprintf("%.2f BRL", m.Float())
}

// toCentavos converts a float64 amount in reais to centavos using precise
// decimal arithmetic, rejecting sub-centavo precision instead of rounding.
func toCentavos(amount float64) (int64, error) {
	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > 2 {
			return 0, ErrTooManyDecimals
		}
	}

	amountRat, ok := new(big.Rat).SetString(fmt.Sprintf("%.2f", amount))
	if !ok {
		return 0, ErrInvalidAmount
	}

	centavosRat := new(big.Rat).Mul(amountRat, big.NewRat(100, 1))
	if !centavosRat.IsInt() {
		return 0, ErrTooManyDecimals
	}

	centavos := centavosRat.Num()
	if !centavos.IsInt64() {
		return 0, ErrAmountExceedsMaxSafeInt
	}
	return centavos.Int64(), nil
}
