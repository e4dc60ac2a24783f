package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using
// big.Rat. Storing the value as a rational number avoids floating-point
// drift when discounts stack percentage multipliers onto list prices.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromFloat64 creates a Money from a float64 amount.
// Intended for values that arrive as decimals from external stores
// (discount values, price-bucket bounds).
func NewMoneyFromFloat64(amount float64) *Money {
	rat := new(big.Rat)
	if _, ok := rat.SetString(fmt.Sprintf("%.6f", amount)); !ok {
		rat.SetInt64(0)
	}
	return &Money{rat: rat}
}

// Zero returns a Money representing zero.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the rational number.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the rational number.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// Subtract subtracts another Money value and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat multiplies by a rational number and returns a new Money.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// IsNegative returns true if the value is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// LessThan returns true if this value is less than the other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this value is greater than the other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if both values are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
