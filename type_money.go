package statement

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of a statement when none is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value      decimal.Decimal // as major unit value
	cur        string
	fractional bool // true to print in full digits
}

// M returns a Money.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount prefixed by the currency symbol, with the
// currency's number of fraction digits, like "$12.30" or "$-1580.00".
//
// Exact money keeps any extra significant digit ("$0.125").
func (m Money) String() string {
	cur := m.currency()
	digits := int32(cur.Fraction)
	if m.fractional {
		if e := -m.value.Exponent(); e > digits {
			digits = e
		}
	}
	return cur.Grapheme + m.value.StringFixed(digits)
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money       { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money       { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) Round(places int32) Money   { return Money{value: m.value.Round(places), cur: m.cur} }
func (m Money) Decimal() decimal.Decimal   { return m.value }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// exact return a copy of money that will be printed with all the digits.
func (m Money) exact() Money {
	m.fractional = true
	return m
}
