// Package money provides an immutable signed decimal amount bound to an ISO 4217 currency.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	// ErrInvalidAmount is returned when an amount string is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCurrency is returned when a currency code is not a known ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")
	// ErrCurrencyMismatch is returned by arithmetic on amounts of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money is a signed decimal amount in a single currency.
// The zero value is not a valid amount; use New, FromDecimal or Zero.
type Money struct {
	amount decimal.Decimal
	unit   currency.Unit
	code   string
	scale  int32
}

// New parses amount as a decimal number and binds it to currencyCode.
// The amount is rounded half-to-even to the currency's standard number of decimals.
func New(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return FromDecimal(d, currencyCode)
}

// FromDecimal binds d to currencyCode.
func FromDecimal(d decimal.Decimal, currencyCode string) (Money, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currencyCode)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return Money{
		amount: d.RoundBank(int32(scale)),
		unit:   unit,
		code:   unit.String(),
		scale:  int32(scale),
	}, nil
}

// Zero returns a zero amount in currencyCode.
func Zero(currencyCode string) (Money, error) {
	return FromDecimal(decimal.Zero, currencyCode)
}

// IsValid reports whether m was built by one of the constructors.
func (m Money) IsValid() bool {
	return m.code != ""
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// CurrencyCode returns the ISO 4217 code, e.g. "USD".
func (m Money) CurrencyCode() string {
	return m.code
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Absolute returns the amount without its sign.
func (m Money) Absolute() Money {
	m.amount = m.amount.Abs()
	return m
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	m.amount = m.amount.Neg()
	return m
}

// Add returns m + other. Both amounts must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.code != other.code {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.code, other.code)
	}
	m.amount = m.amount.Add(other.amount)
	return m, nil
}

// Sub returns m - other. Both amounts must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.code != other.code {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.code, other.code)
	}
	m.amount = m.amount.Sub(other.amount)
	return m, nil
}

// Equal reports whether both the numeric value and the currency match.
// 10.0 USD equals 10.00 USD.
func (m Money) Equal(other Money) bool {
	return m.code == other.code && m.amount.Equal(other.amount)
}

// AsString returns the canonical plain decimal form at the currency's scale,
// e.g. "10.00" for USD or "1500" for JPY. The currency code is not included.
func (m Money) AsString() string {
	return m.amount.StringFixed(m.scale)
}

// String returns the amount followed by the currency code, e.g. "10.00 USD".
func (m Money) String() string {
	if !m.IsValid() {
		return "<invalid money>"
	}
	return m.AsString() + " " + m.code
}
