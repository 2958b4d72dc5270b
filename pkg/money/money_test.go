package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
		wantErr  error
	}{
		{name: "usd two decimals", amount: "10", currency: "USD", want: "10.00"},
		{name: "eur keeps cents", amount: "25.5", currency: "EUR", want: "25.50"},
		{name: "jpy has no decimals", amount: "1500", currency: "JPY", want: "1500"},
		{name: "negative amount", amount: "-5.00", currency: "USD", want: "-5.00"},
		{name: "bankers rounding", amount: "0.125", currency: "USD", want: "0.12"},
		{name: "surrounding spaces", amount: " 3.10 ", currency: "USD", want: "3.10"},
		{name: "not a number", amount: "ten", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "empty amount", amount: "", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "unknown currency", amount: "1", currency: "ZZZ", wantErr: ErrInvalidCurrency},
		{name: "empty currency", amount: "1", currency: "", wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, m.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.AsString())
			assert.Equal(t, tt.currency, m.CurrencyCode())
		})
	}
}

func TestMoney_SignHelpers(t *testing.T) {
	neg, err := New("-5.00", "USD")
	require.NoError(t, err)
	pos, err := New("5.00", "USD")
	require.NoError(t, err)

	assert.True(t, neg.IsNegative())
	assert.False(t, pos.IsNegative())
	assert.True(t, neg.Absolute().Equal(pos))
	assert.True(t, pos.Negate().Equal(neg))
	assert.Equal(t, "5.00", neg.Absolute().AsString())

	zero, err := Zero("USD")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsNegative())
}

func TestMoney_Equal(t *testing.T) {
	a, _ := New("10.0", "USD")
	b, _ := New("10.00", "USD")
	c, _ := New("10.00", "EUR")
	d, _ := New("10.01", "USD")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "currency must match")
	assert.False(t, a.Equal(d))
	assert.False(t, Money{}.Equal(a))
}

func TestMoney_Arithmetic(t *testing.T) {
	a, _ := New("10.00", "USD")
	b, _ := New("2.50", "USD")
	eur, _ := New("1.00", "EUR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "12.50", sum.AsString())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, "-7.50", diff.AsString())

	_, err = a.Add(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
	_, err = a.Sub(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_String(t *testing.T) {
	m, err := FromDecimal(decimal.RequireFromString("42"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "42.00 USD", m.String())
	assert.Equal(t, "<invalid money>", Money{}.String())
}
