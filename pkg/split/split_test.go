package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/splitledger/pkg/money"
)

func mustMoney(t *testing.T, amount, currency string) money.Money {
	t.Helper()
	m, err := money.New(amount, currency)
	require.NoError(t, err)
	return m
}

func mustSplit(t *testing.T, amount, currency, account string) *Split {
	t.Helper()
	s, err := NewSplit(mustMoney(t, amount, currency), account)
	require.NoError(t, err)
	return s
}

func TestNewSplit_TypeFromSign(t *testing.T) {
	tests := []struct {
		amount string
		want   TransactionType
	}{
		{amount: "-0.01", want: Debit},
		{amount: "-1500.00", want: Debit},
		{amount: "0", want: Credit},
		{amount: "0.01", want: Credit},
		{amount: "99.99", want: Credit},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			s := mustSplit(t, tt.amount, "USD", "acct-1")
			assert.Equal(t, tt.want, s.Type())
		})
	}
}

func TestNewSplit_Defaults(t *testing.T) {
	s := mustSplit(t, "10.00", "USD", "acct-1")

	assert.True(t, s.HasUID())
	assert.Equal(t, "acct-1", s.AccountUID())
	assert.Equal(t, "", s.TransactionUID())
	_, hasMemo := s.Memo()
	assert.False(t, hasMemo)
}

func TestNewSplit_MissingAmount(t *testing.T) {
	s, err := NewSplit(money.Money{}, "acct-1")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, s)
}

func TestNewSplit_EmptyAccountAccepted(t *testing.T) {
	s, err := NewSplit(mustMoney(t, "1", "USD"), "")
	require.NoError(t, err)
	assert.Equal(t, "", s.AccountUID())
}

func TestSplit_SettersDoNotRederive(t *testing.T) {
	s := mustSplit(t, "10.00", "USD", "acct-1")
	require.Equal(t, Credit, s.Type())

	s.SetAmount(mustMoney(t, "-10.00", "USD"))
	assert.Equal(t, Credit, s.Type(), "changing the amount keeps the type")

	s.SetType(Debit)
	assert.Equal(t, Debit, s.Type())
	s.SetAmount(mustMoney(t, "3.00", "USD"))
	assert.Equal(t, Debit, s.Type())

	s.SetMemo("rent")
	memo, ok := s.Memo()
	assert.True(t, ok)
	assert.Equal(t, "rent", memo)

	s.ClearMemo()
	_, ok = s.Memo()
	assert.False(t, ok)
}

func TestSplit_CreatePair(t *testing.T) {
	s := mustSplit(t, "-42.10", "EUR", "acct-1")
	s.SetTransactionUID("txn-1")
	s.SetMemo("dinner")

	pair := s.CreatePair("acct-2")

	assert.True(t, pair.Amount().Equal(mustMoney(t, "42.10", "EUR")))
	assert.False(t, pair.Amount().IsNegative())
	assert.Equal(t, Credit, pair.Type())
	assert.Equal(t, "acct-2", pair.AccountUID())
	assert.Equal(t, "txn-1", pair.TransactionUID())
	memo, ok := pair.Memo()
	assert.True(t, ok)
	assert.Equal(t, "dinner", memo)
	assert.NotEqual(t, s.UID(), pair.UID())
}

func TestSplit_CreatePairWithoutMemo(t *testing.T) {
	s := mustSplit(t, "5", "USD", "acct-1")
	pair := s.CreatePair("acct-2")

	_, ok := pair.Memo()
	assert.False(t, ok)
}

func TestSplit_PairSymmetry(t *testing.T) {
	splits := []*Split{
		mustSplit(t, "10.00", "USD", "acct-1"),
		mustSplit(t, "-10.00", "USD", "acct-1"),
		mustSplit(t, "0", "JPY", "acct-1"),
		mustSplit(t, "1500", "JPY", "acct-3"),
	}
	debit := mustSplit(t, "7.77", "GBP", "acct-1")
	debit.SetType(Debit)
	splits = append(splits, debit)

	for _, s := range splits {
		pair := s.CreatePair("acct-2")
		assert.True(t, s.IsPairOf(pair), "%s should pair with %s", s, pair)
		assert.True(t, pair.IsPairOf(s), "%s should pair with %s", pair, s)
	}
}

func TestSplit_PairSignIndependence(t *testing.T) {
	negative := mustSplit(t, "-5.00", "USD", "acct-1")
	positive := mustSplit(t, "5.00", "USD", "acct-2")
	require.Equal(t, Debit, negative.Type())
	require.Equal(t, Credit, positive.Type())

	assert.True(t, negative.IsPairOf(positive))
	assert.True(t, positive.IsPairOf(negative))
}

func TestSplit_IsPairOf_Rejects(t *testing.T) {
	base := mustSplit(t, "5.00", "USD", "acct-1")

	sameType := mustSplit(t, "5.00", "USD", "acct-2")
	assert.False(t, base.IsPairOf(sameType), "same type is not a pair")

	otherAmount := mustSplit(t, "5.01", "USD", "acct-2")
	otherAmount.SetType(Debit)
	assert.False(t, base.IsPairOf(otherAmount))

	otherCurrency := mustSplit(t, "5.00", "EUR", "acct-2")
	otherCurrency.SetType(Debit)
	assert.False(t, base.IsPairOf(otherCurrency))

	assert.False(t, base.IsPairOf(nil))
}

func TestSplit_IsPairOf_IgnoresReferences(t *testing.T) {
	a := mustSplit(t, "5.00", "USD", "acct-1")
	a.SetTransactionUID("txn-1")
	b := mustSplit(t, "5.00", "USD", "acct-1")
	b.SetTransactionUID("txn-2")
	b.SetType(Debit)

	assert.True(t, a.IsPairOf(b))
}

func TestSplit_Copy(t *testing.T) {
	s := mustSplit(t, "-12.34", "USD", "acct-1")
	s.SetTransactionUID("txn-1")
	s.SetMemo("coffee")

	for _, generateUID := range []bool{true, false} {
		c := s.Copy(generateUID)

		assert.True(t, c.Amount().Equal(s.Amount().Absolute()))
		assert.False(t, c.Amount().IsNegative())
		assert.Equal(t, s.AccountUID(), c.AccountUID())
		assert.Equal(t, s.TransactionUID(), c.TransactionUID())
		assert.Equal(t, s.Type(), c.Type())
		memo, ok := c.Memo()
		assert.True(t, ok)
		assert.Equal(t, "coffee", memo)

		if generateUID {
			assert.NotEqual(t, s.UID(), c.UID())
		} else {
			assert.Equal(t, s.UID(), c.UID())
		}
	}

	assert.True(t, s.Amount().IsNegative(), "copying leaves the source untouched")
}

func TestSplit_Clone(t *testing.T) {
	s := mustSplit(t, "-12.34", "USD", "acct-1")
	s.SetTransactionUID("txn-1")
	s.SetMemo("coffee")
	s.SetType(Credit)

	c := s.Clone()
	require.NotSame(t, s, c)
	assert.Equal(t, s.UID(), c.UID())
	assert.True(t, c.Amount().Equal(s.Amount()), "clone keeps the signed amount")
	assert.Equal(t, Credit, c.Type())
	assert.Equal(t, "txn-1", c.TransactionUID())

	c.SetMemo("tea")
	memo, _ := s.Memo()
	assert.Equal(t, "coffee", memo, "clone is independent of its source")
}

func TestSplit_String(t *testing.T) {
	s := mustSplit(t, "10", "USD", "acct-1")
	assert.Equal(t, "CREDIT of 10.00 USD in account: acct-1", s.String())
}
