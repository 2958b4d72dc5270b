// Package split models one leg of a double-entry transaction.
//
// Every transaction is made up of at least two splits. A split records an amount
// against one account together with its type, CREDIT or DEBIT. The amount is
// persisted as an absolute value next to the type; negative amounts are a display
// convention and do not belong to the stored record. How the type moves an
// account balance depends on the account's normal balance, which is not computed here.
//
// A Split is not safe for concurrent mutation.
package split

import (
	"fmt"

	"github.com/shunichi-ikebuchi/splitledger/pkg/identity"
	"github.com/shunichi-ikebuchi/splitledger/pkg/money"
)

// Split is an amount tagged CREDIT or DEBIT against one account.
type Split struct {
	identity.Base

	amount         money.Money
	transactionUID string
	accountUID     string
	splitType      TransactionType
	memo           string
	hasMemo        bool
}

// NewSplit creates a split of amount against accountUID with a fresh identifier.
//
// The type defaults to DEBIT for negative amounts and CREDIT otherwise. The
// proper type also depends on the account type, which would need an account
// lookup; callers that know better should call SetType.
func NewSplit(amount money.Money, accountUID string) (*Split, error) {
	if !amount.IsValid() {
		return nil, fmt.Errorf("%w: split amount is required", ErrInvalidArgument)
	}

	s := &Split{
		Base:       identity.NewBase(),
		amount:     amount,
		accountUID: accountUID,
		splitType:  Credit,
	}
	if amount.IsNegative() {
		s.splitType = Debit
	}
	return s, nil
}

// Amount returns the amount as it was set.
func (s *Split) Amount() money.Money {
	return s.amount
}

// SetAmount replaces the amount. The type is left untouched.
func (s *Split) SetAmount(amount money.Money) {
	s.amount = amount
}

// TransactionUID returns the owning transaction, or "" when not yet assigned.
func (s *Split) TransactionUID() string {
	return s.transactionUID
}

func (s *Split) SetTransactionUID(transactionUID string) {
	s.transactionUID = transactionUID
}

// AccountUID returns the account this split affects.
func (s *Split) AccountUID() string {
	return s.accountUID
}

func (s *Split) SetAccountUID(accountUID string) {
	s.accountUID = accountUID
}

// Type returns the split's polarity.
func (s *Split) Type() TransactionType {
	return s.splitType
}

// SetType overrides the polarity unconditionally. It is never re-derived from the amount.
func (s *Split) SetType(t TransactionType) {
	s.splitType = t
}

// Memo returns the memo and whether one is set.
func (s *Split) Memo() (string, bool) {
	return s.memo, s.hasMemo
}

// SetMemo sets the memo. An empty string is a present, empty memo.
func (s *Split) SetMemo(memo string) {
	s.memo = memo
	s.hasMemo = true
}

// ClearMemo removes the memo.
func (s *Split) ClearMemo() {
	s.memo = ""
	s.hasMemo = false
}

// CreatePair returns the opposite leg of s posted to accountUID.
// The pair has the absolute amount, the inverted type, the same memo and
// transaction, and a fresh identifier.
func (s *Split) CreatePair(accountUID string) *Split {
	return &Split{
		Base:           identity.NewBase(),
		amount:         s.amount.Absolute(),
		transactionUID: s.transactionUID,
		accountUID:     accountUID,
		splitType:      s.splitType.Invert(),
		memo:           s.memo,
		hasMemo:        s.hasMemo,
	}
}

// IsPairOf reports whether other has the same absolute amount and currency
// as s and the opposite type. Accounts and transactions are not compared.
func (s *Split) IsPairOf(other *Split) bool {
	if other == nil {
		return false
	}
	return s.amount.Absolute().Equal(other.amount.Absolute()) &&
		s.splitType.Invert() == other.splitType
}

// Copy duplicates s with its amount normalized to the absolute value.
// With generateUID the copy gets a fresh identifier, otherwise it keeps the
// identifier of s and avoiding collisions is up to the caller.
func (s *Split) Copy(generateUID bool) *Split {
	c := &Split{
		amount:         s.amount.Absolute(),
		transactionUID: s.transactionUID,
		accountUID:     s.accountUID,
		splitType:      s.splitType,
		memo:           s.memo,
		hasMemo:        s.hasMemo,
	}
	if generateUID {
		c.GenerateUID()
	} else {
		c.SetUID(s.UID())
	}
	return c
}

// Clone returns an exact copy of s, identifier and signed amount included.
func (s *Split) Clone() *Split {
	c := *s
	return &c
}

func (s *Split) String() string {
	return fmt.Sprintf("%s of %s in account: %s", s.splitType.Name(), s.amount, s.accountUID)
}
