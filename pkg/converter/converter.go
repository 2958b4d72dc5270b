package converter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shunichi-ikebuchi/splitledger/pkg/beancount"
	"github.com/shunichi-ikebuchi/splitledger/pkg/money"
	"github.com/shunichi-ikebuchi/splitledger/pkg/split"
)

// unmappedPrefix is used for accounts missing from the mapping file.
const unmappedPrefix = "Assets:Unmapped:"

var (
	// ErrUnbalanced is returned when debits and credits of a transaction differ.
	ErrUnbalanced = errors.New("transaction is not balanced")
	// ErrUnmappedAccount is returned when a Beancount account has no UID mapping.
	ErrUnmappedAccount = errors.New("unmapped beancount account")
)

// Converter converts splits to Beancount transactions and back.
type Converter struct {
	mapper *Mapper
}

// NewConverter creates a new Converter.
func NewConverter(mapper *Mapper) *Converter {
	return &Converter{mapper: mapper}
}

// SplitsToTransaction builds a Beancount transaction from the splits of one transaction.
// DEBIT splits become positive postings and CREDIT splits negative ones.
func (c *Converter) SplitsToTransaction(date, narration string, splits []*split.Split) (beancount.Transaction, error) {
	if len(splits) == 0 {
		return beancount.Transaction{}, fmt.Errorf("%w: no splits to convert", split.ErrInvalidArgument)
	}

	postings := make([]beancount.Posting, 0, len(splits))
	for _, s := range splits {
		amount := s.Amount().Absolute().Decimal()
		switch s.Type() {
		case split.Debit:
		case split.Credit:
			amount = amount.Neg()
		default:
			return beancount.Transaction{}, fmt.Errorf("split %s: %w: %q", s.UID(), split.ErrInvalidPolarity, s.Type())
		}

		account := c.mapper.AccountName(s.AccountUID())
		if account == "" {
			account = unmappedPrefix + sanitizeAccountComponent(s.AccountUID())
		}

		memo, _ := s.Memo()
		postings = append(postings, beancount.Posting{
			Account:  account,
			Amount:   amount,
			Currency: s.Amount().CurrencyCode(),
			Comment:  memo,
		})
	}

	txn := beancount.Transaction{
		Date:      date,
		Narration: narration,
		Postings:  postings,
	}
	if uid := splits[0].TransactionUID(); uid != "" {
		txn.Metadata = map[string]string{"transaction_uid": uid}
	}

	return txn, nil
}

// PostingsToSplits builds splits for transactionUID from Beancount postings.
// The type is set from the posting sign rather than derived by NewSplit, since
// Beancount treats positive amounts as debits.
func (c *Converter) PostingsToSplits(transactionUID string, postings []beancount.Posting) ([]*split.Split, error) {
	splits := make([]*split.Split, 0, len(postings))
	for _, p := range postings {
		accountUID := c.mapper.AccountUID(p.Account)
		if accountUID == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnmappedAccount, p.Account)
		}

		amount, err := money.FromDecimal(p.Amount.Abs(), p.Currency)
		if err != nil {
			return nil, fmt.Errorf("posting %s: %w", p.Account, err)
		}

		s, err := split.NewSplit(amount, accountUID)
		if err != nil {
			return nil, fmt.Errorf("posting %s: %w", p.Account, err)
		}
		s.SetTransactionUID(transactionUID)
		if p.Amount.IsNegative() {
			s.SetType(split.Credit)
		} else {
			s.SetType(split.Debit)
		}
		if p.Comment != "" {
			s.SetMemo(p.Comment)
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// CheckBalanced verifies that debits equal credits in every currency.
func CheckBalanced(splits []*split.Split) error {
	totals := make(map[string]money.Money)
	for _, s := range splits {
		amount := s.Amount().Absolute()
		if s.Type() == split.Credit {
			amount = amount.Negate()
		}

		code := amount.CurrencyCode()
		total, ok := totals[code]
		if !ok {
			totals[code] = amount
			continue
		}
		sum, err := total.Add(amount)
		if err != nil {
			return err
		}
		totals[code] = sum
	}

	var imbalances []string
	for _, total := range totals {
		if !total.IsZero() {
			imbalances = append(imbalances, total.String())
		}
	}
	if len(imbalances) > 0 {
		sort.Strings(imbalances)
		return fmt.Errorf("%w: debits minus credits = %s", ErrUnbalanced, strings.Join(imbalances, ", "))
	}

	return nil
}

func sanitizeAccountComponent(uid string) string {
	var sb strings.Builder
	for _, r := range uid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "Unknown"
	}
	component := sb.String()
	return strings.ToUpper(component[:1]) + component[1:]
}
