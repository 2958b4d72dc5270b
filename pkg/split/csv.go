package split

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shunichi-ikebuchi/splitledger/pkg/money"
)

// Record layout: amount;currency;accountUID;transactionUID;TYPE[;memo]
const (
	fieldSeparator = ';'
	escapeChar     = '\\'

	requiredFields = 5
	maxFields      = 6
)

// ToCSV returns the split as a single record that ParseSplit reads back.
//
// The amount is written as its absolute value. Inside the account, transaction
// and memo fields a backslash is written as `\\`, the separator as `\;`, and line
// breaks as `\n` and `\r`, so a record is always a single line. Fields without
// any of these characters are written verbatim. The memo field is omitted when
// no memo is set.
func (s *Split) ToCSV() string {
	var sb strings.Builder
	sb.WriteString(s.amount.Absolute().AsString())
	sb.WriteByte(fieldSeparator)
	sb.WriteString(s.amount.CurrencyCode())
	sb.WriteByte(fieldSeparator)
	sb.WriteString(escapeField(s.accountUID))
	sb.WriteByte(fieldSeparator)
	sb.WriteString(escapeField(s.transactionUID))
	sb.WriteByte(fieldSeparator)
	sb.WriteString(s.splitType.Name())
	if s.hasMemo {
		sb.WriteByte(fieldSeparator)
		sb.WriteString(escapeField(s.memo))
	}
	return sb.String()
}

// ParseSplit parses a record produced by ToCSV.
//
// The type field overrides the type derived from the amount sign. The parsed
// split gets a fresh identifier. The record must not carry its line terminator.
func ParseSplit(record string) (*Split, error) {
	return parseSplit(record, "")
}

func parseSplit(record, defaultCurrency string) (*Split, error) {
	tokens := splitFields(record)
	if len(tokens) < requiredFields || len(tokens) > maxFields {
		return nil, fmt.Errorf("%w: expected %d or %d fields, got %d",
			ErrMalformedRecord, requiredFields, maxFields, len(tokens))
	}

	currencyCode := tokens[1]
	if currencyCode == "" {
		currencyCode = defaultCurrency
	}
	amount, err := money.New(tokens[0], currencyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	s, err := NewSplit(amount, tokens[2])
	if err != nil {
		return nil, err
	}
	s.SetTransactionUID(tokens[3])

	splitType, err := ParseTransactionType(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	s.SetType(splitType)

	if len(tokens) == maxFields {
		s.SetMemo(tokens[5])
	}
	return s, nil
}

// ReadOption configures ReadSplits.
type ReadOption func(*readOptions)

type readOptions struct {
	defaultCurrency string
}

// WithDefaultCurrency sets the currency used for records whose currency field is empty.
func WithDefaultCurrency(code string) ReadOption {
	return func(o *readOptions) {
		o.defaultCurrency = code
	}
}

// ReadSplits parses one record per line from r.
// Blank lines and lines starting with '#' are skipped.
func ReadSplits(r io.Reader, opts ...ReadOption) ([]*Split, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	var splits []*Split

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseSplit(line, o.defaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		splits = append(splits, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read split records: %w", err)
	}

	return splits, nil
}

// WriteSplits writes one record per line to w.
func WriteSplits(w io.Writer, splits []*Split) error {
	bw := bufio.NewWriter(w)
	for _, s := range splits {
		if _, err := bw.WriteString(s.ToCSV() + "\n"); err != nil {
			return fmt.Errorf("failed to write split %s: %w", s.UID(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush split records: %w", err)
	}
	return nil
}

func escapeField(field string) string {
	if !strings.ContainsAny(field, "\\;\n\r") {
		return field
	}

	var sb strings.Builder
	sb.Grow(len(field) + 2)
	for i := 0; i < len(field); i++ {
		switch c := field[i]; c {
		case escapeChar, fieldSeparator:
			sb.WriteByte(escapeChar)
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// splitFields splits on unescaped separators and decodes escapes.
// An escape of any other character is kept literally, backslash included.
func splitFields(record string) []string {
	var (
		fields  []string
		sb      strings.Builder
		escaped bool
	)
	for i := 0; i < len(record); i++ {
		c := record[i]
		switch {
		case escaped:
			switch c {
			case escapeChar, fieldSeparator:
				sb.WriteByte(c)
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(escapeChar)
				sb.WriteByte(c)
			}
			escaped = false
		case c == escapeChar:
			escaped = true
		case c == fieldSeparator:
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	if escaped {
		sb.WriteByte(escapeChar)
	}
	return append(fields, sb.String())
}
