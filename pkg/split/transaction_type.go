package split

import "fmt"

// TransactionType is the polarity of a split.
type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// ParseTransactionType returns the type whose name is exactly name.
func ParseTransactionType(name string) (TransactionType, error) {
	switch TransactionType(name) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolarity, name)
}

// Invert returns the opposite polarity. Unknown values are returned unchanged.
func (t TransactionType) Invert() TransactionType {
	switch t {
	case Credit:
		return Debit
	case Debit:
		return Credit
	}
	return t
}

// IsValid reports whether t is CREDIT or DEBIT.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Name returns the serialized name of t.
func (t TransactionType) Name() string {
	return string(t)
}

func (t TransactionType) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t TransactionType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolarity, string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransactionType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
