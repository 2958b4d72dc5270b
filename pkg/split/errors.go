package split

import "errors"

var (
	// ErrInvalidArgument is returned when a required constructor input is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPolarity is returned when a transaction type name is neither CREDIT nor DEBIT.
	ErrInvalidPolarity = errors.New("invalid transaction type")

	// ErrMalformedRecord is returned when a serialized split has the wrong number of fields
	// or an amount/currency that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed split record")
)
