package pkg

import "errors"

// Buffer operation errors.
var (
	// ErrOutOfBounds indicates a write or read region outside the buffer.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrDigitOverflow indicates a rendered number does not fit its field.
	ErrDigitOverflow = errors.New("digit overflow")

	// ErrDecimalOverflow indicates the requested decimals do not fit the field.
	ErrDecimalOverflow = errors.New("decimal overflow")

	// ErrInvalidRange indicates a range whose end precedes its start.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNotFinite indicates a NaN or infinite float value.
	ErrNotFinite = errors.New("value not finite")

	// ErrSizeMismatch indicates two buffers of different capacity where
	// equal capacity is required.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrSyntax indicates field content that does not parse as the
	// requested numeric layout.
	ErrSyntax = errors.New("invalid syntax")
)

// Status is the integer result code of a buffer operation. Negative values
// are failures; the first three match the codes of the original C++ library.
type Status int

// Status values.
const (
	StatusOK              Status = 0  // Operation succeeded
	StatusOutOfBounds     Status = -1 // Region outside the buffer
	StatusDigitOverflow   Status = -2 // Number does not fit the field
	StatusDecimalOverflow Status = -3 // Decimals do not fit the field
	StatusInvalidRange    Status = -4 // Range end precedes start
	StatusNotFinite       Status = -5 // NaN or infinity
	StatusSizeMismatch    Status = -6 // Capacities differ
	StatusSyntax          Status = -7 // Field does not parse
	StatusUnknown         Status = -128
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusOutOfBounds:
		return "out-of-bounds"
	case StatusDigitOverflow:
		return "digit-overflow"
	case StatusDecimalOverflow:
		return "decimal-overflow"
	case StatusInvalidRange:
		return "invalid-range"
	case StatusNotFinite:
		return "not-finite"
	case StatusSizeMismatch:
		return "size-mismatch"
	case StatusSyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// Error returns the sentinel error corresponding to the status, or nil for
// [StatusOK].
func (s Status) Error() error {
	switch s {
	case StatusOK:
		return nil
	case StatusOutOfBounds:
		return ErrOutOfBounds
	case StatusDigitOverflow:
		return ErrDigitOverflow
	case StatusDecimalOverflow:
		return ErrDecimalOverflow
	case StatusInvalidRange:
		return ErrInvalidRange
	case StatusNotFinite:
		return ErrNotFinite
	case StatusSizeMismatch:
		return ErrSizeMismatch
	case StatusSyntax:
		return ErrSyntax
	default:
		return errUnknown
	}
}

var errUnknown = errors.New("unknown status")

// StatusOf returns the status code for err. Wrapped sentinels are
// recognized; any other non-nil error maps to [StatusUnknown].
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrOutOfBounds):
		return StatusOutOfBounds
	case errors.Is(err, ErrDigitOverflow):
		return StatusDigitOverflow
	case errors.Is(err, ErrDecimalOverflow):
		return StatusDecimalOverflow
	case errors.Is(err, ErrInvalidRange):
		return StatusInvalidRange
	case errors.Is(err, ErrNotFinite):
		return StatusNotFinite
	case errors.Is(err, ErrSizeMismatch):
		return StatusSizeMismatch
	case errors.Is(err, ErrSyntax):
		return StatusSyntax
	default:
		return StatusUnknown
	}
}
