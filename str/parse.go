package str

import (
	"math"

	"github.com/ardnew/fixstr/pkg"
)

// The read methods decode the fields written by the PadSet methods. They
// always validate, in both build modes, since their input usually comes from
// somewhere else.

// Uint decodes the unsigned field [start, start+width) written by
// [Str.PadSetUint].
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrSyntax] if the field is empty or holds a non-digit
//   - [pkg.ErrDigitOverflow] if the value exceeds a uint64
func (s *Str) Uint(start, width int) (uint64, error) {
	if !s.field(start, width) {
		return 0, pkg.ErrOutOfBounds
	}
	if width == 0 {
		return 0, pkg.ErrSyntax
	}
	return parseDigits(s.buf[start : start+width])
}

// Int decodes the signed field [start, start+width) written by
// [Str.PadSetInt].
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrSyntax] if the field does not match [padding][sign][digits]
//   - [pkg.ErrDigitOverflow] if the value exceeds an int64
func (s *Str) Int(start, width int) (int64, error) {
	if !s.field(start, width) {
		return 0, pkg.ErrOutOfBounds
	}
	neg, digits, err := splitSign(s.buf[start : start+width])
	if err != nil {
		return 0, err
	}
	mag, err := parseDigits(digits)
	if err != nil {
		return 0, err
	}
	if neg {
		if mag > 1<<63 {
			return 0, pkg.ErrDigitOverflow
		}
		return -int64(mag - 1) - 1, nil
	}
	if mag > math.MaxInt64 {
		return 0, pkg.ErrDigitOverflow
	}
	return int64(mag), nil
}

// Float decodes the fixed-point field [start, start+width) written by
// [Str.PadSetFloat], returning the float32 nearest to the decimal text.
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrSyntax] if the field does not match
//     [padding][sign][digits]['.'][digits]
func (s *Str) Float(start, width int) (float32, error) {
	if !s.field(start, width) {
		return 0, pkg.ErrOutOfBounds
	}
	neg, rest, err := splitSign(s.buf[start : start+width])
	if err != nil {
		return 0, err
	}
	point := -1
	for i, c := range rest {
		if c == DecimalPoint {
			point = i
			break
		}
	}
	if point < 1 {
		return 0, pkg.ErrSyntax
	}
	ip, err := parseDecimal(rest[:point])
	if err != nil {
		return 0, err
	}
	frac := rest[point+1:]
	fp, err := parseDecimal(frac)
	if err != nil {
		return 0, err
	}
	v := ip + fp/math.Pow10(len(frac))
	if neg {
		v = -v
	}
	return float32(v), nil
}

// LF decodes the longfloat field [start, start+width) written by
// [Str.PadSetLF], returning the value and its decimals count.
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrSyntax] if the field is shorter than three bytes, lacks a
//     sign, or holds a non-digit
func (s *Str) LF(start, width int) (float32, int, error) {
	if !s.field(start, width) {
		return 0, 0, pkg.ErrOutOfBounds
	}
	if width < 3 {
		return 0, 0, pkg.ErrSyntax
	}
	f := s.buf[start : start+width]
	sign, last := f[0], f[width-1]
	if (sign != PlusChar && sign != MinusChar) || !isDigit(last) {
		return 0, 0, pkg.ErrSyntax
	}
	decimals := int(last - '0')
	m, err := parseDecimal(f[1 : width-1])
	if err != nil {
		return 0, 0, err
	}
	v := m / math.Pow10(decimals)
	if sign == MinusChar {
		v = -v
	}
	return float32(v), decimals, nil
}

// splitSign skips the '0' padding of f and returns the sign and the bytes
// after it.
func splitSign(f []byte) (neg bool, rest []byte, err error) {
	i := 0
	for i < len(f) && f[i] == PadChar {
		i++
	}
	if i == len(f) {
		return false, nil, pkg.ErrSyntax
	}
	switch f[i] {
	case PlusChar:
	case MinusChar:
		neg = true
	default:
		return false, nil, pkg.ErrSyntax
	}
	return neg, f[i+1:], nil
}

// parseDigits decodes a non-empty run of ASCII digits as a uint64.
func parseDigits(f []byte) (uint64, error) {
	if len(f) == 0 {
		return 0, pkg.ErrSyntax
	}
	var v uint64
	for _, c := range f {
		if !isDigit(c) {
			return 0, pkg.ErrSyntax
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, pkg.ErrDigitOverflow
		}
		v = v*10 + d
	}
	return v, nil
}

// parseDecimal decodes a run of ASCII digits of any length as a float64.
// An empty run is zero.
func parseDecimal(f []byte) (float64, error) {
	var v float64
	for _, c := range f {
		if !isDigit(c) {
			return 0, pkg.ErrSyntax
		}
		v = v*10 + float64(c-'0')
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
