package str

import (
	"math"

	"github.com/ardnew/fixstr/pkg"
)

// Characters of the numeric field layouts.
const (
	PadChar      = '0' // Left padding of numeric fields
	PlusChar     = '+' // Sign of values >= 0
	MinusChar    = '-' // Sign of values < 0
	DecimalPoint = '.' // Separator of fixed-point floats
)

// MaxLFDecimals is the largest decimals count of a longfloat field, whose
// trailing decimals character is a single digit.
const MaxLFDecimals = 9

// twoTo64 is the smallest float32 whose integer part overflows uint64.
const twoTo64 = float32(1 << 64)

var pow10f = [MaxLFDecimals + 1]float32{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// PadSetUint writes v in decimal, right-justified in the field
// [start, start+width) and left-padded with '0'. Zero is written as a
// single '0' digit.
//
//	s.PadSetUint(0, 8, 1234) // "00001234"
//
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrDigitOverflow] if v has more than width digits
func (s *Str) PadSetUint(start, width int, v uint64) error {
	if Checked {
		if !s.field(start, width) {
			return pkg.ErrOutOfBounds
		}
		if countDigits(v) > width {
			return pkg.ErrDigitOverflow
		}
	}
	putDigits(s.buf[start:start+width], v)
	return nil
}

// SetUint writes the decimal digits of v at start, without padding, and
// returns the number of bytes written.
//
//	n, _ := s.SetUint(3, 1234) // "1234" at [3, 7), n == 4
//
// Returns [pkg.ErrOutOfBounds] if the digits do not fit in the buffer.
func (s *Str) SetUint(start int, v uint64) (int, error) {
	n := countDigits(v)
	if Checked && !s.field(start, n) {
		return 0, pkg.ErrOutOfBounds
	}
	putDigits(s.buf[start:start+n], v)
	return n, nil
}

// SetInt writes v in decimal at start, without padding, and returns the
// number of bytes written. Only negative values carry a sign.
//
// Returns [pkg.ErrOutOfBounds] if the sign and digits do not fit.
func (s *Str) SetInt(start int, v int64) (int, error) {
	mag, neg := magnitude(v)
	n := countDigits(mag)
	if neg {
		n++
	}
	if Checked && !s.field(start, n) {
		return 0, pkg.ErrOutOfBounds
	}
	f := s.buf[start : start+n]
	if neg {
		f[0] = MinusChar
		f = f[1:]
	}
	putDigits(f, mag)
	return n, nil
}

// PadSetInt writes v in decimal with an explicit sign into the field
// [start, start+width). The layout is [padding][sign][digits]: the sign is
// '+' for v >= 0 and '-' for v < 0, and sits immediately left of the digits.
//
//	s.PadSetInt(0, 6, -42) // "000-42"
//
// Returns:
//   - [pkg.ErrOutOfBounds] if the field does not fit in the buffer
//   - [pkg.ErrDigitOverflow] if the digits of |v| plus the sign exceed width
func (s *Str) PadSetInt(start, width int, v int64) error {
	mag, neg := magnitude(v)
	digits := countDigits(mag)
	if Checked {
		if !s.field(start, width) {
			return pkg.ErrOutOfBounds
		}
		if digits+1 > width {
			return pkg.ErrDigitOverflow
		}
	}
	f := s.buf[start : start+width]
	p := width - digits - 1
	putPad(f[:p])
	f[p] = signChar(neg)
	putDigits(f[p+1:], mag)
	return nil
}

// PadSetFloat writes v as a fixed-point decimal into the field
// [start, start+width). The layout is
//
//	[padding][sign][integer digits]['.'][decimals fractional digits]
//
// so sign and point always take two characters, and the point is written
// even when decimals is zero.
//
//	s.PadSetFloat(0, 7, 2, 12.34) // "0+12.34"
//
// Fractional digits are produced by repeatedly multiplying the remaining
// fraction by ten and truncating, in float32 arithmetic. The result is never
// rounded: 0.999 with two decimals is "+0.99". Downstream consumers depend on
// this exact output.
//
// Returns:
//   - [pkg.ErrOutOfBounds] if decimals is negative or the field does not fit
//   - [pkg.ErrNotFinite] if v is NaN or infinite
//   - [pkg.ErrDigitOverflow] if integer digits + decimals + 2 exceed width,
//     or the integer part of v does not fit in a uint64
func (s *Str) PadSetFloat(start, width, decimals int, v float32) error {
	if Checked {
		if decimals < 0 || !s.field(start, width) {
			return pkg.ErrOutOfBounds
		}
		if !finite(v) {
			return pkg.ErrNotFinite
		}
	}
	neg := v < 0
	a := abs(v)
	if Checked && a >= twoTo64 {
		return pkg.ErrDigitOverflow
	}
	ip := uint64(a)
	digits := countDigits(ip)
	// Compared by subtraction so a huge decimals cannot wrap the sum.
	if Checked && (decimals > width-2 || digits > width-2-decimals) {
		return pkg.ErrDigitOverflow
	}

	f := s.buf[start : start+width]
	p := width - decimals - digits - 2
	putPad(f[:p])
	f[p] = signChar(neg)
	p++
	putDigits(f[p:p+digits], ip)
	p += digits
	f[p] = DecimalPoint
	p++

	// Explicit float32 conversions keep each step rounded to float32 and
	// stop the compiler from fusing the multiply and subtract.
	frac := float32(a - float32(ip))
	for ; p < width; p++ {
		frac = float32(frac * 10)
		d := uint8(frac)
		if d > 9 {
			d = 9
		}
		f[p] = '0' + d
		frac = float32(frac - float32(d))
	}
	return nil
}

// PadSetLF writes v as a longfloat into the field [start, start+width).
// A longfloat is a scaled integer without a decimal point, which makes it
// cheap to write and trivial to decode at fixed offsets:
//
//	offset 0            sign, '+' for v >= 0 or '-' for v < 0
//	offset 1..width-2   trunc(|v| * 10^decimals), left-padded with '0'
//	offset width-1      decimals as a single ASCII digit
//
// For example PadSetLF(0, 8, 2, 123.456) writes "+0123452". The scaled value
// is truncated, never rounded.
//
// Returns:
//   - [pkg.ErrOutOfBounds] if decimals is negative or the field does not fit
//   - [pkg.ErrDecimalOverflow] if decimals exceeds [MaxLFDecimals] or
//     decimals + 2 exceeds width
//   - [pkg.ErrNotFinite] if v is NaN or infinite
//   - [pkg.ErrDigitOverflow] if the scaled digits + 2 exceed width
func (s *Str) PadSetLF(start, width, decimals int, v float32) error {
	if Checked {
		if decimals < 0 || !s.field(start, width) {
			return pkg.ErrOutOfBounds
		}
		if decimals > MaxLFDecimals || decimals+2 > width {
			return pkg.ErrDecimalOverflow
		}
		if !finite(v) {
			return pkg.ErrNotFinite
		}
	}
	neg := v < 0
	scaled := float32(abs(v) * pow10f[decimals])
	if Checked && scaled >= twoTo64 {
		return pkg.ErrDigitOverflow
	}
	m := uint64(scaled)
	if Checked && countDigits(m)+2 > width {
		return pkg.ErrDigitOverflow
	}

	f := s.buf[start : start+width]
	f[0] = signChar(neg)
	putDigits(f[1:width-1], m)
	f[width-1] = '0' + byte(decimals)
	return nil
}

// countDigits returns the number of decimal digits of v; zero has one.
func countDigits(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// putDigits writes v right-aligned across all of dst, so positions left of
// the most significant digit become '0'.
func putDigits(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = '0' + byte(v%10)
		v /= 10
	}
}

func putPad(dst []byte) {
	for i := range dst {
		dst[i] = PadChar
	}
}

func signChar(neg bool) byte {
	if neg {
		return MinusChar
	}
	return PlusChar
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-(v + 1)) + 1, true
	}
	return uint64(v), false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
