package str

import (
	"bytes"

	"github.com/ardnew/fixstr/pkg"
)

// Equal reports whether a and b have the same length and the same data
// bytes. Buffers of different length are never equal; empty buffers are
// always equal. The terminator policy is not compared.
func Equal(a, b *Str) bool {
	return a.size == b.size && bytes.Equal(a.buf[:a.size], b.buf[:b.size])
}

// Equal reports whether s and other are equal as defined by [Equal].
func (s *Str) Equal(other *Str) bool {
	return Equal(s, other)
}

// Concat returns a new buffer of length a.Len()+b.Len() holding the data of a
// followed by the data of b. The result is terminated if a is. Neither
// operand is modified.
func Concat(a, b *Str) *Str {
	var opts []Option
	if a.term {
		opts = append(opts, WithTerminator())
	}
	c := New(a.size+b.size, opts...)
	copy(c.buf, a.buf[:a.size])
	copy(c.buf[a.size:], b.buf[:b.size])
	return c
}

// ConcatInto writes the data of a followed by the data of b into dst without
// allocating.
// Returns [pkg.ErrSizeMismatch] unless dst.Len() == a.Len()+b.Len().
func ConcatInto(dst, a, b *Str) error {
	if Checked && dst.size != a.size+b.size {
		return pkg.ErrSizeMismatch
	}
	copy(dst.buf[:a.size], a.buf[:a.size])
	copy(dst.buf[a.size:dst.size], b.buf[:b.size])
	dst.terminate()
	return nil
}
