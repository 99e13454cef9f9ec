package str

import (
	"bytes"

	"github.com/ardnew/fixstr/pkg"
)

// Fill sets every data byte to c and rewrites the terminator, if any.
// Filling an empty buffer does nothing.
func (s *Str) Fill(c byte) {
	data := s.buf[:s.size]
	for i := range data {
		data[i] = c
	}
	s.terminate()
}

// Load copies src into the data bytes, truncating it to Len() bytes, and sets
// the remaining data bytes to fill.
func (s *Str) Load(src string, fill byte) {
	data := s.buf[:s.size]
	n := copy(data, src)
	for i := n; i < len(data); i++ {
		data[i] = fill
	}
	s.terminate()
}

// CopyFrom overwrites the data bytes of s with those of other.
// Returns [pkg.ErrSizeMismatch] if the buffers differ in length.
func (s *Str) CopyFrom(other *Str) error {
	if Checked && other.size != s.size {
		return pkg.ErrSizeMismatch
	}
	copy(s.buf[:s.size], other.buf[:other.size])
	s.terminate()
	return nil
}

// Set writes c at index i.
// Returns [pkg.ErrOutOfBounds] unless 0 <= i < Len().
func (s *Str) Set(i int, c byte) error {
	if Checked && uint(i) >= uint(s.size) {
		return pkg.ErrOutOfBounds
	}
	s.buf[i] = c
	return nil
}

// SetRange writes c to every index in [start, end). An empty range
// (start == end) succeeds without writing.
// Returns:
//   - [pkg.ErrOutOfBounds] if start < 0 or end > Len()
//   - [pkg.ErrInvalidRange] if start > end
func (s *Str) SetRange(start, end int, c byte) error {
	if Checked {
		if start < 0 || end > s.size {
			return pkg.ErrOutOfBounds
		}
		if start > end {
			return pkg.ErrInvalidRange
		}
	}
	for i := start; i < end; i++ {
		s.buf[i] = c
	}
	return nil
}

// SetBytes copies up to count bytes of src into the field [start, start+count).
// When src is shorter than count only len(src) bytes are copied and the rest
// of the field is left as it was.
// Returns [pkg.ErrOutOfBounds] if the field does not fit in the buffer.
func (s *Str) SetBytes(start, count int, src []byte) error {
	if Checked && !s.field(start, count) {
		return pkg.ErrOutOfBounds
	}
	n := min(count, len(src))
	copy(s.buf[start:start+n], src[:n])
	return nil
}

// SetString is [Str.SetBytes] for a string source.
func (s *Str) SetString(start, count int, src string) error {
	if Checked && !s.field(start, count) {
		return pkg.ErrOutOfBounds
	}
	n := min(count, len(src))
	copy(s.buf[start:start+n], src[:n])
	return nil
}

// SetCString is [Str.SetBytes] for a NUL-terminated source: the source ends at
// its first NUL byte, or at len(src) if it has none.
func (s *Str) SetCString(start, count int, src []byte) error {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return s.SetBytes(start, count, src)
}

// SetStr copies all data bytes of other into s starting at start.
// Returns [pkg.ErrOutOfBounds] if other does not fit.
func (s *Str) SetStr(start int, other *Str) error {
	return s.SetBytes(start, other.size, other.buf[:other.size])
}

func (s *Str) terminate() {
	if s.term {
		s.buf[s.size] = 0
	}
}
