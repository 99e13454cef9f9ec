package str

import "io"

// Str is a fixed-capacity character buffer.
//
// The number of data bytes, [Str.Len], is fixed when the buffer is created and
// never changes. A terminated buffer stores one extra NUL byte after the data
// so [Str.CString] can hand it to C-style consumers; the terminator is never
// reachable through the write methods.
//
// Copying a Str value copies the header only: both copies share storage.
// Use [Str.Clone] or [Str.CopyFrom] for an independent duplicate.
type Str struct {
	buf  []byte // data bytes followed by the optional terminator
	size int    // number of data bytes
	term bool   // buf[size] is a NUL terminator
}

// Option configures a buffer at construction.
type Option func(*options)

type options struct {
	terminated bool
}

// WithTerminator reserves a trailing NUL byte after the data bytes.
func WithTerminator() Option {
	return func(o *options) { o.terminated = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New allocates a buffer of n data bytes. The data bytes are NUL.
// New panics if n is negative.
func New(n int, opts ...Option) *Str {
	if n < 0 {
		panic("str: negative size")
	}
	o := buildOptions(opts)
	total := n
	if o.terminated {
		total++
	}
	return &Str{buf: make([]byte, total), size: n, term: o.terminated}
}

// NewFilled allocates a buffer of n data bytes, each set to c.
func NewFilled(n int, c byte, opts ...Option) *Str {
	s := New(n, opts...)
	s.Fill(c)
	return s
}

// NewFrom allocates a buffer of n data bytes initialized from src. Sources
// longer than n are truncated; shorter sources are padded with fill.
func NewFrom(n int, src string, fill byte, opts ...Option) *Str {
	s := New(n, opts...)
	s.Load(src, fill)
	return s
}

// Wrap returns a buffer backed by mem without allocating. The buffer is
// returned by value so it can live on the stack next to its storage:
//
//	var mem [17]byte
//	s := str.Wrap(mem[:], str.WithTerminator()) // 16 data bytes + NUL
//	s.PadSetUint(0, 8, 1234)
//
// A plain buffer uses all of mem. A terminated buffer uses len(mem)-1 data
// bytes and writes the terminator into the last byte; Wrap panics if mem is
// empty in that case. Existing data bytes in mem are kept.
func Wrap(mem []byte, opts ...Option) Str {
	o := buildOptions(opts)
	n := len(mem)
	if o.terminated {
		if n == 0 {
			panic("str: terminated buffer needs storage for the terminator")
		}
		n--
		mem[n] = 0
	}
	return Str{buf: mem[:len(mem):len(mem)], size: n, term: o.terminated}
}

// Len returns the number of data bytes.
func (s *Str) Len() int {
	return s.size
}

// Cap returns the number of bytes of storage, including the terminator.
func (s *Str) Cap() int {
	return len(s.buf)
}

// Terminated reports whether the buffer keeps a trailing NUL terminator.
func (s *Str) Terminated() bool {
	return s.term
}

// Bytes returns the data bytes. The slice aliases the buffer's storage and
// its capacity stops before the terminator.
func (s *Str) Bytes() []byte {
	return s.buf[:s.size:s.size]
}

// String returns a copy of the data bytes as a string.
func (s *Str) String() string {
	return string(s.buf[:s.size])
}

// CString returns the data bytes followed by the NUL terminator, or nil if
// the buffer is not terminated. The slice aliases the buffer's storage.
func (s *Str) CString() []byte {
	if !s.term {
		return nil
	}
	return s.buf[:s.size+1]
}

// MarshalTo copies the data bytes to buf.
// Returns the number of bytes written (always Len() if buf is large enough).
func (s *Str) MarshalTo(buf []byte) int {
	if len(buf) < s.size {
		return 0
	}
	return copy(buf, s.buf[:s.size])
}

// WriteTo writes the data bytes to w. It implements [io.WriterTo].
func (s *Str) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf[:s.size])
	return int64(n), err
}

// Clone returns an independent copy of s with the same length and
// terminator policy.
func (s *Str) Clone() *Str {
	c := &Str{buf: make([]byte, len(s.buf)), size: s.size, term: s.term}
	copy(c.buf, s.buf)
	return c
}

// At returns the data byte at index i. Negative indices count from the end:
// -1 is the last byte and -Len() the first.
//
// In the checked build, indices past either end are clamped to the first or
// last byte, and At returns 0 for an empty buffer.
func (s *Str) At(i int) byte {
	if Checked && s.size == 0 {
		return 0
	}
	return s.buf[s.index(i)]
}

// Put stores c at index i, resolving i exactly as [Str.At] does. In the
// checked build Put does nothing on an empty buffer.
func (s *Str) Put(i int, c byte) {
	if Checked && s.size == 0 {
		return
	}
	s.buf[s.index(i)] = c
}

// index resolves a possibly negative index to a storage offset.
func (s *Str) index(i int) int {
	if i < 0 {
		i += s.size
	}
	if Checked {
		if i < 0 {
			i = 0
		} else if i >= s.size {
			i = s.size - 1
		}
	}
	return i
}

// field reports whether [start, start+width) lies within the data bytes.
func (s *Str) field(start, width int) bool {
	return start >= 0 && width >= 0 && start <= s.size-width
}
