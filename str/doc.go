// Package str implements a fixed-capacity character buffer for embedded and
// resource-constrained targets.
//
// A [Str] holds exactly Len() bytes, fixed at construction, and supports
// bounds-checked writes of characters, substrings and formatted numbers
// without allocating. It is the Go rendition of a compile-time sized C++
// string template: Go has no integer type parameters, so the length is an
// immutable field instead, and storage can be supplied by the caller.
//
// # Zero-Allocation Design
//
// Only [New], [NewFilled], [NewFrom], [Str.Clone] and [Concat] allocate, once
// each. Everything else writes in place:
//
//   - [Wrap] builds a buffer over a caller-provided array
//   - numbers are rendered digit by digit, without fmt or strconv
//   - errors are comparable sentinels from [github.com/ardnew/fixstr/pkg]
//   - [Str.MarshalTo] and [ConcatInto] write into caller-provided storage
//
// # Numeric Layouts
//
// Numeric fields are right-justified and left-padded with '0' to exactly the
// requested width. The byte layouts are a wire format for downstream parsers:
//
//	PadSetUint(0, 8, 12345678)      "12345678"
//	PadSetInt(0, 5, -42)            "00-42"
//	PadSetFloat(0, 7, 2, 12.34)     "0+12.34"
//	PadSetLF(0, 8, 2, 123.456)      "+0123452"
//
// [Str.SetUint] and [Str.SetInt] write the same digits without padding and
// return the number of bytes written.
//
// Float fractions are truncated, never rounded. The read methods [Str.Uint],
// [Str.Int], [Str.Float] and [Str.LF] decode the same layouts.
//
// # Checked and Unchecked Builds
//
// By default every write validates its arguments first and returns an error
// without touching the buffer. Building with the "fixstr_unchecked" tag sets
// [Checked] to false and compiles the validation out:
//
//	go build -tags fixstr_unchecked
//
// In that mode out-of-range arguments are the caller's responsibility. The Go
// runtime still panics on an index outside the backing array, but writes that
// stay inside it (a field overlapping the terminator, digits truncated to a
// narrow field) go through silently.
//
// # Indexing
//
// [Str.At] and [Str.Put] accept negative indices counted from the end. In the
// checked build indices past either end clamp to the first or last byte.
//
// # Concurrency
//
// A Str is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize access themselves.
package str
