package frame

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/str"
)

// Encoder writes records of one layout into a reusable buffer.
type Encoder struct {
	layout *Layout
	buf    *str.Str // current record
	next   *str.Str // record under construction by Encode
	fill   byte
	fields map[string]Field
}

// NewEncoder validates l and allocates the record buffers. The record starts
// out filled with the layout's fill byte.
func NewEncoder(l *Layout) (*Encoder, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var opts []str.Option
	if l.Terminated {
		opts = append(opts, str.WithTerminator())
	}
	e := &Encoder{
		layout: l,
		buf:    str.NewFilled(l.Size, l.FillByte(), opts...),
		next:   str.New(l.Size, opts...),
		fill:   l.FillByte(),
		fields: make(map[string]Field, len(l.Fields)),
	}
	for _, f := range l.Fields {
		e.fields[f.Name] = f
	}
	return e, nil
}

// Layout returns the layout the encoder was created with.
func (e *Encoder) Layout() *Layout {
	return e.layout
}

// Reset fills the whole record with the fill byte.
func (e *Encoder) Reset() {
	e.buf.Fill(e.fill)
}

// Str returns the record buffer. It is overwritten by the next Put, Set,
// Encode or Reset.
func (e *Encoder) Str() *str.Str {
	return e.buf
}

// Bytes returns the record bytes, excluding any terminator. The slice
// aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// String returns a copy of the record.
func (e *Encoder) String() string {
	return e.buf.String()
}

// PutUint writes v into the uint field name.
func (e *Encoder) PutUint(name string, v uint64) error {
	f, err := e.field(name, KindUint)
	if err != nil {
		return err
	}
	return e.putUint(e.buf, f, v)
}

// PutInt writes v into the int field name.
func (e *Encoder) PutInt(name string, v int64) error {
	f, err := e.field(name, KindInt)
	if err != nil {
		return err
	}
	return e.putInt(e.buf, f, v)
}

// PutFloat writes v into the float or lf field name using the field's
// decimals.
func (e *Encoder) PutFloat(name string, v float32) error {
	f, err := e.field(name, KindFloat, KindLF)
	if err != nil {
		return err
	}
	return e.putFloat(e.buf, f, v)
}

// PutText writes v into the text field name. The rest of the field is set to
// the fill byte and text longer than the field is truncated.
func (e *Encoder) PutText(name, v string) error {
	f, err := e.field(name, KindText)
	if err != nil {
		return err
	}
	return e.putText(e.buf, f, v)
}

// Set parses text according to the kind of field name and writes it.
// Text that does not parse yields an error wrapping [pkg.ErrSyntax], or
// [pkg.ErrDigitOverflow] when the value is out of range for its type.
func (e *Encoder) Set(name, text string) error {
	f, ok := e.fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return e.set(e.buf, f, text)
}

// Encode writes a new record holding every value in values, keyed by field
// name. Fields without a value hold the fill byte.
//
// The record is built aside and replaces the current one only when every
// value was written: on error the current record is left unchanged. Values
// are written in field name order, so the reported error is the first
// failing field by name.
func (e *Encoder) Encode(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		if _, ok := e.fields[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	e.next.Fill(e.fill)
	for _, name := range names {
		if err := e.set(e.next, e.fields[name], values[name]); err != nil {
			return err
		}
	}
	if err := e.buf.CopyFrom(e.next); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentFrame, "record encoded",
		"layout", e.layout.Name, "fields", len(names))
	return nil
}

func (e *Encoder) set(dst *str.Str, f Field, text string) error {
	switch f.Kind {
	case KindUint:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return e.check(f, parseError(err))
		}
		return e.putUint(dst, f, v)
	case KindInt:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return e.check(f, parseError(err))
		}
		return e.putInt(dst, f, v)
	case KindFloat, KindLF:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return e.check(f, parseError(err))
		}
		return e.putFloat(dst, f, float32(v))
	default:
		return e.putText(dst, f, text)
	}
}

func (e *Encoder) putUint(dst *str.Str, f Field, v uint64) error {
	return e.check(f, dst.PadSetUint(f.Start, f.Width, v))
}

func (e *Encoder) putInt(dst *str.Str, f Field, v int64) error {
	return e.check(f, dst.PadSetInt(f.Start, f.Width, v))
}

func (e *Encoder) putFloat(dst *str.Str, f Field, v float32) error {
	if f.Kind == KindLF {
		return e.check(f, dst.PadSetLF(f.Start, f.Width, f.Decimals, v))
	}
	return e.check(f, dst.PadSetFloat(f.Start, f.Width, f.Decimals, v))
}

func (e *Encoder) putText(dst *str.Str, f Field, v string) error {
	if len(v) > f.Width {
		pkg.LogDebug(pkg.ComponentFrame, "text truncated",
			"field", f.Name, "width", f.Width, "length", len(v))
	}
	if err := dst.SetRange(f.Start, f.End(), e.fill); err != nil {
		return e.check(f, err)
	}
	return e.check(f, dst.SetString(f.Start, f.Width, v))
}

func (e *Encoder) field(name string, kinds ...Kind) (Field, error) {
	f, ok := e.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	for _, k := range kinds {
		if f.Kind == k {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("field %q: %s value for %s field: %w",
		name, kinds[0], f.Kind, pkg.ErrSyntax)
}

// check wraps a failed write with the field name.
func (e *Encoder) check(f Field, err error) error {
	if err == nil {
		return nil
	}
	if pkg.LogEnabled(slog.LevelDebug) {
		pkg.LogDebug(pkg.ComponentFrame, "field write failed",
			"layout", e.layout.Name, "field", f.Name, "status", pkg.StatusOf(err))
	}
	return fmt.Errorf("field %q: %w", f.Name, err)
}

func parseError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return pkg.ErrDigitOverflow
	}
	return pkg.ErrSyntax
}
