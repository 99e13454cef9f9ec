package frame

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/str"
)

// Value is one decoded field. Only the member matching Kind is set; Decimals
// is set for float and lf fields.
type Value struct {
	Name     string
	Kind     Kind
	Uint     uint64
	Int      int64
	Float    float32
	Decimals int
	Text     string
}

// Any returns the value as a uint64, int64, float32 or string.
func (v Value) Any() any {
	switch v.Kind {
	case KindUint:
		return v.Uint
	case KindInt:
		return v.Int
	case KindFloat, KindLF:
		return v.Float
	default:
		return v.Text
	}
}

// Record holds the decoded fields of one record in layout order.
type Record []Value

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, v := range r {
		if v.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Map returns the values keyed by field name.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, v := range r {
		m[v.Name] = v.Any()
	}
	return m
}

// MapSlice returns the values keyed by field name, in layout order, for
// YAML output.
func (r Record) MapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, len(r))
	for i, v := range r {
		ms[i] = yaml.MapItem{Key: v.Name, Value: v.Any()}
	}
	return ms
}

// Decoder reads records of one layout.
type Decoder struct {
	layout *Layout
}

// NewDecoder validates l and returns a decoder for it.
func NewDecoder(l *Layout) (*Decoder, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{layout: l}, nil
}

// Decode parses a record. The record must be exactly Size bytes long; a
// terminated layout also accepts the trailing NUL.
//
// Returns an error wrapping [pkg.ErrSizeMismatch] for a record of the wrong
// length, or the read error of the first field that does not decode.
func (d *Decoder) Decode(record []byte) (Record, error) {
	n := d.layout.Size
	if d.layout.Terminated && len(record) == n+1 && record[n] == 0 {
		record = record[:n]
	}
	if len(record) != n {
		return nil, fmt.Errorf("record of %d bytes, layout %q has %d: %w",
			len(record), d.layout.Name, n, pkg.ErrSizeMismatch)
	}

	s := str.Wrap(record)
	out := make(Record, 0, len(d.layout.Fields))
	for _, f := range d.layout.Fields {
		v, err := d.decodeField(&s, f)
		if err != nil {
			if pkg.LogEnabled(slog.LevelDebug) {
				pkg.LogDebug(pkg.ComponentFrame, "field read failed",
					"layout", d.layout.Name, "field", f.Name, "status", pkg.StatusOf(err))
			}
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeString is [Decoder.Decode] for a string record.
func (d *Decoder) DecodeString(record string) (Record, error) {
	return d.Decode([]byte(record))
}

func (d *Decoder) decodeField(s *str.Str, f Field) (Value, error) {
	v := Value{Name: f.Name, Kind: f.Kind}
	var err error
	switch f.Kind {
	case KindUint:
		v.Uint, err = s.Uint(f.Start, f.Width)
	case KindInt:
		v.Int, err = s.Int(f.Start, f.Width)
	case KindFloat:
		v.Float, err = s.Float(f.Start, f.Width)
		v.Decimals = f.Decimals
	case KindLF:
		v.Float, v.Decimals, err = s.LF(f.Start, f.Width)
	default:
		field := s.Bytes()[f.Start:f.End()]
		v.Text = string(bytes.TrimRight(field, string(d.layout.FillByte())))
	}
	return v, err
}
