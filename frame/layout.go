package frame

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fixstr/str"
)

// Layout errors.
var (
	ErrInvalidLayout = errors.New("frame: invalid layout")
	ErrUnknownField  = errors.New("frame: unknown field")
)

// DefaultFill is the fill byte of a layout that does not set one.
const DefaultFill = ' '

// Kind selects the byte layout of a field.
type Kind string

// Field kinds.
const (
	KindUint  Kind = "uint"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindLF    Kind = "lf"
	KindText  Kind = "text"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindUint, KindInt, KindFloat, KindLF, KindText:
		return true
	}
	return false
}

// overhead returns the bytes a field of kind k needs besides its decimals.
func (k Kind) overhead() int {
	switch k {
	case KindInt:
		return 2 // sign, digit
	case KindFloat:
		return 3 // sign, digit, point
	case KindLF:
		return 2 // sign, decimals digit
	}
	return 1
}

// Field places one named value in a record.
type Field struct {
	Name     string `yaml:"name" json:"name"`
	Kind     Kind   `yaml:"kind" json:"kind"`
	Start    int    `yaml:"start" json:"start"`
	Width    int    `yaml:"width" json:"width"`
	Decimals int    `yaml:"decimals,omitempty" json:"decimals,omitempty"`
}

// End returns the offset one past the last byte of the field. It is only
// meaningful for a field of a validated layout.
func (f Field) End() int {
	return f.Start + f.Width
}

// Layout describes a fixed-width record.
type Layout struct {
	Name       string  `yaml:"name" json:"name"`
	Size       int     `yaml:"size" json:"size"`
	Fill       string  `yaml:"fill,omitempty" json:"fill,omitempty"`
	Terminated bool    `yaml:"terminated,omitempty" json:"terminated,omitempty"`
	Fields     []Field `yaml:"fields" json:"fields"`
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.UnmarshalWithOptions(data, &l, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout reads and parses the layout file at path.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks the layout geometry. Every error wraps [ErrInvalidLayout].
func (l *Layout) Validate() error {
	if l.Size < 0 {
		return l.invalid("negative size %d", l.Size)
	}
	if len(l.Fill) > 1 {
		return l.invalid("fill %q is not a single byte", l.Fill)
	}

	names := make(map[string]struct{}, len(l.Fields))
	for _, f := range l.Fields {
		if f.Name == "" {
			return l.invalid("field at %d has no name", f.Start)
		}
		if _, dup := names[f.Name]; dup {
			return l.invalid("duplicate field %q", f.Name)
		}
		names[f.Name] = struct{}{}

		if !f.Kind.Valid() {
			return l.invalid("field %q: unknown kind %q", f.Name, f.Kind)
		}
		if f.Decimals < 0 {
			return l.invalid("field %q: negative decimals", f.Name)
		}
		if f.Kind == KindLF && f.Decimals > str.MaxLFDecimals {
			return l.invalid("field %q: decimals %d exceeds %d", f.Name, f.Decimals, str.MaxLFDecimals)
		}
		if f.Decimals > 0 && f.Kind != KindFloat && f.Kind != KindLF {
			return l.invalid("field %q: decimals set on %s field", f.Name, f.Kind)
		}
		// Offsets are compared by subtraction; Start+Width may overflow.
		if f.Start < 0 || f.Width < 0 || f.Width > l.Size || f.Start > l.Size-f.Width {
			return l.invalid("field %q: start %d width %d outside record of %d bytes", f.Name, f.Start, f.Width, l.Size)
		}
		if f.Decimals > f.Width {
			return l.invalid("field %q: decimals %d exceed width %d", f.Name, f.Decimals, f.Width)
		}
		if f.Width-f.Decimals < f.Kind.overhead() {
			return l.invalid("field %q: width %d too narrow for %s", f.Name, f.Width, f.Kind)
		}
	}

	sorted := l.sortedFields()
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Start < prev.End() {
			return l.invalid("fields %q and %q overlap", prev.Name, cur.Name)
		}
	}
	return nil
}

func (l *Layout) invalid(format string, args ...any) error {
	name := l.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidLayout, name, fmt.Sprintf(format, args...))
}

// FillByte returns the byte written to every position not covered by a
// field value.
func (l *Layout) FillByte() byte {
	if l.Fill == "" {
		return DefaultFill
	}
	return l.Fill[0]
}

// Field returns the field with the given name.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// sortedFields returns a copy of the fields ordered by start offset.
func (l *Layout) sortedFields() []Field {
	sorted := make([]Field, len(l.Fields))
	copy(sorted, l.Fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// Map draws the record as one character per byte: field i is drawn with
// the letter 'a'+i (wrapping after 'z') and unused bytes with '.'. A second
// line is a ruler marking every tenth offset.
//
//	aaaaaabbbbbbbbccccc.
//	0         1
func (l *Layout) Map() string {
	line := make([]byte, l.Size)
	for i := range line {
		line[i] = '.'
	}
	for i, f := range l.Fields {
		c := byte('a' + i%26)
		for j := f.Start; j < f.End(); j++ {
			line[j] = c
		}
	}

	ruler := make([]byte, l.Size)
	for i := range ruler {
		ruler[i] = ' '
	}
	for i := 0; i < l.Size; i += 10 {
		ruler[i] = byte('0' + (i/10)%10)
	}

	var b strings.Builder
	b.Write(line)
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(string(ruler), " "))
	return b.String()
}
