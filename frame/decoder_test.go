package frame

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ardnew/fixstr/pkg"
)

func newTelemetryDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewDecoder(mustLayout(t, telemetryYAML))
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := newTelemetryDecoder(t)
	rec, err := d.DecodeString(telemetryRecord)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := Record{
		{Name: "seq", Kind: KindUint, Uint: 17},
		{Name: "temp", Kind: KindFloat, Float: 21.5, Decimals: 2},
		{Name: "delta", Kind: KindInt, Int: -42},
		{Name: "volt", Kind: KindLF, Float: 1.25, Decimals: 3},
		{Name: "tag", Kind: KindText, Text: "ok"},
	}
	if len(rec) != len(want) {
		t.Fatalf("len(Record) = %d, want %d", len(rec), len(want))
	}
	for i := range want {
		if rec[i] != want[i] {
			t.Errorf("Record[%d] = %+v, want %+v", i, rec[i], want[i])
		}
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	e := newTelemetryEncoder(t)
	d := newTelemetryDecoder(t)

	tests := []map[string]string{
		{"seq": "0", "temp": "0", "delta": "0", "volt": "0", "tag": ""},
		{"seq": "999999", "temp": "-12.25", "delta": "9999", "volt": "-99.5", "tag": "abcdef"},
		{"seq": "42", "temp": "3.5", "delta": "-1", "volt": "0.125", "tag": "a b"},
	}

	for _, values := range tests {
		if err := e.Encode(values); err != nil {
			t.Fatalf("Encode(%v) error = %v", values, err)
		}
		rec, err := d.Decode(e.Bytes())
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", e.String(), err)
		}
		m := rec.Map()
		for name, text := range values {
			v, _ := rec.Get(name)
			var got string
			switch v.Kind {
			case KindText:
				got = v.Text
			default:
				got = formatAny(m[name])
			}
			if got != text {
				t.Errorf("field %s = %q, want %q", name, got, text)
			}
		}
	}
}

func TestDecoder_Errors(t *testing.T) {
	d := newTelemetryDecoder(t)
	tests := []struct {
		name    string
		record  string
		wantErr error
	}{
		{"short", telemetryRecord[:31], pkg.ErrSizeMismatch},
		{"long", telemetryRecord + "-", pkg.ErrSizeMismatch},
		{"unfilled float", "000017--------------------------", pkg.ErrSyntax},
		{"bad digit", "0000x700+21.5000-42+012503ok----", pkg.ErrSyntax},
		{"missing sign", "00001700021.5000-42+012503ok----", pkg.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.DecodeString(tt.record); !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecoder_Terminated(t *testing.T) {
	l := &Layout{
		Name:       "term",
		Size:       4,
		Terminated: true,
		Fields:     []Field{{Name: "n", Kind: KindUint, Start: 0, Width: 4}},
	}
	d, err := NewDecoder(l)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	for _, record := range []string{"0042", "0042\x00"} {
		rec, err := d.DecodeString(record)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", record, err)
		}
		if v, _ := rec.Get("n"); v.Uint != 42 {
			t.Errorf("Decode(%q) n = %d, want 42", record, v.Uint)
		}
	}
	if _, err := d.DecodeString("0042x"); !errors.Is(err, pkg.ErrSizeMismatch) {
		t.Errorf("Decode(non-NUL tail) error = %v, want %v", err, pkg.ErrSizeMismatch)
	}
}

func TestRecord_MapSlice(t *testing.T) {
	d := newTelemetryDecoder(t)
	rec, err := d.DecodeString(telemetryRecord)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	ms := rec.MapSlice()
	names := []string{"seq", "temp", "delta", "volt", "tag"}
	if len(ms) != len(names) {
		t.Fatalf("len(MapSlice()) = %d, want %d", len(ms), len(names))
	}
	for i, name := range names {
		if ms[i].Key != name {
			t.Errorf("MapSlice()[%d].Key = %v, want %s", i, ms[i].Key, name)
		}
	}
	if ms[0].Value != uint64(17) {
		t.Errorf("MapSlice()[0].Value = %v, want 17", ms[0].Value)
	}
	if _, ok := rec.Get("nope"); ok {
		t.Error("Get(nope) found")
	}
}

func formatAny(v any) string {
	switch v := v.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return ""
}
