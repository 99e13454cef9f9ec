package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/fixstr/frame"
	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/pkg/prof"
	"github.com/ardnew/fixstr/str"
)

const telemetryLayout = `name: telemetry
size: 32
fill: "-"
fields:
  - {name: seq,   kind: uint,  start: 0,  width: 6}
  - {name: temp,  kind: float, start: 6,  width: 8, decimals: 2}
  - {name: delta, kind: int,   start: 14, width: 5}
  - {name: volt,  kind: lf,    start: 19, width: 7, decimals: 3}
  - {name: tag,   kind: text,  start: 26, width: 6}
`

const telemetryRecord = "00001700+21.5000-42+012503ok----"

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeLayout(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDemo(t *testing.T) {
	stdout, _, err := runCmd(t, "demo")
	if err != nil {
		t.Fatalf("demo error = %v", err)
	}
	want := "--12345678------\n16\n"
	if stdout != want {
		t.Errorf("demo output = %q, want %q", stdout, want)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"uint", []string{"pad", "uint", "1234", "--size", "8", "--width", "8"}, "00001234"},
		{"uint offset", []string{"pad", "uint", "12345678", "--start", "2"}, "--12345678------"},
		{"int", []string{"pad", "int", "--size", "6", "--width", "6", "--", "-42"}, "000-42"},
		{"float", []string{"pad", "float", "12.34", "--size", "7", "--width", "7"}, "0+12.34"},
		{"lf", []string{"pad", "lf", "123.456", "--size", "10", "--width", "8", "--fill", "."}, "+0123452.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("pad error = %v", err)
			}
			if got := strings.TrimSuffix(stdout, "\n"); got != tt.want {
				t.Errorf("pad output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPad_Errors(t *testing.T) {
	if !str.Checked {
		t.Skip("write validation is compiled out")
	}
	tests := []struct {
		name    string
		args    []string
		wantErr error
		status  string
	}{
		{"digit overflow", []string{"pad", "uint", "123456789"}, pkg.ErrDigitOverflow, "status -2"},
		{"out of bounds", []string{"pad", "uint", "1", "--start", "10"}, pkg.ErrOutOfBounds, "status -1"},
		{"decimal overflow", []string{"pad", "lf", "1", "--width", "4", "--decimals", "3"}, pkg.ErrDecimalOverflow, "status -3"},
		{"not finite", []string{"pad", "float", "inf"}, pkg.ErrNotFinite, "status -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("pad error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.status) {
				t.Errorf("pad error = %q, want it to contain %q", err, tt.status)
			}
			if stdout != "" {
				t.Errorf("pad printed %q on failure", stdout)
			}
		})
	}
}

func TestPad_BadInput(t *testing.T) {
	for _, args := range [][]string{
		{"pad", "hex", "1"},
		{"pad", "uint", "abc"},
		{"pad", "uint", "1", "--fill", "ab"},
		{"pad", "uint"},
	} {
		if _, _, err := runCmd(t, args...); err == nil {
			t.Errorf("%v: error = nil", args)
		}
	}
}

func TestEncode(t *testing.T) {
	path := writeLayout(t, telemetryLayout)
	stdout, _, err := runCmd(t, "encode", "-l", path,
		"seq=17", "temp=21.5", "delta=-42", "volt=1.25", "tag=ok")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if got := strings.TrimSuffix(stdout, "\n"); got != telemetryRecord {
		t.Errorf("encode output = %q, want %q", got, telemetryRecord)
	}
}

func TestEncode_Errors(t *testing.T) {
	if !str.Checked {
		t.Skip("write validation is compiled out")
	}
	path := writeLayout(t, telemetryLayout)
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown field", []string{"encode", "-l", path, "bogus=1"}, frame.ErrUnknownField},
		{"overflow", []string{"encode", "-l", path, "seq=1234567"}, pkg.ErrDigitOverflow},
		{"syntax", []string{"encode", "-l", path, "delta=x"}, pkg.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCmd(t, tt.args...); !errors.Is(err, tt.wantErr) {
				t.Errorf("encode error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, _, err := runCmd(t, "encode", "-l", path, "seq"); err == nil {
		t.Error("encode with bare name: error = nil")
	}
	if _, _, err := runCmd(t, "encode", "seq=1"); err == nil {
		t.Error("encode without layout: error = nil")
	}
}

func TestDecode(t *testing.T) {
	path := writeLayout(t, telemetryLayout)
	stdout, _, err := runCmd(t, "decode", "-l", path, telemetryRecord)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	for _, want := range []string{"seq: 17", "delta: -42", "tag: ok"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("decode output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Index(stdout, "seq:") > strings.Index(stdout, "tag:") {
		t.Errorf("decode output not in layout order:\n%s", stdout)
	}
}

func TestDecode_JSON(t *testing.T) {
	path := writeLayout(t, telemetryLayout)
	stdout, _, err := runCmd(t, "decode", "-l", path, "--json", telemetryRecord)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	for _, want := range []string{`"seq": 17`, `"temp": 21.5`, `"volt": 1.25`, `"tag": "ok"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("decode output missing %q:\n%s", want, stdout)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	path := writeLayout(t, telemetryLayout)
	if _, _, err := runCmd(t, "decode", "-l", path, "short"); !errors.Is(err, pkg.ErrSizeMismatch) {
		t.Errorf("decode error = %v, want %v", err, pkg.ErrSizeMismatch)
	}
}

func TestLayout(t *testing.T) {
	path := writeLayout(t, telemetryLayout)
	stdout, _, err := runCmd(t, "layout", "-l", path)
	if err != nil {
		t.Fatalf("layout error = %v", err)
	}
	for _, want := range []string{
		`telemetry: 32 bytes, fill '-'`,
		"aaaaaabbbbbbbbcccccdddddddeeeeee",
		"volt",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("layout output missing %q:\n%s", want, stdout)
		}
	}
}

func TestLayout_YAML(t *testing.T) {
	path := writeLayout(t, strings.Replace(telemetryLayout, `fill: "-"`, `fill: "_"`, 1))
	stdout, _, err := runCmd(t, "layout", "-l", path, "--yaml")
	if err != nil {
		t.Fatalf("layout error = %v", err)
	}
	l, err := frame.ParseLayout([]byte(stdout))
	if err != nil {
		t.Fatalf("ParseLayout(layout --yaml) error = %v\n%s", err, stdout)
	}
	if l.Name != "telemetry" || l.FillByte() != '_' || len(l.Fields) != 5 {
		t.Errorf("layout --yaml round trip = %+v", l)
	}
}

func TestLayout_Invalid(t *testing.T) {
	path := writeLayout(t, "name: bad\nsize: 2\nfields:\n  - {name: a, kind: uint, start: 0, width: 3}\n")
	if _, _, err := runCmd(t, "layout", "-l", path); !errors.Is(err, frame.ErrInvalidLayout) {
		t.Errorf("layout error = %v, want %v", err, frame.ErrInvalidLayout)
	}
}

func TestVerboseLogging(t *testing.T) {
	if !str.Checked {
		t.Skip("write validation is compiled out")
	}
	defer configureLogging(os.Stderr, globalOptions{logLevel: "warn"})

	path := writeLayout(t, telemetryLayout)
	_, stderr, err := runCmd(t, "-v", "--log-json", "encode", "-l", path, "seq=1234567")
	if err == nil {
		t.Fatal("encode error = nil")
	}
	if !strings.Contains(stderr, `"component":"frame"`) {
		t.Errorf("verbose stderr missing frame debug log:\n%s", stderr)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"a=1", "b=x=y", "c="})
	if err != nil {
		t.Fatalf("parseAssignments() error = %v", err)
	}
	want := map[string]string{"a": "1", "b": "x=y", "c": ""}
	if len(got) != len(want) {
		t.Fatalf("parseAssignments() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("parseAssignments()[%q] = %q, want %q", k, got[k], v)
		}
	}
	if _, err := parseAssignments([]string{"a=1", "a=2"}); err == nil {
		t.Error("parseAssignments(duplicate) error = nil")
	}
	if _, err := parseAssignments([]string{"=1"}); err == nil {
		t.Error("parseAssignments(empty name) error = nil")
	}
}

func TestBench(t *testing.T) {
	stdout, _, err := runCmd(t, "bench", "-n", "10", "--json")
	if err != nil {
		t.Fatalf("bench error = %v", err)
	}
	for _, want := range []string{`"ops": 10`, `"record": "00000900+21.500-491+012503bench-"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("bench output missing %q:\n%s", want, stdout)
		}
	}

	if _, _, err := runCmd(t, "bench", "-n", "0"); err == nil {
		t.Error("bench -n 0: error = nil")
	}
}

func TestProfileFlags(t *testing.T) {
	root, state := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	dir := t.TempDir()
	root.SetArgs([]string{"--cpuprofile", filepath.Join(dir, "cpu.prof"), "demo"})

	err := root.Execute()
	if perr := state.stopProfile(); perr != nil {
		t.Fatalf("stopProfile() error = %v", perr)
	}
	if prof.Enabled {
		if err != nil {
			t.Fatalf("demo with profiling error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "cpu.prof")); err != nil {
			t.Errorf("cpu profile not written: %v", err)
		}
	} else if !errors.Is(err, prof.ErrDisabled) {
		t.Errorf("demo with profiling error = %v, want %v", err, prof.ErrDisabled)
	}
}

func TestLogLevelFlag(t *testing.T) {
	defer configureLogging(os.Stderr, globalOptions{logLevel: "warn"})

	path := writeLayout(t, telemetryLayout)
	_, stderr, err := runCmd(t, "--log-level", "debug", "--log-json", "encode", "-l", path, "seq=1")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if !strings.Contains(stderr, `"msg":"record encoded"`) {
		t.Errorf("debug stderr missing encode log:\n%s", stderr)
	}

	_, stderr, err = runCmd(t, "--log-level", "error", "encode", "-l", path, "seq=1")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if stderr != "" {
		t.Errorf("error-level stderr = %q, want empty", stderr)
	}

	if _, _, err := runCmd(t, "--log-level", "loud", "demo"); err == nil {
		t.Error("unknown --log-level: error = nil")
	}
}
