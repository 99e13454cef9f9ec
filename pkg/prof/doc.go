// Package prof captures pprof profiles around a run of the fixstr tools.
//
// Profiling is compiled in only with the "profile" build tag:
//
//	go build -tags profile ./cmd/fixstr
//	fixstr --cpuprofile cpu.prof --memprofile mem.prof bench -n 1000000
//
// Without the tag [Enabled] is false, [Start] returns [ErrDisabled] when any
// output path is requested, and nothing from [runtime/pprof] is linked.
//
// # Sessions
//
// A [Session] streams a CPU profile while it is open and writes the heap
// profile when it stops:
//
//	s, err := prof.Start(prof.Options{CPU: "cpu.prof", Heap: "heap.prof"})
//	if err != nil {
//	    return err
//	}
//	defer s.Stop()
//
// Only one session may profile the CPU at a time; a second one fails with
// [ErrCPUProfileActive]. A nil *Session is valid and its Stop does nothing.
package prof

import "errors"

// Profiling errors.
var (
	// ErrCPUProfileActive indicates another session is profiling the CPU.
	ErrCPUProfileActive = errors.New("cpu profile already active")

	// ErrDisabled indicates a profile was requested from a build without
	// the "profile" tag.
	ErrDisabled = errors.New("profiling not compiled in (build with -tags profile)")
)

// Options names the profile outputs of a session. Empty paths are skipped.
type Options struct {
	CPU  string // CPU profile, written while the session is open
	Heap string // heap profile, written by Stop
}

// Empty reports whether no profile is requested.
func (o Options) Empty() bool {
	return o.CPU == "" && o.Heap == ""
}
