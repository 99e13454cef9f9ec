//go:build profile

package prof

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// Enabled reports whether profiling is compiled in.
const Enabled = true

var (
	// cpuMutex protects cpuBusy.
	cpuMutex sync.Mutex

	// cpuBusy is set while a session owns the CPU profiler.
	cpuBusy bool
)

// Session is an open profiling run.
type Session struct {
	opts    Options
	cpuFile *os.File
}

// Start opens a session. It returns a nil session when opts is empty.
func Start(opts Options) (*Session, error) {
	if opts.Empty() {
		return nil, nil
	}
	s := &Session{opts: opts}
	if opts.CPU == "" {
		return s, nil
	}

	cpuMutex.Lock()
	defer cpuMutex.Unlock()
	if cpuBusy {
		return nil, ErrCPUProfileActive
	}

	f, err := os.Create(opts.CPU)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	s.cpuFile = f
	cpuBusy = true
	return s, nil
}

// Stop ends CPU profiling and writes the heap profile. Calling Stop more
// than once is harmless.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.cpuFile != nil {
		cpuMutex.Lock()
		pprof.StopCPUProfile()
		cpuBusy = false
		cpuMutex.Unlock()

		errs = append(errs, s.cpuFile.Close())
		s.cpuFile = nil
	}

	if s.opts.Heap != "" {
		errs = append(errs, writeHeap(s.opts.Heap))
		s.opts.Heap = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	runtime.GC() // up-to-date live heap
	return pprof.Lookup("heap").WriteTo(f, 0)
}
