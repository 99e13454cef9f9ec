// Package pkg provides shared utilities for the fixstr buffer library.
//
// This package contains common functionality used by the [str] buffer type,
// the [frame] record codec, and the fixstr command, including:
//
//   - Sentinel errors for buffer write and read failures
//   - [Status] result codes mirroring the sentinels as small integers
//   - Structured logging via Go's standard [log/slog] package
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Errors
//
// Buffer operations return sentinel values that compare cheaply:
//
//	if errors.Is(err, pkg.ErrDigitOverflow) {
//	    // Widen the field
//	}
//
// Code that reports results as integers (serial consoles, C callers) can map
// between errors and [Status] codes:
//
//	code := pkg.StatusOf(err) // 0, -1, -2, ...
//
// # Logging
//
// The logging subsystem wraps [log/slog] with component context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentFrame, "frame encoded", "layout", "telemetry")
//
// The [str] package never logs; logging is reserved for the layers above it.
//
// # Profiling
//
// Subpackage prof wraps [runtime/pprof] behind the "profile" build tag and
// backs the --cpuprofile and --memprofile flags of the fixstr command.
//
// [str]: https://pkg.go.dev/github.com/ardnew/fixstr/str
// [frame]: https://pkg.go.dev/github.com/ardnew/fixstr/frame
package pkg
