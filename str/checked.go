//go:build !fixstr_unchecked

package str

// Checked reports whether buffer operations validate their arguments.
//
// In the default build every operation checks its bounds and returns a
// sentinel error from [github.com/ardnew/fixstr/pkg] without writing anything.
// Build with the "fixstr_unchecked" tag to compile the checks out.
const Checked = true
