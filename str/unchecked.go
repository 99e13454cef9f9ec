//go:build fixstr_unchecked

package str

// Checked reports whether buffer operations validate their arguments.
//
// This build was compiled with the "fixstr_unchecked" tag: operations skip
// all validation and out-of-range arguments are the caller's responsibility.
// Depending on the argument, the Go runtime bounds check panics or the write
// lands elsewhere inside the backing array.
const Checked = false
