// Command fixstr exercises fixed-width string buffers and record layouts
// from the command line.
//
// Usage:
//
//	fixstr [flags] <command> [args]
//
// Commands:
//
//	demo     - Write 12345678 into a 16-byte '-' buffer at offset 2
//	pad      - Format one number into a buffer (uint, int, float, lf)
//	encode   - Encode name=value pairs into a record using a layout
//	decode   - Decode a record into YAML or JSON using a layout
//	layout   - Validate a layout file and draw its field map
package main

import (
	"fmt"
	"os"

	"github.com/ardnew/fixstr/cmd/fixstr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
