package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/str"
)

type padOptions struct {
	size       int
	fill       string
	start      int
	width      int
	decimals   int
	terminated bool
}

func newPadCmd() *cobra.Command {
	var opts padOptions

	cmd := &cobra.Command{
		Use:   "pad {uint|int|float|lf} VALUE",
		Short: "Format one number into a fixed-width buffer",
		Long: `Format VALUE into the field [start, start+width) of a buffer of --size
bytes, every other byte set to --fill.

On failure the status code of the write is reported:
  -1 out-of-bounds     field outside the buffer
  -2 digit-overflow    value does not fit the width
  -3 decimal-overflow  decimals do not fit the width
  -5 not-finite        NaN or infinity

Examples:
  fixstr pad uint 1234 --width 8
  fixstr pad float 12.34 --width 7 --decimals 2
  fixstr pad int --width 6 -- -42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPad(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", 16, "buffer size in bytes")
	cmd.Flags().StringVar(&opts.fill, "fill", "-", "fill byte")
	cmd.Flags().IntVar(&opts.start, "start", 0, "field offset")
	cmd.Flags().IntVar(&opts.width, "width", 8, "field width")
	cmd.Flags().IntVar(&opts.decimals, "decimals", 2, "fractional digits (float, lf)")
	cmd.Flags().BoolVar(&opts.terminated, "terminated", false, "append a NUL terminator")
	return cmd
}

func runPad(cmd *cobra.Command, opts padOptions, kind, value string) error {
	if len(opts.fill) != 1 {
		return fmt.Errorf("--fill must be a single byte, got %q", opts.fill)
	}
	if opts.size < 0 {
		return fmt.Errorf("--size must not be negative")
	}
	var sopts []str.Option
	if opts.terminated {
		sopts = append(sopts, str.WithTerminator())
	}
	s := str.NewFilled(opts.size, opts.fill[0], sopts...)

	var err error
	switch kind {
	case "uint":
		var v uint64
		if v, err = strconv.ParseUint(value, 10, 64); err == nil {
			err = s.PadSetUint(opts.start, opts.width, v)
		}
	case "int":
		var v int64
		if v, err = strconv.ParseInt(value, 10, 64); err == nil {
			err = s.PadSetInt(opts.start, opts.width, v)
		}
	case "float", "lf":
		var v float64
		if v, err = strconv.ParseFloat(value, 32); err == nil {
			if kind == "lf" {
				err = s.PadSetLF(opts.start, opts.width, opts.decimals, float32(v))
			} else {
				err = s.PadSetFloat(opts.start, opts.width, opts.decimals, float32(v))
			}
		}
	default:
		return fmt.Errorf("unknown kind %q (want uint, int, float or lf)", kind)
	}
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return fmt.Errorf("invalid %s value: %w", kind, err)
		}
		st := pkg.StatusOf(err)
		pkg.LogInfo(pkg.ComponentCLI, "pad failed", "kind", kind, "value", value, "status", st)
		return fmt.Errorf("status %d (%s): %w", int(st), st, err)
	}

	pkg.LogDebug(pkg.ComponentCLI, "pad",
		"kind", kind, "start", opts.start, "width", opts.width, "len", s.Len())
	fmt.Fprintln(cmd.OutOrStdout(), s.String())
	return nil
}
