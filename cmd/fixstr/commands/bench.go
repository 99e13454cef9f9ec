package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/str"
)

// benchResult is the report printed by the bench command.
type benchResult struct {
	Ops         int     `yaml:"ops" json:"ops"`
	Elapsed     string  `yaml:"elapsed" json:"elapsed"`
	NsPerOp     float64 `yaml:"ns_per_op" json:"ns_per_op"`
	AllocsPerOp float64 `yaml:"allocs_per_op" json:"allocs_per_op"`
	Record      string  `yaml:"record" json:"record"`
}

func newBenchCmd() *cobra.Command {
	var (
		ops    int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a loop of record writes",
		Long: `Write a 32-byte record of every numeric kind N times into one
stack buffer and report the time and heap allocations per record.

Combine with --cpuprofile or --memprofile in a profile build:
  fixstr --cpuprofile cpu.prof bench -n 5000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ops <= 0 {
				return fmt.Errorf("-n must be positive, got %d", ops)
			}
			res, err := runBench(ops)
			if err != nil {
				return err
			}
			pkg.LogDebug(pkg.ComponentCLI, "bench done", "ops", ops, "elapsed", res.Elapsed)

			format := formatYAML
			if asJSON {
				format = formatJSON
			}
			return output(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().IntVarP(&ops, "ops", "n", 100000, "number of records to write")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}

func runBench(ops int) (benchResult, error) {
	var mem [32]byte
	s := str.Wrap(mem[:])

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	for i := 0; i < ops; i++ {
		s.Fill('-')
		if err := writeBenchRecord(&s, i); err != nil {
			return benchResult{}, fmt.Errorf("op %d: %w", i, err)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return benchResult{
		Ops:         ops,
		Elapsed:     elapsed.String(),
		NsPerOp:     float64(elapsed.Nanoseconds()) / float64(ops),
		AllocsPerOp: float64(after.Mallocs-before.Mallocs) / float64(ops),
		Record:      s.String(),
	}, nil
}

// writeBenchRecord writes the same fields as the telemetry layout.
func writeBenchRecord(s *str.Str, i int) error {
	if err := s.PadSetUint(0, 6, uint64(i%1000000)); err != nil {
		return err
	}
	if err := s.PadSetFloat(6, 8, 2, 21.5); err != nil {
		return err
	}
	if err := s.PadSetInt(14, 5, int64(i%1000)-500); err != nil {
		return err
	}
	if err := s.PadSetLF(19, 7, 3, 1.25); err != nil {
		return err
	}
	return s.SetString(26, 6, "bench")
}
