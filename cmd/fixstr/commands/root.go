package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/pkg"
	"github.com/ardnew/fixstr/pkg/prof"
)

// globalOptions holds the persistent flags of the root command.
type globalOptions struct {
	verbose  bool
	logJSON  bool
	logLevel string
	profile prof.Options
}

// rootState is shared by the root command and [Execute].
type rootState struct {
	opts    globalOptions
	session *prof.Session
}

// stopProfile closes the profiling session, if any. It runs after the
// command whether or not the command failed.
func (s *rootState) stopProfile() error {
	err := s.session.Stop()
	s.session = nil
	return err
}

// NewRootCmd builds the fixstr command tree. Each call returns independent
// commands and flag state.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootState) {
	state := &rootState{}
	opts := &state.opts

	root := &cobra.Command{
		Use:   "fixstr",
		Short: "Fixed-width string buffers and records",
		Long: `fixstr formats numbers and text into fixed-width character buffers.

Numeric fields are right-justified and zero-padded to an exact width, so
downstream parsers can read them at fixed offsets. Record layouts are
described in YAML and name every field of a fixed-width record.

Examples:
  fixstr demo
  fixstr pad int --width 6 -- -42
  fixstr encode -l telemetry.yaml seq=17 temp=21.5
  fixstr decode -l telemetry.yaml "00001700+21.5000-42+012503ok----"
  fixstr layout -l telemetry.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := configureLogging(cmd.ErrOrStderr(), *opts); err != nil {
				return err
			}
			session, err := prof.Start(opts.profile)
			if err != nil {
				return fmt.Errorf("start profiling: %w", err)
			}
			state.session = session
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging (same as --log-level debug)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "log as JSON")
	root.PersistentFlags().StringVar(&opts.profile.CPU, "cpuprofile", "", "write a CPU profile (profile builds)")
	root.PersistentFlags().StringVar(&opts.profile.Heap, "memprofile", "", "write a heap profile (profile builds)")

	root.AddCommand(
		newDemoCmd(),
		newPadCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newLayoutCmd(),
		newBenchCmd(),
	)
	return root, state
}

// Execute runs the root command.
func Execute() error {
	root, state := newRootCmd()
	err := root.Execute()
	if perr := state.stopProfile(); perr != nil {
		pkg.LogError(pkg.ComponentCLI, "write profile", "err", perr)
		if err == nil {
			err = perr
		}
	}
	return err
}

func configureLogging(w io.Writer, opts globalOptions) error {
	level, ok := pkg.ParseLogLevel(opts.logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", opts.logLevel)
	}
	if opts.verbose {
		level = slog.LevelDebug
	}

	format := pkg.LogFormatText
	if opts.logJSON {
		format = pkg.LogFormatJSON
	}
	pkg.SetLogOutput(w, format)
	pkg.SetLogLevel(level)
	return nil
}
