package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/frame"
)

func newDecodeCmd() *cobra.Command {
	var (
		layoutFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "decode -l <layout> RECORD",
		Short: "Decode a record into its field values",
		Long: `Decode one fixed-width record described by a YAML layout and print
its field values as YAML, in layout order, or as JSON with --json.

Examples:
  fixstr decode -l telemetry.yaml "00001700+21.5000-42+012503ok----"
  fixstr decode -l telemetry.yaml --json "00001700+21.5000-42+012503ok----"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := frame.LoadLayout(layoutFile)
			if err != nil {
				return err
			}
			dec, err := frame.NewDecoder(l)
			if err != nil {
				return err
			}
			rec, err := dec.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode %s: %w", l.Name, err)
			}

			if asJSON {
				return output(cmd.OutOrStdout(), rec.Map(), formatJSON)
			}
			return output(cmd.OutOrStdout(), rec.MapSlice(), formatYAML)
		},
	}

	cmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "layout file (YAML)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
