package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/frame"
	"github.com/ardnew/fixstr/pkg"
)

func newLayoutCmd() *cobra.Command {
	var (
		layoutFile string
		asYAML     bool
	)

	cmd := &cobra.Command{
		Use:   "layout -l <layout>",
		Short: "Validate a layout and draw its field map",
		Long: `Validate a YAML layout file and draw one character per record byte,
each field marked with its own letter, followed by a field table.

Examples:
  fixstr layout -l telemetry.yaml
  fixstr layout -l telemetry.yaml --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := frame.LoadLayout(layoutFile)
			if err != nil {
				return err
			}
			pkg.LogDebug(pkg.ComponentCLI, "layout valid",
				"layout", l.Name, "size", l.Size, "fields", len(l.Fields))

			out := cmd.OutOrStdout()
			if asYAML {
				return output(out, l, formatYAML)
			}

			fmt.Fprintf(out, "%s: %d bytes, fill %q\n", l.Name, l.Size, l.FillByte())
			fmt.Fprintln(out, l.Map())
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MARK\tNAME\tKIND\tSTART\tWIDTH\tDECIMALS")
			for i, f := range l.Fields {
				fmt.Fprintf(tw, "%c\t%s\t%s\t%d\t%d\t%d\n",
					'a'+i%26, f.Name, f.Kind, f.Start, f.Width, f.Decimals)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "layout file (YAML)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the normalized layout as YAML")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
