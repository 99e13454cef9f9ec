package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/frame"
	"github.com/ardnew/fixstr/pkg"
)

func newEncodeCmd() *cobra.Command {
	var layoutFile string

	cmd := &cobra.Command{
		Use:   "encode -l <layout> name=value...",
		Short: "Encode field values into a record",
		Long: `Encode name=value pairs into one fixed-width record described by a
YAML layout. Fields without a value are left as the layout fill byte.

Examples:
  fixstr encode -l telemetry.yaml seq=17 temp=21.5 delta=-42 volt=1.25 tag=ok`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := frame.LoadLayout(layoutFile)
			if err != nil {
				return err
			}
			values, err := parseAssignments(args)
			if err != nil {
				return err
			}

			enc, err := frame.NewEncoder(l)
			if err != nil {
				return err
			}
			if err := enc.Encode(values); err != nil {
				st := pkg.StatusOf(err)
				pkg.LogInfo(pkg.ComponentCLI, "encode failed", "layout", l.Name, "status", st)
				return fmt.Errorf("encode %s: %w", l.Name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), enc.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "layout file (YAML)")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

// parseAssignments splits name=value arguments. The value may contain '='.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not name=value", arg)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("field %q given twice", name)
		}
		values[name] = value
	}
	return values, nil
}
