package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ardnew/fixstr/str"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write 12345678 into a 16-byte '-' buffer at offset 2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mem [17]byte
			s := str.Wrap(mem[:], str.WithTerminator())
			s.Fill('-')
			if err := s.PadSetUint(2, 8, 12345678); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.String())
			fmt.Fprintln(out, s.Len())
			return nil
		},
	}
}
