package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFreshCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fresh",
		Short: "Counts the available ids that fall in a fresh range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := o.evaluate(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Fresh())
			return nil
		},
	}
}
