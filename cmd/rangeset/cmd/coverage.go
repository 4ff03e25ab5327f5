package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCoverageCmd(o *options) *cobra.Command {
	var showRanges bool
	c := &cobra.Command{
		Use:   "coverage",
		Short: "Counts the distinct ids covered by the fresh ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := o.evaluate(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if showRanges {
				for _, r := range report.Ranges() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", r, r.Size())
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.TotalFresh())
			return nil
		},
	}
	c.Flags().BoolVar(&showRanges, "ranges", false, "print every merged range with its size before the total")
	return c
}
