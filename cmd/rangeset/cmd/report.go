package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/henderiw/rangeset/pkg/inventory"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newReportCmd(o *options) *cobra.Command {
	var selector string
	c := &cobra.Command{
		Use:   "report",
		Short: "Prints the status of every available id",
		Long: `'rangeset report' prints every available id with its status and, for fresh
ids, the merged range covering it. --selector filters the ids with a label
selector over the "status" and "range" labels, e.g. --selector status=fresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := labels.Parse(selector)
			if err != nil {
				return fmt.Errorf("invalid selector %q: %w", selector, err)
			}
			report, err := o.evaluate(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			fresh := color.New(color.FgGreen)
			spoiled := color.New(color.FgRed)
			w := cmd.OutOrStdout()
			for _, e := range report.GetByLabel(sel) {
				if e.IsFresh() {
					fresh.Fprintf(w, "%d\t%s\t%s\n", e.ID(), inventory.StatusFresh, e.Labels()[inventory.LabelRange])
					continue
				}
				spoiled.Fprintf(w, "%d\t%s\n", e.ID(), inventory.StatusSpoiled)
			}
			return nil
		},
	}
	c.Flags().StringVar(&selector, "selector", "", "label selector to filter ids, e.g. status=fresh")
	return c
}
