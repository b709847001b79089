package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hashcore/pkg/digest"
)

func (a *app) newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBLOCK\tDIGEST\tCAPACITY")
			for _, alg := range digest.Algorithms {
				size := fmt.Sprint(alg.Size())
				if alg.Extendable() {
					size = fmt.Sprintf("xof (%d)", alg.DefaultSize())
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", alg, alg.BlockSize(), size, alg.Capacity())
			}
			return tw.Flush()
		},
	}
}
