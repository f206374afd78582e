package cmd

import (
	"fmt"

	"folio/internal/tabs"

	"github.com/spf13/cobra"
)

func newPanesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panes",
		Short: "List the panes and their fragments",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, id := range tabs.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-10s %s\n", i+1, tabs.Fragment(id), id.Title())
			}
		},
	}
}
