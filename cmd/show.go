package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show [pane]",
		Short: "Print one pane and exit",
		Long: `Renders a single pane in its settled state and writes it to stdout.
Animations are fast-forwarded, so counters and skill bars show their
final values. Useful for screenshots and piping into other tools.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := ""
			if len(args) == 1 {
				hash = args[0]
			}
			application, err := newApplication(true, hash)
			if err != nil {
				return err
			}
			application.Config().Width = width
			application.SetOutput(cmd.OutOrStdout())
			return application.Run(commandContext(cmd))
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 100, "Render width in columns")
	return cmd
}
