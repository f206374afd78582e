package cmd

import (
	"fmt"

	"folio/internal/contact"

	"github.com/spf13/cobra"
)

// newSender is replaced in tests.
var newSender = contact.NewSender

func newContactCmd() *cobra.Command {
	var (
		form      contact.Form
		printOnly bool
	)
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message without opening the TUI",
		Long: `Builds the same mailto link as the contact pane and opens it in your
mail client. If no mail client can be opened the link is copied to the
clipboard. With --print the link is written to stdout instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}
			application, err := newApplication(true, "")
			if err != nil {
				return err
			}
			recipient := application.Config().FolioConfig.Owner.Email

			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoLink(recipient, form))
				return nil
			}
			outcome, err := newSender(recipient).Send(form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Message())
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "Subject line")
	cmd.Flags().StringVarP(&form.Message, "message", "m", "", "Message body")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the mailto link instead of opening it")
	return cmd
}
