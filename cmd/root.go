package cmd

import (
	"context"
	"fmt"
	"os"

	"folio/internal/app"

	"github.com/spf13/cobra"
)

// configPath points at a single config file instead of the layered lookup.
var configPath string

// debug enables verbose logging and the state suffix in the status bar.
var debug bool

// initialTab selects the first pane, as "cv" or "#cv".
var initialTab string

// noBackground turns off the animated header band.
var noBackground bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio [#pane]",
	Short: "A personal portfolio for the terminal",
	Long: `folio is a tabbed portfolio that runs in your terminal.

Seven panes (home, about, cv, projects, skills, services, contact) are
reachable by number keys, arrow keys, the mouse or a "#pane" argument.
Switching panes plays a short card-flip transition, and the contact pane
turns a short form into a mailto link for your mail client.

Configuration:
  folio merges ~/.config/folio/config.yaml and .folio/config.yaml over its
  built-in defaults. Use --config to load one file instead.`,
	Args: cobra.MaximumNArgs(1),
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a malformed config file)
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	hash := initialTab
	if len(args) == 1 {
		hash = args[0]
	}
	application, err := newApplication(false, hash)
	if err != nil {
		return err
	}
	return application.Run(commandContext(cmd))
}

// newApplication bootstraps the app from the shared flags.
func newApplication(noTUI bool, hash string) (*app.Application, error) {
	cfg := app.NewConfig(noTUI, debug, hash)
	cfg.ConfigPath = configPath
	cfg.NoBackground = noBackground

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "folio version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newPanesCmd())
	rootCmd.AddCommand(newContactCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file only")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noBackground, "no-background", false, "Disable the animated header background")
	rootCmd.Flags().StringVarP(&initialTab, "tab", "t", "", "Pane to open first (e.g. cv or #cv)")
}
