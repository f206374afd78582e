package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"folio/internal/config"
	"folio/pkg/logging"
)

// Application is the main application structure that bootstraps and runs folio
type Application struct {
	config *Config
	out    io.Writer
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	var folioCfg config.FolioConfig
	var err error

	if cfg.ConfigPath != "" {
		folioCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load folio configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load folio configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		// Layered loading: defaults, then user, then project overrides
		folioCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load folio configuration")
			return nil, fmt.Errorf("failed to load folio configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if cfg.NoBackground {
		folioCfg.UI.DisableBackground = true
	}
	cfg.FolioConfig = &folioCfg

	return &Application{
		config: cfg,
		out:    os.Stdout,
	}, nil
}

// Config returns the resolved configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.out)
	}
	return runTUIMode(ctx, a.config)
}

// SetOutput redirects no-TUI rendering, which defaults to stdout.
func (a *Application) SetOutput(w io.Writer) {
	a.out = w
}
