package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"folio/internal/tabs"
	"folio/internal/tui/controller"
	"folio/internal/tui/model"
	"folio/internal/tui/view"
	"folio/pkg/logging"
)

// runCLIMode prints the selected pane once, without an interactive session.
func runCLIMode(ctx context.Context, config *Config, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, ok := tabs.ParsePaneID(config.InitialHash)
	if !ok {
		if config.InitialHash != "" {
			logging.Warn("CLI", "Unknown pane %q, showing %s", config.InitialHash, tabs.Home)
		}
		id = tabs.Home
	}
	width := config.Width
	if width <= 0 {
		width = DefaultStaticWidth
	}
	logging.Debug("CLI", "Rendering %s at width %d", id, width)

	if _, err := fmt.Fprintln(out, view.RenderPaneStatic(*config.FolioConfig, id, width)); err != nil {
		return fmt.Errorf("failed to write pane %s: %w", id, err)
	}
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for the activity log overlay
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		Config:      *config.FolioConfig,
		DebugMode:   config.Debug,
		InitialHash: config.InitialHash,
		Seed:        uint64(time.Now().UnixNano()),
		LogChannel:  logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-stop:
		}
	}()

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
