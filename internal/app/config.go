package app

import (
	"folio/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode: print the initial pane and exit instead of starting the TUI
	NoTUI bool

	// Debug settings
	Debug bool

	// InitialHash selects the first pane ("#cv" or "cv").
	InitialHash string

	// ConfigPath overrides the layered configuration lookup.
	ConfigPath string

	NoBackground bool

	// Width of the static rendering in no-TUI mode.
	Width int

	// Portfolio configuration, populated by NewApplication
	FolioConfig *config.FolioConfig
}

// DefaultStaticWidth is used when no width is given in no-TUI mode.
const DefaultStaticWidth = 100

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, initialHash string) *Config {
	return &Config{
		NoTUI:       noTUI,
		Debug:       debug,
		InitialHash: initialHash,
		Width:       DefaultStaticWidth,
	}
}
