package controller

import (
	"folio/internal/tui/design"
	"folio/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
// The background is re-projected for the new width, and the first size
// moves the program from ModeInitializing to ModeMain.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	if m.Scene != nil {
		m.Scene.Resize(msg.Width, design.HeaderBandHeight)
	}
	m.Help.Width = msg.Width

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMain
	}
	if !m.IsMobile() && m.Tabs.MobileMenuOpen() {
		m.Tabs.ToggleMobileMenu()
	}
	LogDebug(m, controllerSubsystem, "window resized to %dx%d (%s)", msg.Width, msg.Height, m.Platform())
	return m, nil
}
