package controller

import (
	"folio/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// NewProgram creates the Bubble Tea program for the portfolio.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	zone.NewGlobal()

	m := model.InitialModel(cfg)
	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return p, nil
}
