package controller

import (
	"folio/internal/tui/model"
	"folio/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := mainControllerDispatch(a.model, msg)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model. Zone markers are resolved here so mouse
// handling can hit-test the last frame.
func (a AppModel) View() string {
	return zone.Scan(view.Render(a.model))
}
