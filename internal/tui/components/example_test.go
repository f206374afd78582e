package components_test

import (
	"fmt"

	"folio/internal/tui/components"
	"folio/internal/tui/model"
	"folio/internal/widgets"

	"github.com/charmbracelet/lipgloss"
)

// ExamplePanel demonstrates how to create and use a panel component
func ExamplePanel() {
	panel := components.NewPanel("ledgerd").
		WithContent("Double-entry ledger service").
		WithDimensions(40, 0).
		WithIcon("◆")

	output := panel.Render()
	fmt.Println(lipgloss.Width(output))
	// Output: 40
}

// ExampleStatusBar shows a transient message taking over the left side
func ExampleStatusBar() {
	bar := components.NewStatusBar(60).
		WithLeftText("home").
		WithRightText("? help").
		WithMessage("Email client opened!", model.StatusBarSuccess)

	fmt.Println(bar.ShowMessage, lipgloss.Width(bar.Render()))
	// Output: true 60
}

// ExampleRenderToasts stacks notifications
func ExampleRenderToasts() {
	out := components.RenderToasts([]widgets.Toast{
		{ID: 1, Kind: widgets.ToastSuccess, Message: "Welcome"},
		{ID: 2, Kind: widgets.ToastError, Message: "Please fill in all fields"},
	}, 40)
	fmt.Println(lipgloss.Height(out))
	// Output: 6
}
