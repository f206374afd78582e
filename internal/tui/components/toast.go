package components

import (
	"folio/internal/tui/design"
	"folio/internal/tui/utils"
	"folio/internal/widgets"

	"github.com/charmbracelet/lipgloss"
)

// RenderToasts stacks toasts vertically, newest at the bottom, each at most
// width cells wide. It returns "" when there is nothing to show.
func RenderToasts(toasts []widgets.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	var rendered []string
	for _, t := range toasts {
		style := design.ToastStyle
		switch t.Kind {
		case widgets.ToastSuccess:
			style = design.ToastSuccessStyle
		case widgets.ToastError:
			style = design.ToastErrorStyle
		}
		inner := width - style.GetHorizontalFrameSize()
		text := t.Kind.Icon() + " " + t.Message
		if inner > 0 {
			text = utils.TruncateString(text, inner)
		}
		rendered = append(rendered, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
