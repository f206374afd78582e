package view

import (
	"fmt"
	"strings"

	"folio/internal/tabs"
	"folio/internal/tui/components"
	"folio/internal/tui/design"
	"folio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.StatusBarStyle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return design.StatusBarStyle.Render("Initializing... (waiting for window size)")
		}
		return design.StatusBarStyle.Render("Initializing...")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		if m.Width == 0 || m.Height == 0 {
			return design.StatusBarStyle.Render("Initializing... (waiting for window size)")
		}
		return renderMain(m)
	}
}

// renderMain stacks header, pane area, toasts and status bar.
func renderMain(m *model.Model) string {
	header := renderHeader(m, m.Width)
	status := renderStatusBar(m, m.Width)
	toasts := components.RenderToasts(m.Notifier.Toasts(), min(m.Width, 48))
	if toasts != "" {
		toasts = lipgloss.PlaceHorizontal(m.Width, lipgloss.Right, toasts)
	}

	paneHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(status)
	if toasts != "" {
		paneHeight -= lipgloss.Height(toasts)
	}
	if paneHeight < 1 {
		paneHeight = 1
	}

	contentWidth := design.ContentWidth(m.Width)
	area := renderPaneArea(m, contentWidth, paneHeight)
	area = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, area)

	parts := []string{header, area}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, status)
	return strings.Join(parts, "\n")
}

// statusLeft describes where the user is: the fragment, plus the target
// while a transition runs.
func statusLeft(m *model.Model) string {
	left := tabs.Fragment(m.Tabs.Settled())
	if m.Tabs.IsAnimating() {
		left = fmt.Sprintf("%s → %s", tabs.Fragment(m.Tabs.Previous()), tabs.Fragment(m.Tabs.Current()))
	}
	if m.ContactEditing {
		left += "  editing"
	}
	if m.DebugMode {
		left += fmt.Sprintf("  [%s %.0f%%]", m.Tabs.State(), m.Tabs.Progress()*100)
	}
	return left
}

func renderStatusBar(m *model.Model, width int) string {
	return components.NewStatusBar(width).
		WithLeftText(statusLeft(m)).
		WithRightText("? help  q quit").
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
