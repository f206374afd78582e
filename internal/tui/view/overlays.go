package view

import (
	"folio/internal/tui/design"
	"folio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

var overlayBackdrop = lipgloss.WithWhitespaceBackground(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#0B0F19"})

// renderHelpOverlay shows the full key map in a centred box.
func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	m.Help.ShowAll = true
	body := m.Help.View(m.Keys)
	container := design.OverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	canvas := lipgloss.Place(m.Width, max(m.Height-1, 1), lipgloss.Center, lipgloss.Center, container, overlayBackdrop)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}

// renderLogOverlay shows the activity log in a scrollable viewport.
func renderLogOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("≡ Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := max(overlayTotalWidth-design.OverlayStyle.GetHorizontalFrameSize(), 0)
	newViewportHeight := max(overlayTotalHeight-design.OverlayStyle.GetVerticalFrameSize()-titleHeight, 0)

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight

	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		m.ActivityLogDirty = false
		m.LogViewportLastWidth = m.LogViewport.Width
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.OverlayStyle.
		Width(max(overlayTotalWidth-design.OverlayStyle.GetHorizontalBorderSize(), 1)).
		Height(max(overlayTotalHeight-design.OverlayStyle.GetVerticalBorderSize(), 1)).
		Render(content)

	canvas := lipgloss.Place(m.Width, max(m.Height-1, 1), lipgloss.Center, lipgloss.Center, overlay, overlayBackdrop)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}
