package view

import (
	"math"
	"strings"

	"folio/internal/tabs"
	"folio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// projectedColumns converts a transform into the number of columns the
// pane occupies out of width.
func projectedColumns(t tabs.Transform, width int) int {
	cols := int(math.Round(t.ProjectedWidth() * float64(width)))
	if cols < 0 {
		return 0
	}
	if cols > width {
		return width
	}
	return cols
}

// fitBlock pads or crops s to exactly width x height cells.
func fitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Render(strings.Join(lines, "\n"))
}

// renderViewport renders one pane cropped to height. When settled is true
// the pane is the interactive one: it records its content height on the
// model and honours the current scroll.
func renderViewport(m *model.Model, id tabs.PaneID, width, height int, settled bool) string {
	content := renderPane(m, id, width)
	stickyHeight := 0
	if content.Sticky != "" {
		stickyHeight = lipgloss.Height(content.Sticky)
	}
	viewHeight := height - stickyHeight
	if viewHeight < 1 {
		viewHeight = 1
	}

	lines := strings.Split(content.Body, "\n")
	scroll := 0
	if settled {
		m.PaneContentHeight = len(lines)
		m.PaneViewHeight = viewHeight
		m.ScrollBy(0)
		scroll = m.Scroll
	}
	if scroll > len(lines) {
		scroll = len(lines)
	}
	end := scroll + viewHeight
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[scroll:end], "\n")
	if content.Sticky != "" {
		body = content.Sticky + "\n" + body
	}
	return fitBlock(body, width, height)
}

// renderPaneArea paints the visible panes. At rest it is the single active
// pane. During a transition the outgoing and incoming panes share the row,
// each squeezed to its projected width and faded once mostly transparent.
func renderPaneArea(m *model.Model, width, height int) string {
	panes := m.Tabs.VisiblePanes()
	if len(panes) < 2 {
		id := m.Tabs.Settled()
		if len(panes) == 1 {
			id = panes[0].ID
		}
		return renderViewport(m, id, width, height, true)
	}

	outgoing, incoming := panes[0], panes[1]
	blocks := make([]string, 0, 2)
	used := 0
	for _, p := range []tabs.Pane{outgoing, incoming} {
		cols := projectedColumns(p.Transform, width)
		if cols == 0 {
			blocks = append(blocks, "")
			continue
		}
		block := renderViewport(m, p.ID, width, height, false)
		block = lipgloss.NewStyle().MaxWidth(cols).Render(block)
		if p.Transform.Opacity < 0.5 {
			block = lipgloss.NewStyle().Faint(true).Render(block)
		}
		blocks = append(blocks, block)
		used += cols
	}
	if m.Tabs.Direction() == tabs.Backward {
		blocks[0], blocks[1] = blocks[1], blocks[0]
	}

	if used == 0 {
		return fitBlock("", width, height)
	}
	var nonEmpty []string
	for _, b := range blocks {
		if b != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, nonEmpty...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, fitBlock(row, used, height))
}
