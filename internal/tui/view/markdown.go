package view

import (
	"strings"

	"folio/internal/tui/model"
	"folio/pkg/logging"

	"github.com/charmbracelet/glamour"
)

// markdownStyleOverride lets tests force a colour-free style.
var markdownStyleOverride string

// renderMarkdown renders md at width, caching the renderer on the model.
// Failures fall back to the raw text.
func renderMarkdown(m *model.Model, md string, width int) string {
	if width < 10 {
		width = 10
	}
	if m.Markdown == nil || m.MarkdownWidth != width {
		style := m.Config.UI.MarkdownStyle
		if markdownStyleOverride != "" {
			style = markdownStyleOverride
		}
		if style == "" {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logging.Warn("View", "markdown renderer unavailable: %v", err)
			return md
		}
		m.Markdown = r
		m.MarkdownWidth = width
	}
	out, err := m.Markdown.Render(md)
	if err != nil {
		logging.Debug("View", "markdown render failed: %v", err)
		return md
	}
	return strings.Trim(out, "\n")
}
