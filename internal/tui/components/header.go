package components

import (
	"strings"

	"folio/internal/tui/design"
	"folio/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header is the top bar: brand on the left, navigation on the right.
type Header struct {
	Brand        string
	RightContent string
	Width        int
	Scrolled     bool
}

// NewHeader creates a new header
func NewHeader(brand string) *Header {
	return &Header{
		Brand: brand,
		Width: 80,
	}
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// WithScrolled switches to the compact scrolled style
func (h *Header) WithScrolled(scrolled bool) *Header {
	h.Scrolled = scrolled
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	style := design.HeaderStyle
	if h.Scrolled {
		style = design.HeaderScrolledStyle
	}
	available := h.Width - style.GetHorizontalFrameSize()
	if available < 1 {
		available = 1
	}

	left := design.BrandStyle.Render(utils.TruncateString(h.Brand, available))
	content := left
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= available {
			content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + h.RightContent
		} else {
			// navigation wins over the brand when space is short
			content = h.RightContent
		}
	}

	return style.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
