package components

import (
	"strings"

	"folio/internal/tui/design"
	"folio/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeInfo
)

func (pt PanelType) String() string {
	switch pt {
	case PanelTypeSuccess:
		return "Success"
	case PanelTypeError:
		return "Error"
	case PanelTypeInfo:
		return "Info"
	default:
		return "Default"
	}
}

// Panel is a bordered box used for cards, form sections and overlays.
type Panel struct {
	Title   string
	Icon    string
	Content string
	Width   int
	Height  int // 0 sizes to content
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets an icon shown before the title
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// SetFocused updates the focus (or hover) state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height != 0 && p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if title := p.renderTitle(innerWidth); title != "" {
		lines = append(lines, title)
	}
	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			if lipgloss.Width(line) > innerWidth {
				line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
			}
			lines = append(lines, line)
		}
	}

	if p.Height > 0 {
		innerHeight := p.Height - style.GetVerticalFrameSize()
		if innerHeight < 1 {
			innerHeight = 1
		}
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
			lines[innerHeight-1] = "…"
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	// Width in lipgloss excludes the border
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	base := design.PanelStyle
	if p.Focused {
		base = design.PanelFocusedStyle
	}
	switch p.Type {
	case PanelTypeSuccess:
		return base.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return base.BorderForeground(design.ColorError)
	case PanelTypeInfo:
		return base.BorderForeground(design.ColorInfo)
	default:
		return base
	}
}

// renderTitle renders the panel title with optional icon
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	title := p.Title
	if p.Icon != "" {
		title = p.Icon + " " + title
	}
	title = utils.TruncateString(title, width)

	style := design.SubtitleStyle
	if p.Focused {
		style = design.TitleStyle
	}
	return style.Render(title)
}
