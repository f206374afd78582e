package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4
	SpaceXL   = 6

	// Component dimensions
	MinPanelHeight   = 3
	MinPanelWidth    = 20
	HeaderBandHeight = 3
	MaxContentWidth  = 110
)

// Color Palette
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#0091B3",
		Dark:  "#00D4FF",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6D28D9",
		Dark:  "#8B5CF6",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#DB2777",
		Dark:  "#F472B6",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#111827",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#374151",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#E0F7FF",
		Dark:  "#0C3A4A",
	}
)

// Base Styles
var (
	// Text Styles
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	GlowStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)

	// Header & navigation
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, SpaceSM).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorBorder)

	HeaderScrolledStyle = HeaderStyle.
				BorderForeground(ColorPrimary)

	BrandStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	NavItemActiveStyle = NavItemStyle.
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	NavItemHoverStyle = NavItemStyle.
				Foreground(ColorText)

	HamburgerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	MobileMenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, SpaceSM)

	// Panels & cards
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorPrimary)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardHoverStyle = CardStyle.
			BorderForeground(ColorPrimary)

	TagStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TechItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TechItemHoverStyle = TechItemStyle.
				Foreground(ColorPrimary).
				BorderForeground(ColorPrimary)

	StatNumberStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Buttons & inputs
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ButtonActiveStyle = ButtonStyle.
				Foreground(ColorPrimary).
				BorderForeground(ColorPrimary).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.
				BorderForeground(ColorPrimary)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceSM)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)

	StatusBarInfoStyle = StatusBarStyle.
				Foreground(ColorInfo)

	// Toasts
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ToastSuccessStyle = ToastStyle.
				BorderForeground(ColorSuccess)

	ToastErrorStyle = ToastStyle.
			BorderForeground(ColorError)

	// Overlays
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, SpaceSM)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// ContentWidth caps the readable column width.
func ContentWidth(termWidth int) int {
	w := termWidth - SpaceLG
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinPanelWidth {
		w = MinPanelWidth
	}
	return w
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
