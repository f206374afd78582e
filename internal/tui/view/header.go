package view

import (
	"fmt"
	"strings"

	"folio/internal/background"
	"folio/internal/tabs"
	"folio/internal/tui/components"
	"folio/internal/tui/design"
	"folio/internal/tui/model"
	"folio/internal/widgets"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// renderBackground draws the animated band behind the header. Cube centres
// are marked so hovering them can be detected.
func renderBackground(m *model.Model) string {
	if !m.ShowBackground || m.Scene == nil {
		return ""
	}
	grid := m.Scene.Render()
	if grid.Width == 0 || grid.Height == 0 {
		return ""
	}
	return grid.Render(func(c background.Cell) string {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Faint(c.Faint)
		s := style.Render(string(c.Rune))
		if c.Center && c.Cube >= 0 {
			return zone.Mark(background.CubeZoneID(c.Cube), s)
		}
		return s
	})
}

func navLabel(ctl tabs.NavigationControl) string {
	return fmt.Sprintf("%d %s", ctl.Target.Index()+1, ctl.Target.Title())
}

func navItemStyle(m *model.Model, ctl tabs.NavigationControl) lipgloss.Style {
	switch {
	case ctl.Active:
		return design.NavItemActiveStyle
	case m.Hover == ctl.ZoneID():
		return design.NavItemHoverStyle
	default:
		return design.NavItemStyle
	}
}

// renderDesktopNav lays the desktop controls out in one row.
func renderDesktopNav(m *model.Model) string {
	var items []string
	for _, ctl := range m.Tabs.Controls(tabs.Desktop) {
		items = append(items, zone.Mark(ctl.ZoneID(), navItemStyle(m, ctl).Render(navLabel(ctl))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func renderHamburger(m *model.Model) string {
	icon := "☰"
	if m.Tabs.MobileMenuOpen() {
		icon = "✕"
	}
	return zone.Mark(MenuZoneID, design.HamburgerStyle.Render(icon))
}

// renderMobileMenu stacks the mobile controls; "" while the menu is closed.
func renderMobileMenu(m *model.Model, width int) string {
	if !m.Tabs.MobileMenuOpen() {
		return ""
	}
	var items []string
	for _, ctl := range m.Tabs.Controls(tabs.Mobile) {
		items = append(items, zone.Mark(ctl.ZoneID(), navItemStyle(m, ctl).Render(navLabel(ctl))))
	}
	menu := lipgloss.JoinVertical(lipgloss.Left, items...)
	inner := width - design.MobileMenuStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return design.MobileMenuStyle.Width(inner).Render(menu)
}

// renderHeader is the background band, the brand bar with navigation and,
// on narrow terminals, the open mobile menu.
func renderHeader(m *model.Model, width int) string {
	var right string
	if m.IsMobile() {
		right = renderHamburger(m)
	} else {
		right = renderDesktopNav(m)
	}
	bar := components.NewHeader(m.Config.Owner.Name).
		WithRightContent(right).
		WithWidth(width).
		WithScrolled(widgets.Scrolled(m.Scroll)).
		Render()

	parts := []string{}
	if band := renderBackground(m); band != "" {
		parts = append(parts, band)
	}
	parts = append(parts, bar)
	if m.IsMobile() {
		if menu := renderMobileMenu(m, width); menu != "" {
			parts = append(parts, menu)
		}
	}
	return strings.Join(parts, "\n")
}
