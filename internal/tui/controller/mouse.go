package controller

import (
	"folio/internal/background"
	"folio/internal/contact"
	"folio/internal/tabs"
	"folio/internal/tui/model"
	"folio/internal/tui/view"
	"folio/internal/widgets"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const mouseSubsystem = "Mouse"

// zoneCandidates lists every zone the current frame may contain, most
// specific first.
func zoneCandidates(m *model.Model) []string {
	var ids []string
	platform := m.Platform()
	for _, id := range tabs.All() {
		ids = append(ids, tabs.ZoneID(platform, id))
	}
	ids = append(ids, view.MenuZoneID)

	switch m.Tabs.Settled() {
	case tabs.About:
		for i := range m.Config.Content.TechStack {
			ids = append(ids, view.TechZoneID(i))
		}
	case tabs.Projects:
		for i := 0; i < m.Pager.Pages(); i++ {
			ids = append(ids, view.PageZoneID(i))
		}
	case tabs.Services:
		ids = append(ids, view.CarouselPrevZoneID, view.CarouselNextZoneID)
		for i := 0; i < m.Carousel.Slides(); i++ {
			ids = append(ids, view.SlideZoneID(i))
		}
		for i := range m.Config.Content.Services {
			ids = append(ids, view.ServiceZoneID(i))
		}
	case tabs.Contact:
		ids = append(ids, view.SubmitZoneID)
		for _, f := range contact.Fields {
			ids = append(ids, view.FieldZoneID(int(f)))
		}
	}

	if m.ShowBackground {
		for i := 0; i < background.CubeCount; i++ {
			ids = append(ids, background.CubeZoneID(i))
		}
	}
	return ids
}

// zoneAt returns the zone under the pointer, or "".
func zoneAt(m *model.Model, msg tea.MouseMsg) string {
	for _, id := range zoneCandidates(m) {
		if z := zone.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

// handleMouseMsg routes clicks, wheel scrolling and hover tracking.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	if m.CurrentAppMode != model.ModeMain {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ScrollBy(-1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.ScrollBy(1)
		return m, nil
	case msg.Action == tea.MouseActionMotion:
		if m.Scene != nil {
			m.Scene.SetPointer(msg.X, msg.Y)
		}
		return m, handleZoneHover(m, zoneAt(m, msg))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return handleZoneClick(m, zoneAt(m, msg))
	}
	return m, nil
}

// handleZoneHover records the hovered zone and highlights a hovered cube.
func handleZoneHover(m *model.Model, id string) tea.Cmd {
	m.Hover = id
	if m.Scene == nil {
		return nil
	}
	if i, ok := background.ParseCubeZoneID(id); ok {
		m.Scene.SetHovered(i)
	} else {
		m.Scene.SetHovered(-1)
	}
	return nil
}

// handleZoneClick performs the action bound to a clicked zone.
func handleZoneClick(m *model.Model, id string) (*model.Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	LogDebug(m, mouseSubsystem, "click on %s", id)

	if ctl, ok := tabs.ParseZoneID(id); ok {
		return m, m.Tabs.Activate(ctl.Target)
	}
	if i, ok := view.ParseIndexZone(widgets.PageZonePrefix, id); ok {
		m.Pager.SetPage(i)
		return m, nil
	}
	if i, ok := view.ParseIndexZone(widgets.CarouselZonePrefix, id); ok {
		m.Carousel.Show(i)
		return m, nil
	}
	if i, ok := view.ParseIndexZone(view.FieldZonePrefix, id); ok && i < len(contact.Fields) {
		return m, m.FocusContactField(contact.Fields[i])
	}

	switch id {
	case view.MenuZoneID:
		m.Tabs.ToggleMobileMenu()
	case view.CarouselPrevZoneID:
		m.Carousel.Prev()
	case view.CarouselNextZoneID:
		m.Carousel.Next()
	case view.SubmitZoneID:
		return submitContact(m)
	}
	return m, nil
}
