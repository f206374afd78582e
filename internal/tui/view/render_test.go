package view

import (
	"os"
	"strings"
	"testing"
	"time"

	"folio/internal/config"
	"folio/internal/tabs"
	"folio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	markdownStyleOverride = "notty"
	os.Exit(m.Run())
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, width, height int) (*model.Model, *tabs.ManualClock) {
	t.Helper()
	clock := tabs.NewManualClock(epoch)
	cfg := config.GetDefaultConfig()
	cfg.UI.DisableBackground = true
	m := model.InitialModel(model.TUIConfig{Config: cfg, Clock: clock, Seed: 7})
	m.Width = width
	m.Height = height
	m.CurrentAppMode = model.ModeMain
	return m, clock
}

func render(m *model.Model) string {
	return zone.Scan(Render(m))
}

func TestRender_ModeInitializing(t *testing.T) {
	m, _ := newTestModel(t, 0, 0)
	m.CurrentAppMode = model.ModeInitializing
	assert.Contains(t, render(m), "waiting for window size")

	m.Width, m.Height = 80, 24
	assert.Equal(t, "Initializing...", strings.TrimSpace(render(m)))
}

func TestRender_ModeQuitting(t *testing.T) {
	m, _ := newTestModel(t, 80, 24)
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye!"
	assert.Contains(t, render(m), "Goodbye!")
}

func TestRender_MainDesktop(t *testing.T) {
	m, _ := newTestModel(t, 120, 30)
	out := render(m)

	assert.Contains(t, out, "Sam Rivera")
	for _, id := range tabs.All() {
		assert.Contains(t, out, id.Title(), "nav should list %s", id)
	}
	assert.Contains(t, out, "#home")
	assert.NotContains(t, out, "☰")
	assert.Equal(t, 30, lipgloss.Height(out))
}

func TestRender_MainMobileMenu(t *testing.T) {
	m, _ := newTestModel(t, 60, 30)

	out := render(m)
	assert.Contains(t, out, "☰")
	assert.NotContains(t, out, "5 Skills")

	m.Tabs.ToggleMobileMenu()
	out = render(m)
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "5 Skills")
}

func TestRender_StatusBarShowsTransition(t *testing.T) {
	m, clock := newTestModel(t, 120, 30)
	m.Tabs.SwitchTab(tabs.About, tabs.Forward)
	for _, msg := range clock.Advance(tabs.DefaultFrameInterval) {
		m.Tabs.Update(msg)
	}
	require.True(t, m.Tabs.IsAnimating())

	assert.Contains(t, render(m), "#home → #about")
}

func TestRender_StatusMessageReplacesLeftText(t *testing.T) {
	m, _ := newTestModel(t, 120, 30)
	m.SetStatusMessage("Logs copied", model.StatusBarSuccess, time.Second)
	out := render(m)
	assert.Contains(t, out, "Logs copied")
	assert.NotContains(t, out, "#home")
}

func TestRender_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m.CurrentAppMode = model.ModeHelpOverlay
	out := render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "toggle background")
}

func TestRender_LogOverlay(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] Tabs: transition home -> about")
	out := render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "transition home -> about")
	assert.False(t, m.ActivityLogDirty)
}

func TestRenderPane_Content(t *testing.T) {
	tests := []struct {
		pane tabs.PaneID
		want []string
	}{
		{tabs.Home, []string{"Sam Rivera", "get in touch"}},
		{tabs.About, []string{"About me", "Years shipping", "10+", "Tech stack", "Kafka"}},
		{tabs.CV, []string{"Experience", "Staff Engineer", "Northwind Logistics", "Certifications"}},
		{tabs.Projects, []string{"tracer", "pgwatch-lite", "page 1 of 2"}},
		{tabs.Skills, []string{"Languages", "Observability", "0%"}},
		{tabs.Services, []string{"Backend services", "Observability", "●"}},
		{tabs.Contact, []string{"Have a project in mind", "Name", "Message", "Send Message"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.pane), func(t *testing.T) {
			m, _ := newTestModel(t, 100, 30)
			c := renderPane(m, tt.pane, 90)
			out := zone.Scan(c.Sticky + "\n" + c.Body)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderPane_ProjectsSecondPage(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	require.True(t, m.Pager.SetPage(1))
	out := zone.Scan(renderPane(m, tabs.Projects, 90).Body)
	assert.Contains(t, out, "cronless")
	assert.NotContains(t, out, "tracer")
	assert.Contains(t, out, "page 2 of 2")
}

func TestRenderPane_ServicesSlide(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	out := zone.Scan(renderPane(m, tabs.Services, 90).Body)
	assert.NotContains(t, out, "Migrations")

	m.Carousel.Next()
	out = zone.Scan(renderPane(m, tabs.Services, 90).Body)
	assert.Contains(t, out, "Migrations")
	assert.NotContains(t, out, "Backend services")
}

func TestRenderPane_ContactEditingHint(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	assert.Contains(t, renderPane(m, tabs.Contact, 90).Body, "enter to fill in the form")

	m.ContactEditing = true
	assert.Contains(t, renderPane(m, tabs.Contact, 90).Body, "ctrl+s send")

	m.ContactSending = true
	assert.Contains(t, zone.Scan(renderPane(m, tabs.Contact, 90).Body), "Sending...")
}

func TestCVLayout_SectionOffsets(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	_, sections := cvLayout(m, 90)
	require.Len(t, sections, 3)
	assert.Equal(t, 0, sections[0].Offset)
	assert.Greater(t, sections[1].Offset, sections[0].Offset)
	assert.Greater(t, sections[2].Offset, sections[1].Offset)
}

func TestRenderViewport_RecordsScrollBounds(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	m.Scroll = 1000

	out := renderViewport(m, tabs.CV, 90, 8, true)
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Greater(t, m.PaneContentHeight, 0)
	assert.Equal(t, m.MaxScroll(), m.Scroll, "scroll is clamped to the content")
}

func TestProjectedColumns(t *testing.T) {
	assert.Equal(t, 80, projectedColumns(tabs.Identity, 80))
	assert.Equal(t, 0, projectedColumns(tabs.Entering(tabs.Forward), 80))
	half := tabs.Lerp(tabs.Entering(tabs.Forward), tabs.Identity, 0.5)
	cols := projectedColumns(half, 80)
	assert.Greater(t, cols, 0)
	assert.Less(t, cols, 80)
}

func TestFitBlock(t *testing.T) {
	out := fitBlock("a\nb\nc\nd", 5, 2)
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, 5, lipgloss.Width(out))
	assert.Equal(t, "", fitBlock("x", 0, 3))
}

func TestParseIndexZone(t *testing.T) {
	i, ok := ParseIndexZone(TechZonePrefix, TechZoneID(3))
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = ParseIndexZone(TechZonePrefix, ServiceZoneID(3))
	assert.False(t, ok)
	_, ok = ParseIndexZone(TechZonePrefix, "tech:x")
	assert.False(t, ok)
}

func TestRenderPaneStatic_FinalState(t *testing.T) {
	out := RenderPaneStatic(config.GetDefaultConfig(), tabs.Skills, 90)
	assert.Contains(t, out, "95%")
	assert.Contains(t, out, "70%")

	out = RenderPaneStatic(config.GetDefaultConfig(), tabs.About, 90)
	assert.Contains(t, out, "40+")
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"[INFO] a", "[WARN] b", "[ERROR] c"}, 40)
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}
