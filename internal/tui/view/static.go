package view

import (
	"folio/internal/config"
	"folio/internal/tabs"
	"folio/internal/tui/model"
	"folio/internal/widgets"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// staticFillLimit bounds the frames spent filling skill bars.
const staticFillLimit = 1000

// RenderPaneStatic renders a single pane outside the TUI, with every
// animation already at its final state.
func RenderPaneStatic(cfg config.FolioConfig, id tabs.PaneID, width int) string {
	if zone.DefaultManager == nil {
		zone.NewGlobal()
	}
	clock := tabs.NewManualClock(tabs.TeaClock{}.Now())
	cfg.UI.DisableBackground = true
	m := model.InitialModel(model.TUIConfig{Config: cfg, Clock: clock})
	m.Width = width

	settle(clock, m.SkillBars.Reveal(), m.SkillBars.Update)
	settle(clock, m.Counters.Start(), m.Counters.Update)

	content := renderPane(m, id, width)
	out := content.Body
	if content.Sticky != "" {
		out = content.Sticky + "\n" + out
	}
	return zone.Scan(out)
}

// settle drains the manual clock through update until nothing is pending.
func settle(clock *tabs.ManualClock, _ tea.Cmd, update func(tea.Msg) tea.Cmd) {
	for i := 0; clock.Pending() > 0 && i < staticFillLimit; i++ {
		for _, msg := range clock.Advance(widgets.CounterInterval) {
			update(msg)
		}
	}
}
