package controller

import (
	"strconv"

	"folio/internal/tabs"
	"folio/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// handleKeyMsgGlobal processes key presses outside the contact form.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyLogs):
			return m, copyLogsCmd(m.ActivityLog)
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopyLogs):
		return m, copyLogsCmd(m.ActivityLog)

	case key.Matches(keyMsg, m.Keys.ToggleBg):
		m.ShowBackground = !m.ShowBackground
		if m.ShowBackground {
			m.ResetFrameDelta()
			return m, tea.Batch(
				m.StartBackground(),
				m.SetStatusMessage("Background on", model.StatusBarInfo, model.StatusMessageLifetime),
			)
		}
		return m, m.SetStatusMessage("Background off", model.StatusBarInfo, model.StatusMessageLifetime)

	case key.Matches(keyMsg, m.Keys.JumpTo):
		n, err := strconv.Atoi(keyMsg.String())
		panes := tabs.All()
		if err != nil || n < 1 || n > len(panes) {
			return m, nil
		}
		return m, m.Tabs.Activate(panes[n-1])

	case key.Matches(keyMsg, m.Keys.NextTab):
		return m, m.Tabs.Neighbour(1)

	case key.Matches(keyMsg, m.Keys.PrevTab):
		return m, m.Tabs.Neighbour(-1)

	case key.Matches(keyMsg, m.Keys.Back):
		return m, navigateHistory(m, m.History.Back)

	case key.Matches(keyMsg, m.Keys.Forward):
		return m, navigateHistory(m, m.History.Forward)

	case key.Matches(keyMsg, m.Keys.Menu):
		m.Tabs.ToggleMobileMenu()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		if m.Tabs.MobileMenuOpen() {
			m.Tabs.ToggleMobileMenu()
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ScrollUp):
		m.ScrollBy(-1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.ScrollDown):
		m.ScrollBy(1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.PrevItem):
		stepItems(m, -1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextItem):
		stepItems(m, 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Edit):
		if !onSettledPane(m, tabs.Contact) {
			return m, nil
		}
		return m, m.FocusContactField(m.ContactFocus)

	case key.Matches(keyMsg, m.Keys.Submit):
		if !onSettledPane(m, tabs.Contact) {
			return m, nil
		}
		return submitContact(m)
	}
	return m, nil
}

// onSettledPane reports whether id is the interactive pane right now.
func onSettledPane(m *model.Model, id tabs.PaneID) bool {
	return !m.Tabs.IsAnimating() && m.Tabs.Current() == id
}

// navigateHistory moves through the fragment history and replays the
// resulting fragment. Moves are refused during a transition so the
// history cursor never runs ahead of the visible pane.
func navigateHistory(m *model.Model, move func() (tabs.PopStateMsg, bool)) tea.Cmd {
	if m.Tabs.IsAnimating() {
		return nil
	}
	pop, ok := move()
	if !ok {
		LogDebug(m, keySubsystem, "no history entry in that direction")
		return nil
	}
	return m.Tabs.Update(pop)
}

// stepItems pages the projects or moves the services carousel.
func stepItems(m *model.Model, delta int) {
	switch {
	case onSettledPane(m, tabs.Projects):
		if delta > 0 {
			m.Pager.Next()
		} else {
			m.Pager.Prev()
		}
	case onSettledPane(m, tabs.Services):
		if delta > 0 {
			m.Carousel.Next()
		} else {
			m.Carousel.Prev()
		}
	}
}
