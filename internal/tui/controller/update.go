package controller

import (
	"folio/internal/tabs"
	"folio/internal/tui/model"
	"folio/internal/widgets"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI.
// It receives every Bubble Tea message and hands it to the handler for its
// type and the current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseMsg, model.NewLogEntryMsg, model.BackgroundFrameMsg,
		tabs.FrameMsg, tabs.TickMsg, widgets.CounterTickMsg, widgets.TypewriterTickMsg, widgets.SkillFrameMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T -- Value: %v", msg, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.ContactEditing && m.CurrentAppMode == model.ModeMain {
			return handleKeyMsgContact(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tabs.FrameMsg, tabs.TickMsg, tabs.FinalizeMsg, tabs.PopStateMsg:
		return m, m.Tabs.Update(msg)

	case tabs.SettledMsg:
		return handleSettledMsg(m, msg)

	case widgets.CarouselTickMsg:
		return m, m.Carousel.Update(msg)
	case widgets.CounterTickMsg:
		return m, m.Counters.Update(msg)
	case widgets.TypewriterTickMsg:
		return m, m.Typewriter.Update(msg)
	case widgets.SkillRevealMsg, widgets.SkillFrameMsg:
		return m, m.SkillBars.Update(msg)
	case widgets.ShowToastMsg, widgets.ToastExpiredMsg:
		return m, m.Notifier.Update(msg)

	case model.BackgroundFrameMsg:
		return handleBackgroundFrame(m)

	case model.ContactSentMsg:
		return handleContactSentMsg(m, msg)

	case model.LogsCopiedMsg:
		return handleLogsCopiedMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		if m.CurrentAppMode == model.ModeLogOverlay && m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	default:
		LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type in default case: %T", msg)
		if m.ContactEditing {
			return m, updateFocusedField(m, msg)
		}
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Thanks for visiting!"
	m.Carousel.Stop()
	return m, tea.Quit
}

// handleSettledMsg starts the widgets that wait for their pane to be shown.
func handleSettledMsg(m *model.Model, msg tabs.SettledMsg) (*model.Model, tea.Cmd) {
	m.Scroll = 0
	if msg.Current != tabs.Contact {
		m.BlurContactForm()
	}
	LogDebug(m, controllerSubsystem, "pane %s settled (from %s)", msg.Current, msg.Previous)

	switch msg.Current {
	case tabs.About:
		return m, m.Counters.Start()
	case tabs.Skills:
		return m, m.SkillBars.Reveal()
	}
	return m, nil
}

// handleBackgroundFrame advances the header animation and schedules the
// next frame while the background is on.
func handleBackgroundFrame(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.ShowBackground || m.Scene == nil {
		return m, nil
	}
	m.Scene.Step(m.FrameDelta(m.Clock.Now()))
	return m, m.StartBackground()
}
