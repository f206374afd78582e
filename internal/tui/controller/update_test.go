package controller

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"folio/internal/background"
	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/tabs"
	"folio/internal/tui/model"
	"folio/internal/tui/view"
	"folio/internal/widgets"
	"folio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeLauncher struct {
	links []string
	err   error
}

func (f *fakeLauncher) Open(link string) error {
	f.links = append(f.links, link)
	return f.err
}

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

type harness struct {
	m        *model.Model
	clock    *tabs.ManualClock
	launcher *fakeLauncher
}

func newHarness(t *testing.T, background bool) *harness {
	t.Helper()
	clock := tabs.NewManualClock(epoch)
	cfg := config.GetDefaultConfig()
	cfg.UI.DisableBackground = !background
	launcher := &fakeLauncher{}
	m := model.InitialModel(model.TUIConfig{
		Config: cfg,
		Clock:  clock,
		Seed:   3,
		Sender: &contact.Sender{Recipient: cfg.Owner.Email, Launcher: launcher, Clipboard: &fakeClipboard{}},
	})
	h := &harness{m: m, clock: clock, launcher: launcher}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// runCmd executes cmd and returns the messages it produced. Commands that
// block, such as tea.Tick, are abandoned.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// send dispatches msg and every message its commands produce.
func (h *harness) send(msg tea.Msg) {
	_, cmd := mainControllerDispatch(h.m, msg)
	for _, next := range runCmd(cmd) {
		if _, quit := next.(tea.QuitMsg); quit {
			continue
		}
		h.send(next)
	}
}

func (h *harness) key(s string) {
	switch s {
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		h.send(tea.KeyMsg{Type: tea.KeyTab})
	case "right":
		h.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		h.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "ctrl+s":
		h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	case "ctrl+c":
		h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

// advance moves the clock frame by frame, dispatching due messages.
func (h *harness) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tabs.DefaultFrameInterval {
		for _, msg := range h.clock.Advance(tabs.DefaultFrameInterval) {
			h.send(msg)
		}
	}
}

func (h *harness) settle() {
	h.advance(config.DefaultTransitionDuration + 100*time.Millisecond)
}

func TestWindowSize_LeavesInitializing(t *testing.T) {
	h := newHarness(t, true)
	assert.Equal(t, model.ModeMain, h.m.CurrentAppMode)
	assert.Equal(t, 120, h.m.Scene.Camera().Width)

	h.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, h.m.Scene.Camera().Width)
	assert.True(t, h.m.IsMobile())
}

func TestJumpKey_SwitchesAndSettles(t *testing.T) {
	h := newHarness(t, false)

	h.key("2")
	require.True(t, h.m.Tabs.IsAnimating())
	assert.Equal(t, tabs.About, h.m.Tabs.Current())
	assert.Equal(t, tabs.Home, h.m.Tabs.Settled())

	h.settle()
	assert.False(t, h.m.Tabs.IsAnimating())
	assert.Equal(t, tabs.About, h.m.Tabs.Settled())
	assert.Equal(t, "#about", h.m.History.Hash())
	assert.True(t, h.m.Counters.Started(), "about pane starts its counters")
}

func TestKeysDuringTransitionAreDropped(t *testing.T) {
	h := newHarness(t, false)
	h.key("2")
	h.advance(200 * time.Millisecond)
	h.key("3")
	h.key("right")

	assert.Equal(t, tabs.About, h.m.Tabs.Current())
	h.settle()
	assert.Equal(t, tabs.About, h.m.Tabs.Current())
}

func TestNeighbourKeysWrap(t *testing.T) {
	h := newHarness(t, false)
	h.key("left")
	h.settle()
	assert.Equal(t, tabs.Contact, h.m.Tabs.Current())

	h.key("right")
	h.settle()
	assert.Equal(t, tabs.Home, h.m.Tabs.Current())
}

func TestHistoryBackAndForward(t *testing.T) {
	h := newHarness(t, false)
	h.key("2")
	h.settle()
	h.key("4")
	h.settle()
	require.Equal(t, tabs.Projects, h.m.Tabs.Current())

	h.key("[")
	h.settle()
	assert.Equal(t, tabs.About, h.m.Tabs.Current())

	h.key("]")
	h.settle()
	assert.Equal(t, tabs.Projects, h.m.Tabs.Current())
	assert.Equal(t, 3, h.m.History.Len())
}

func TestSkillsRevealOnSettle(t *testing.T) {
	h := newHarness(t, false)
	h.key("5")
	h.settle()
	assert.True(t, h.m.SkillBars.Revealed())

	h.advance(widgets.SkillRevealDelay + widgets.SkillFillTime + 100*time.Millisecond)
	assert.InDelta(t, 0.95, h.m.SkillBars.Percent(0), 0.001)
}

func TestItemKeysPageProjectsAndSlideServices(t *testing.T) {
	h := newHarness(t, false)
	h.key("4")
	h.settle()
	h.key(".")
	assert.Equal(t, 1, h.m.Pager.Page())
	h.key(",")
	assert.Equal(t, 0, h.m.Pager.Page())

	h.key("6")
	h.settle()
	h.key(".")
	assert.Equal(t, 1, h.m.Carousel.Slide())
	h.key(".")
	assert.Equal(t, 0, h.m.Carousel.Slide(), "carousel wraps")
}

func TestScrollKeysClamp(t *testing.T) {
	h := newHarness(t, false)
	h.m.PaneContentHeight, h.m.PaneViewHeight = 20, 5
	h.key("j")
	h.key("j")
	assert.Equal(t, 2, h.m.Scroll)
	h.key("k")
	h.key("k")
	h.key("k")
	assert.Equal(t, 0, h.m.Scroll)
}

func TestContactForm_ValidationToast(t *testing.T) {
	h := newHarness(t, false)
	h.key("7")
	h.settle()

	h.key("enter")
	require.True(t, h.m.ContactEditing)
	h.key("ctrl+s")

	toasts := h.m.Notifier.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, widgets.ToastError, toasts[0].Kind)
	assert.Equal(t, contact.ErrMissingFields.Error(), toasts[0].Message)
	assert.Empty(t, h.launcher.links)
}

func TestContactForm_SubmitOpensMailClient(t *testing.T) {
	h := newHarness(t, false)
	h.key("7")
	h.settle()

	h.key("enter")
	h.key("Ada")
	h.key("tab")
	h.key("ada@example.com")
	h.key("enter")
	h.key("Hello")
	h.key("tab")
	h.key("Nice site")
	assert.Equal(t, contact.FieldMessage, h.m.ContactFocus)

	h.key("ctrl+s")

	require.Len(t, h.launcher.links, 1)
	assert.True(t, strings.HasPrefix(h.launcher.links[0], "mailto:hello@example.dev?subject=Hello&body="))
	assert.False(t, h.m.ContactSending)
	assert.False(t, h.m.ContactEditing)
	assert.Equal(t, contact.Form{}, h.m.ContactForm(), "form is reset")

	toasts := h.m.Notifier.Toasts()
	require.NotEmpty(t, toasts)
	assert.Equal(t, contact.SentMessage, toasts[len(toasts)-1].Message)
}

func TestContactForm_LaunchFailureFallsBackToClipboard(t *testing.T) {
	h := newHarness(t, false)
	h.launcher.err = errors.New("no xdg-open")
	h.key("7")
	h.settle()

	h.m.ContactInputs[contact.FieldName].SetValue("Ada")
	h.m.ContactInputs[contact.FieldEmail].SetValue("ada@example.com")
	h.m.ContactInputs[contact.FieldSubject].SetValue("Hi")
	h.m.ContactBody.SetValue("Hello")
	h.key("ctrl+s")

	toasts := h.m.Notifier.Toasts()
	require.NotEmpty(t, toasts)
	last := toasts[len(toasts)-1]
	assert.Equal(t, widgets.ToastInfo, last.Kind)
	assert.Equal(t, contact.CopiedMessage, last.Message)
}

func TestContactEditing_EscAndLeavingPane(t *testing.T) {
	h := newHarness(t, false)
	h.key("7")
	h.settle()
	h.key("i")
	require.True(t, h.m.ContactEditing)

	h.key("q")
	assert.NotEqual(t, model.ModeQuitting, h.m.CurrentAppMode, "q is typed into the field")
	assert.Equal(t, "q", h.m.ContactInputs[contact.FieldName].Value())

	h.key("esc")
	assert.False(t, h.m.ContactEditing)

	h.m.FocusContactField(contact.FieldSubject)
	handleZoneClick(h.m, tabs.ZoneID(tabs.Desktop, tabs.Home))
	h.settle()
	assert.False(t, h.m.ContactEditing)
}

func TestOverlays(t *testing.T) {
	h := newHarness(t, false)

	h.key("?")
	assert.Equal(t, model.ModeHelpOverlay, h.m.CurrentAppMode)
	h.key("2")
	assert.Equal(t, tabs.Home, h.m.Tabs.Current(), "help overlay swallows navigation")
	h.key("esc")
	assert.Equal(t, model.ModeMain, h.m.CurrentAppMode)

	h.key("L")
	assert.Equal(t, model.ModeLogOverlay, h.m.CurrentAppMode)
	h.key("L")
	assert.Equal(t, model.ModeMain, h.m.CurrentAppMode)
}

func TestCopyLogs(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = orig }()

	h := newHarness(t, false)
	model.AddRawLineToActivityLog(h.m, "one")
	model.AddRawLineToActivityLog(h.m, "two")
	h.key("y")

	assert.Equal(t, "one\ntwo", copied)
	assert.Equal(t, "2 log lines copied to clipboard", h.m.StatusBarMessage)
	assert.Equal(t, model.StatusBarSuccess, h.m.StatusBarMessageType)
}

func TestCopyLogs_Failure(t *testing.T) {
	orig := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWriteAll = orig }()

	h := newHarness(t, false)
	h.key("y")
	assert.Equal(t, "Copy logs failed", h.m.StatusBarMessage)
	assert.Equal(t, model.StatusBarError, h.m.StatusBarMessageType)
}

func TestNewLogEntryAppendsToActivityLog(t *testing.T) {
	h := newHarness(t, false)
	h.send(model.NewLogEntryMsg{Entry: logging.LogEntry{Timestamp: epoch, Level: logging.LevelInfo, Subsystem: "Tabs", Message: "settled"}})
	require.Len(t, h.m.ActivityLog, 1)
	assert.Contains(t, h.m.ActivityLog[0], "Tabs: settled")
}

func TestQuit(t *testing.T) {
	h := newHarness(t, false)
	_, cmd := mainControllerDispatch(h.m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, model.ModeQuitting, h.m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBackgroundFrames(t *testing.T) {
	h := newHarness(t, true)
	h.send(model.BackgroundFrameMsg{})
	assert.Greater(t, h.m.Scene.Elapsed(), time.Duration(0))
	assert.Equal(t, 1, h.clock.Pending(), "next frame scheduled")

	h.key("b")
	assert.False(t, h.m.ShowBackground)
	before := h.m.Scene.Elapsed()
	h.advance(model.BackgroundFrameInterval)
	assert.Equal(t, before, h.m.Scene.Elapsed())
	assert.Equal(t, 0, h.clock.Pending(), "loop stops while hidden")

	h.key("b")
	assert.True(t, h.m.ShowBackground)
	assert.Equal(t, 1, h.clock.Pending())
}

func TestZoneClicks(t *testing.T) {
	h := newHarness(t, false)

	handleZoneClick(h.m, tabs.ZoneID(tabs.Desktop, tabs.Projects))
	assert.Equal(t, tabs.Projects, h.m.Tabs.Current())
	h.settle()

	handleZoneClick(h.m, view.PageZoneID(1))
	assert.Equal(t, 1, h.m.Pager.Page())
	handleZoneClick(h.m, view.PageZoneID(9))
	assert.Equal(t, 1, h.m.Pager.Page(), "out of range page is ignored")

	handleZoneClick(h.m, view.SlideZoneID(1))
	assert.Equal(t, 1, h.m.Carousel.Slide())
	handleZoneClick(h.m, view.CarouselNextZoneID)
	assert.Equal(t, 0, h.m.Carousel.Slide())
	handleZoneClick(h.m, view.CarouselPrevZoneID)
	assert.Equal(t, 1, h.m.Carousel.Slide())

	handleZoneClick(h.m, view.FieldZoneID(int(contact.FieldEmail)))
	assert.True(t, h.m.ContactEditing)
	assert.Equal(t, contact.FieldEmail, h.m.ContactFocus)
}

func TestMobileMenuClosesOnSettle(t *testing.T) {
	h := newHarness(t, false)
	h.send(tea.WindowSizeMsg{Width: 60, Height: 30})

	handleZoneClick(h.m, view.MenuZoneID)
	require.True(t, h.m.Tabs.MobileMenuOpen())

	handleZoneClick(h.m, tabs.ZoneID(tabs.Mobile, tabs.CV))
	h.settle()
	assert.Equal(t, tabs.CV, h.m.Tabs.Current())
	assert.False(t, h.m.Tabs.MobileMenuOpen())
}

func TestHoverTracksZones(t *testing.T) {
	h := newHarness(t, true)

	handleZoneHover(h.m, background.CubeZoneID(4))
	assert.Equal(t, 4, h.m.Scene.Hovered())

	handleZoneHover(h.m, view.TechZoneID(0))
	assert.Equal(t, view.TechZoneID(0), h.m.Hover)
	assert.Equal(t, -1, h.m.Scene.Hovered())
}

func TestAppModelView(t *testing.T) {
	h := newHarness(t, false)
	app := NewAppModel(h.m)
	out := app.View()
	assert.Contains(t, out, "Sam Rivera")

	next, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, next.(AppModel).model.Width)
}

func TestNewProgram(t *testing.T) {
	p, err := NewProgram(model.TUIConfig{Config: config.GetDefaultConfig()})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
