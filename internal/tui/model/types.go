package model

import (
	"time"

	"folio/internal/background"
	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/tabs"
	"folio/internal/widgets"
	"folio/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// Constants for UI
const (
	MaxActivityLogLines     = 1000
	BackgroundFrameInterval = 50 * time.Millisecond
	StatusMessageLifetime   = 3 * time.Second
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	JumpTo     key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Back       key.Binding
	Forward    key.Binding
	Menu       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	Edit       key.Binding
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Esc        key.Binding
	Help       key.Binding
	ToggleLog  key.Binding
	CopyLogs   key.Binding
	ToggleBg   key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.JumpTo, k.PrevTab, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.JumpTo, k.PrevTab, k.NextTab, k.Back, k.Forward, k.Menu},
		{k.ScrollUp, k.ScrollDown, k.PrevItem, k.NextItem},
		{k.Edit, k.NextField, k.PrevField, k.Submit, k.Esc},
		{k.Help, k.ToggleLog, k.CopyLogs, k.ToggleBg, k.Quit},
	}
}

// TUIConfig carries everything the program needs at start-up.
type TUIConfig struct {
	Config      config.FolioConfig
	DebugMode   bool
	InitialHash string
	// Clock defaults to the wall clock; tests pass a tabs.ManualClock.
	Clock tabs.Clock
	// Seed fixes the background scene.
	Seed       uint64
	LogChannel <-chan logging.LogEntry
	Sender     *contact.Sender
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp         bool
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	Config config.FolioConfig
	Clock  tabs.Clock

	// Navigation
	Tabs    *tabs.Controller
	History *tabs.History

	// Pane widgets
	Pager      *widgets.Pager
	Carousel   *widgets.Carousel
	Counters   *widgets.CounterSet
	Typewriter *widgets.Typewriter
	SkillBars  *widgets.SkillBars
	Notifier   *widgets.Notifier

	// Decorative header
	Scene          *background.Scene
	ShowBackground bool
	lastFrame      time.Time

	// Pane scrolling; view records the content height for clamping
	Scroll            int
	PaneContentHeight int
	PaneViewHeight    int

	// Mouse
	Hover string // zone under the pointer

	// Contact form
	ContactInputs  []textinput.Model // name, email, subject
	ContactBody    textarea.Model
	ContactFocus   contact.Field
	ContactEditing bool
	ContactSending bool
	Sender         *contact.Sender

	// Markdown rendering cache
	Markdown      *glamour.TermRenderer
	MarkdownWidth int

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// IsMobile reports whether the layout should use the hamburger menu.
func (m *Model) IsMobile() bool {
	return m.Width > 0 && m.Width < m.Config.UI.MobileBreakpoint
}

// Platform is the navigation platform for the current width.
func (m *Model) Platform() tabs.Platform {
	if m.IsMobile() {
		return tabs.Mobile
	}
	return tabs.Desktop
}

// MaxScroll is the furthest the settled pane can scroll.
func (m *Model) MaxScroll() int {
	if n := m.PaneContentHeight - m.PaneViewHeight; n > 0 {
		return n
	}
	return 0
}

// ScrollBy moves the pane scroll, clamped to the content.
func (m *Model) ScrollBy(delta int) {
	m.Scroll += delta
	if m.Scroll > m.MaxScroll() {
		m.Scroll = m.MaxScroll()
	}
	if m.Scroll < 0 {
		m.Scroll = 0
	}
}

// FrameDelta returns the time since the previous background frame.
func (m *Model) FrameDelta(now time.Time) time.Duration {
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return BackgroundFrameInterval
	}
	d := now.Sub(m.lastFrame)
	m.lastFrame = now
	return d
}

// ResetFrameDelta makes the next FrameDelta a single interval again.
func (m *Model) ResetFrameDelta() { m.lastFrame = time.Time{} }

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
