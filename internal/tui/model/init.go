package model

import (
	"folio/internal/background"
	"folio/internal/contact"
	"folio/internal/tabs"
	"folio/internal/tui/design"
	"folio/internal/widgets"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		JumpTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "jump to pane"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next pane"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle menu"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys(",", "pgup"),
			key.WithHelp(",", "previous page/slide"),
		),
		NextItem: key.NewBinding(
			key.WithKeys(".", "pgdown"),
			key.WithHelp(".", "next page/slide"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter", "fill in the form"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send message"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave form/close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		ToggleBg: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle background"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitialModel constructs the initial model from the loaded configuration.
func InitialModel(cfg TUIConfig) *Model {
	clock := cfg.Clock
	if clock == nil {
		clock = tabs.TeaClock{}
	}
	ui := cfg.Config.UI
	content := cfg.Config.Content

	history := tabs.NewHistory(cfg.InitialHash)
	controller := tabs.New(tabs.Options{
		Duration: ui.TransitionDuration,
		Clock:    clock,
		Location: history,
	})

	var stats []string
	for _, s := range content.Stats {
		stats = append(stats, s.Value)
	}
	var bars []widgets.SkillBar
	for _, g := range content.Skills {
		for _, s := range g.Skills {
			bars = append(bars, widgets.SkillBar{Name: s.Name, Level: s.Level})
		}
	}

	sender := cfg.Sender
	if sender == nil {
		sender = contact.NewSender(cfg.Config.Owner.Email)
	}

	design.Initialize(ui.IsDark())

	m := &Model{
		CurrentAppMode: ModeInitializing,
		DebugMode:      cfg.DebugMode,
		Config:         cfg.Config,
		Clock:          clock,
		Tabs:           controller,
		History:        history,
		Pager:          widgets.NewPager(ui.ProjectsPerPage, len(content.Projects)),
		Carousel:       widgets.NewCarousel(clock, len(content.Services), ui.ServicesPerSlide, ui.CarouselInterval),
		Counters:       widgets.NewCounterSet(clock, stats),
		Typewriter:     widgets.NewTypewriter(clock, cfg.Config.Owner.Title),
		SkillBars:      widgets.NewSkillBars(clock, bars),
		Notifier:       widgets.NewNotifier(clock),
		Scene:          background.NewScene(cfg.Seed, 0, design.HeaderBandHeight),
		ShowBackground: !ui.DisableBackground,
		ContactInputs:  newContactInputs(),
		ContactBody:    newContactBody(),
		ContactFocus:   contact.FieldName,
		Sender:         sender,
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     cfg.LogChannel,
	}
	return m
}

func newContactInputs() []textinput.Model {
	placeholders := []string{"Your name", "you@example.com", "What is it about?"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	return inputs
}

func newContactBody() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Your message"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 2000
	ta.SetWidth(40)
	ta.SetHeight(5)
	return ta
}

// ContactForm collects the current form values.
func (m *Model) ContactForm() contact.Form {
	var f contact.Form
	for i, in := range m.ContactInputs {
		f.Set(contact.Field(i), in.Value())
	}
	f.Set(contact.FieldMessage, m.ContactBody.Value())
	return f
}

// ResetContactForm clears every field and leaves edit mode.
func (m *Model) ResetContactForm() {
	for i := range m.ContactInputs {
		m.ContactInputs[i].Reset()
	}
	m.ContactBody.Reset()
	m.BlurContactForm()
	m.ContactFocus = contact.FieldName
}

// FocusContactField moves keyboard focus to field and enters edit mode.
func (m *Model) FocusContactField(field contact.Field) tea.Cmd {
	m.BlurContactForm()
	m.ContactEditing = true
	m.ContactFocus = field
	if field == contact.FieldMessage {
		return m.ContactBody.Focus()
	}
	return m.ContactInputs[field].Focus()
}

// BlurContactForm drops focus from every field.
func (m *Model) BlurContactForm() {
	for i := range m.ContactInputs {
		m.ContactInputs[i].Blur()
	}
	m.ContactBody.Blur()
	m.ContactEditing = false
}

// StartBackground schedules the next header frame.
func (m *Model) StartBackground() tea.Cmd {
	if !m.ShowBackground {
		return nil
	}
	return m.Clock.After(BackgroundFrameInterval, BackgroundFrameMsg{})
}

// Init implements tea.Model and starts the time-driven widgets.
func (m *Model) Init() tea.Cmd {
	m.CurrentAppMode = ModeMain
	return tea.Batch(
		m.Tabs.SetInitialTab(),
		m.Typewriter.Start(),
		m.Notifier.Welcome(),
		m.Carousel.Start(),
		m.StartBackground(),
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
