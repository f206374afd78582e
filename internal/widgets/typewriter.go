package widgets

import (
	"time"

	"folio/internal/tabs"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	TypewriterDelay = time.Second
	TypewriterSpeed = 50 * time.Millisecond
)

// TypewriterTickMsg reveals the next character.
type TypewriterTickMsg struct{ Gen int }

// Typewriter reveals a title one rune at a time.
type Typewriter struct {
	clock  tabs.Clock
	text   []rune
	shown  int
	gen    int
	typing bool
}

// NewTypewriter shows the full text until Start is called.
func NewTypewriter(clock tabs.Clock, text string) *Typewriter {
	r := []rune(text)
	return &Typewriter{clock: clock, text: r, shown: len(r)}
}

// Start clears the text and types it after TypewriterDelay.
func (t *Typewriter) Start() tea.Cmd {
	t.gen++
	t.shown = 0
	t.typing = true
	return t.clock.After(TypewriterDelay, TypewriterTickMsg{Gen: t.gen})
}

// Text is the revealed prefix.
func (t *Typewriter) Text() string { return string(t.text[:t.shown]) }

// Done reports whether the whole text is visible.
func (t *Typewriter) Done() bool { return t.shown >= len(t.text) }

// Typing reports whether a reveal is in progress.
func (t *Typewriter) Typing() bool { return t.typing && !t.Done() }

// Update reveals one rune per current tick.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.Gen != t.gen || t.Done() {
		return nil
	}
	t.shown++
	if t.Done() {
		t.typing = false
		return nil
	}
	return t.clock.After(TypewriterSpeed, TypewriterTickMsg{Gen: t.gen})
}
