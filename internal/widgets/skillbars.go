package widgets

import (
	"time"

	"folio/internal/tabs"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	SkillRevealDelay = 100 * time.Millisecond
	SkillFillTime    = 1500 * time.Millisecond
)

type (
	// SkillRevealMsg starts the fill after the reveal delay.
	SkillRevealMsg struct{ Gen int }
	// SkillFrameMsg advances the fill animation.
	SkillFrameMsg struct{ Gen int }
)

// SkillBar is one named bar.
type SkillBar struct {
	Name  string
	Level int // percent
}

// SkillBars fills every bar from zero to its level the first time the pane
// is shown. Later visits render the bars full.
type SkillBars struct {
	clock    tabs.Clock
	bars     []SkillBar
	model    progress.Model
	gen      int
	revealed bool
	filling  bool
	started  time.Time
	fraction float64
}

// NewSkillBars renders bars with the default progress gradient.
func NewSkillBars(clock tabs.Clock, bars []SkillBar) *SkillBars {
	return &SkillBars{
		clock: clock,
		bars:  bars,
		model: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Bars returns the configured bars.
func (s *SkillBars) Bars() []SkillBar { return s.bars }

// Revealed reports whether the reveal has been triggered.
func (s *SkillBars) Revealed() bool { return s.revealed }

// Reveal schedules the fill. Only the first call does anything.
func (s *SkillBars) Reveal() tea.Cmd {
	if s.revealed {
		return nil
	}
	s.revealed = true
	s.gen++
	return s.clock.After(SkillRevealDelay, SkillRevealMsg{Gen: s.gen})
}

// Percent is the fill of bar i in [0,1].
func (s *SkillBars) Percent(i int) float64 {
	if i < 0 || i >= len(s.bars) || !s.revealed {
		return 0
	}
	return clampPercent(s.bars[i].Level) * s.fraction
}

// Update drives the fill animation.
func (s *SkillBars) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SkillRevealMsg:
		if msg.Gen != s.gen {
			return nil
		}
		s.filling = true
		s.started = s.clock.Now()
		return s.clock.Frame(SkillFrameMsg{Gen: s.gen})
	case SkillFrameMsg:
		if msg.Gen != s.gen || !s.filling {
			return nil
		}
		elapsed := s.clock.Now().Sub(s.started)
		s.fraction = tabs.StandardEasing.At(float64(elapsed) / float64(SkillFillTime))
		if elapsed >= SkillFillTime {
			s.fraction = 1
			s.filling = false
			return nil
		}
		return s.clock.Frame(SkillFrameMsg{Gen: s.gen})
	}
	return nil
}

// ViewBar renders bar i at the given width.
func (s *SkillBars) ViewBar(i, width int) string {
	m := s.model
	m.Width = width
	return m.ViewAs(s.Percent(i))
}

func clampPercent(level int) float64 {
	switch {
	case level <= 0:
		return 0
	case level >= 100:
		return 1
	}
	return float64(level) / 100
}
