package widgets

import (
	"math"
	"strconv"
	"strings"
	"time"

	"folio/internal/tabs"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	CounterSteps    = 100
	CounterInterval = 20 * time.Millisecond
)

// CounterTickMsg advances every counter in a set.
type CounterTickMsg struct{ Gen int }

// Counter counts a stat up from zero. Non-numeric stats never animate.
type Counter struct {
	raw     string
	target  int
	suffix  string
	current float64
	numeric bool
}

// ParseCounter reads a leading integer and keeps a "+" or "%" suffix.
func ParseCounter(raw string) Counter {
	c := Counter{raw: raw}
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return c
	}
	c.target = n
	c.numeric = true
	if strings.Contains(s, "+") {
		c.suffix += "+"
	}
	if strings.Contains(s, "%") {
		c.suffix += "%"
	}
	return c
}

// Target is the parsed number.
func (c *Counter) Target() int { return c.target }

// Done reports whether the counter has reached its target.
func (c *Counter) Done() bool { return !c.numeric || c.current >= float64(c.target) }

// Step advances by target/100 and reports whether more steps remain.
func (c *Counter) Step() bool {
	if c.Done() {
		return false
	}
	c.current += float64(c.target) / CounterSteps
	return !c.Done()
}

// Reset returns the counter to zero.
func (c *Counter) Reset() { c.current = 0 }

// Text renders the current value with its suffix.
func (c *Counter) Text() string {
	if !c.numeric {
		return c.raw
	}
	v := int(math.Ceil(c.current - 1e-9))
	if v > c.target {
		v = c.target
	}
	return strconv.Itoa(v) + c.suffix
}

// CounterSet animates a group of counters once, the first time it is shown.
type CounterSet struct {
	clock    tabs.Clock
	counters []Counter
	gen      int
	started  bool
}

// NewCounterSet parses every raw value.
func NewCounterSet(clock tabs.Clock, raws []string) *CounterSet {
	s := &CounterSet{clock: clock}
	for _, r := range raws {
		s.counters = append(s.counters, ParseCounter(r))
	}
	return s
}

// Started reports whether the animation has been triggered.
func (s *CounterSet) Started() bool { return s.started }

// Texts returns the rendered value of each counter.
func (s *CounterSet) Texts() []string {
	out := make([]string, len(s.counters))
	for i := range s.counters {
		if !s.started {
			out[i] = s.counters[i].raw
			continue
		}
		out[i] = s.counters[i].Text()
	}
	return out
}

// Start triggers the count-up. Later calls are no-ops.
func (s *CounterSet) Start() tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	s.gen++
	for i := range s.counters {
		s.counters[i].Reset()
	}
	return s.tick()
}

func (s *CounterSet) tick() tea.Cmd {
	return s.clock.After(CounterInterval, CounterTickMsg{Gen: s.gen})
}

// Update steps all counters on a current tick.
func (s *CounterSet) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(CounterTickMsg)
	if !ok || tick.Gen != s.gen {
		return nil
	}
	more := false
	for i := range s.counters {
		if s.counters[i].Step() {
			more = true
		}
	}
	if !more {
		return nil
	}
	return s.tick()
}
