package tabs

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock schedules controller callbacks as Bubble Tea commands.
type Clock interface {
	Now() time.Time
	// Frame delivers msg on the next animation frame.
	Frame(msg tea.Msg) tea.Cmd
	// After delivers msg once d has elapsed.
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// DefaultFrameInterval is one frame at roughly 60fps.
const DefaultFrameInterval = 16 * time.Millisecond

// TeaClock is the wall-clock implementation backed by tea.Tick.
type TeaClock struct {
	FrameInterval time.Duration
}

func (TeaClock) Now() time.Time { return time.Now() }

func (c TeaClock) Frame(msg tea.Msg) tea.Cmd {
	interval := c.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return c.After(interval, msg)
}

func (TeaClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type scheduled struct {
	due   time.Time
	order int
	msg   tea.Msg
}

// ManualClock holds scheduled messages until Advance releases them. The
// commands it returns are nil; callers read messages from Advance instead.
type ManualClock struct {
	FrameInterval time.Duration

	now     time.Time
	pending []scheduled
	next    int
}

// NewManualClock starts the clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{FrameInterval: DefaultFrameInterval, now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Frame schedules msg one FrameInterval from now.
func (c *ManualClock) Frame(msg tea.Msg) tea.Cmd {
	return c.After(c.FrameInterval, msg)
}

func (c *ManualClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.pending = append(c.pending, scheduled{due: c.now.Add(d), order: c.next, msg: msg})
	c.next++
	return nil
}

// Pending is the number of messages not yet released.
func (c *ManualClock) Pending() int { return len(c.pending) }

// Advance moves time forward by d and returns every message now due, in
// due order and then scheduling order.
func (c *ManualClock) Advance(d time.Duration) []tea.Msg {
	c.now = c.now.Add(d)
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due.Equal(c.pending[j].due) {
			return c.pending[i].order < c.pending[j].order
		}
		return c.pending[i].due.Before(c.pending[j].due)
	})
	var due []tea.Msg
	keep := c.pending[:0]
	for _, s := range c.pending {
		if !s.due.After(c.now) {
			due = append(due, s.msg)
		} else {
			keep = append(keep, s)
		}
	}
	c.pending = keep
	return due
}
