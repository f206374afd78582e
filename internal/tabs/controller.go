package tabs

import (
	"time"

	"folio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "Tabs"

// DefaultDuration matches the 0.6s CSS transition of the pane handoff.
const DefaultDuration = 600 * time.Millisecond

// State is the controller's position in its two-state machine.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// FrameMsg starts the visual transition on the frame after SwitchTab.
type FrameMsg struct{ Seq int }

// TickMsg advances the running animation by one frame.
type TickMsg struct{ Seq int }

// FinalizeMsg ends the transition once the duration has elapsed.
type FinalizeMsg struct{ Seq int }

// SettledMsg is emitted after finalize so the surrounding program can react
// to a newly active pane.
type SettledMsg struct {
	Previous PaneID
	Current  PaneID
}

// Options configures a Controller. Zero values pick the defaults.
type Options struct {
	Duration time.Duration
	Clock    Clock
	Location Location
	// Panes lists the content containers that exist. Defaults to All().
	// A valid identifier missing here behaves like a missing DOM node.
	Panes []PaneID
	// Easing shapes the animation; defaults to StandardEasing.
	Easing *CubicBezier
}

// Controller owns the panes, the navigation controls and the transition
// state. It is not safe for concurrent use; drive it from one update loop.
type Controller struct {
	clock    Clock
	location Location
	duration time.Duration
	easing   CubicBezier

	order    []PaneID
	panes    map[PaneID]*Pane
	controls []NavigationControl

	state     State
	current   PaneID
	previous  PaneID
	direction Direction
	seq       int
	startedAt time.Time
	started   bool
	progress  float64

	menuOpen bool
}

// New builds a controller in Idle(home) with the home pane active.
func New(opts Options) *Controller {
	c := &Controller{
		clock:    opts.Clock,
		location: opts.Location,
		duration: opts.Duration,
		easing:   StandardEasing,
		panes:    make(map[PaneID]*Pane),
		current:  Home,
	}
	if c.clock == nil {
		c.clock = TeaClock{}
	}
	if c.location == nil {
		c.location = NewHistory("")
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	if opts.Easing != nil {
		c.easing = *opts.Easing
	}

	ids := opts.Panes
	if len(ids) == 0 {
		ids = All()
	}
	for _, id := range ids {
		if !id.Valid() {
			continue
		}
		if _, dup := c.panes[id]; dup {
			continue
		}
		p := &Pane{ID: id}
		p.hide()
		c.order = append(c.order, id)
		c.panes[id] = p
	}
	c.controls = DefaultControls(All())

	if p, ok := c.panes[Home]; ok {
		p.show()
	}
	c.markControls(Home)
	return c
}

// State reports Idle or Transitioning.
func (c *Controller) State() State { return c.state }

// IsAnimating is true while a transition is in progress.
func (c *Controller) IsAnimating() bool { return c.state == Transitioning }

// Current is the committed tab. During a transition this is already the
// target.
func (c *Controller) Current() PaneID { return c.current }

// Settled is the tab that is visually active: the outgoing pane while
// transitioning, Current otherwise.
func (c *Controller) Settled() PaneID {
	if c.state == Transitioning {
		return c.previous
	}
	return c.current
}

// Previous is the outgoing pane of the running transition, or "" when idle.
func (c *Controller) Previous() PaneID {
	if c.state == Transitioning {
		return c.previous
	}
	return ""
}

// Direction is the turn direction of the running or last transition.
func (c *Controller) Direction() Direction { return c.direction }

// Progress is the eased animation progress in [0,1]; 0 before the first
// frame and when idle.
func (c *Controller) Progress() float64 { return c.progress }

// Duration is the fixed transition length.
func (c *Controller) Duration() time.Duration { return c.duration }

// MobileMenuOpen reports the mobile navigation overlay state.
func (c *Controller) MobileMenuOpen() bool { return c.menuOpen }

// Location exposes the fragment store.
func (c *Controller) Location() Location { return c.location }

// Order lists the registered panes in navigation order.
func (c *Controller) Order() []PaneID {
	out := make([]PaneID, len(c.order))
	copy(out, c.order)
	return out
}

// Pane returns a copy of a pane's visual state.
func (c *Controller) Pane(id PaneID) (Pane, bool) {
	p, ok := c.panes[id]
	if !ok {
		return Pane{}, false
	}
	return *p, true
}

// VisiblePanes lists visible panes in paint order: outgoing before incoming.
func (c *Controller) VisiblePanes() []Pane {
	if c.state == Transitioning {
		var out []Pane
		if p, ok := c.panes[c.previous]; ok && p.Visible {
			out = append(out, *p)
		}
		if p, ok := c.panes[c.current]; ok && p.Visible {
			out = append(out, *p)
		}
		return out
	}
	var out []Pane
	for _, id := range c.order {
		if p := c.panes[id]; p.Visible {
			out = append(out, *p)
		}
	}
	return out
}

// Controls returns the navigation controls for one platform.
func (c *Controller) Controls(p Platform) []NavigationControl {
	var out []NavigationControl
	for _, ctl := range c.controls {
		if ctl.Platform == p {
			out = append(out, ctl)
		}
	}
	return out
}

// ActiveControls returns every control carrying the active marker.
func (c *Controller) ActiveControls() []NavigationControl {
	var out []NavigationControl
	for _, ctl := range c.controls {
		if ctl.Active {
			out = append(out, ctl)
		}
	}
	return out
}

// SwitchTab starts a transition to target. It is a no-op while a transition
// runs, for an unknown or empty target, and for the current tab.
func (c *Controller) SwitchTab(target PaneID, dir Direction) tea.Cmd {
	if c.state == Transitioning {
		logging.Debug(subsystem, "switch to %q dropped: transition %s -> %s in progress", target, c.previous, c.current)
		return nil
	}
	if target == "" || !target.Valid() {
		logging.Debug(subsystem, "switch to unknown pane %q ignored", target)
		return nil
	}
	if target == c.current {
		return nil
	}

	incoming, ok := c.panes[target]
	if !ok {
		logging.Warn(subsystem, "pane %q is not registered; switch aborted", target)
		c.state = Idle
		return nil
	}

	c.state = Transitioning
	c.previous = c.current
	c.current = target
	c.direction = dir
	c.seq++
	c.started = false
	c.progress = 0

	incoming.Visible = true
	incoming.Active = false
	incoming.Interactive = false
	incoming.Transform = Entering(dir)
	incoming.from = incoming.Transform
	incoming.to = Identity

	logging.Debug(subsystem, "transition %s -> %s (%s)", c.previous, c.current, dir)
	return c.clock.Frame(FrameMsg{Seq: c.seq})
}

// Neighbour switches to the pane delta steps away in navigation order,
// wrapping around, turning Forward for positive delta and Backward otherwise.
func (c *Controller) Neighbour(delta int) tea.Cmd {
	if len(c.order) == 0 || delta == 0 {
		return nil
	}
	idx := 0
	for i, id := range c.order {
		if id == c.current {
			idx = i
			break
		}
	}
	n := len(c.order)
	next := ((idx+delta)%n + n) % n
	dir := Forward
	if delta < 0 {
		dir = Backward
	}
	return c.SwitchTab(c.order[next], dir)
}

// Activate switches to target choosing the direction from navigation order.
// This is what a click on a navigation control does.
func (c *Controller) Activate(target PaneID) tea.Cmd {
	return c.SwitchTab(target, DirectionBetween(c.current, target))
}

// ToggleMobileMenu flips the mobile navigation overlay.
func (c *Controller) ToggleMobileMenu() {
	c.menuOpen = !c.menuOpen
}

// SetInitialTab reads the fragment and switches to the pane it names, or to
// Home when it names none.
func (c *Controller) SetInitialTab() tea.Cmd {
	hash := c.location.Hash()
	target, ok := ParsePaneID(hash)
	if !ok {
		if hash != "" {
			logging.Debug(subsystem, "fragment %q is not a pane; using %s", hash, Home)
		}
		target = Home
	}
	return c.SwitchTab(target, Forward)
}

// Update consumes the controller's own scheduled messages and history
// navigation. Other messages are ignored and yield nil.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return c.handleFrame(msg)
	case TickMsg:
		return c.handleTick(msg)
	case FinalizeMsg:
		return c.handleFinalize(msg)
	case PopStateMsg:
		return c.SetInitialTab()
	}
	return nil
}

func (c *Controller) live(seq int) bool {
	return c.state == Transitioning && seq == c.seq
}

func (c *Controller) handleFrame(msg FrameMsg) tea.Cmd {
	if !c.live(msg.Seq) || c.started {
		return nil
	}
	c.started = true
	c.startedAt = c.clock.Now()

	if out, ok := c.panes[c.previous]; ok {
		out.from = out.Transform
		out.to = Leaving(c.direction)
	}
	return tea.Batch(
		c.clock.After(c.duration, FinalizeMsg{Seq: c.seq}),
		c.clock.Frame(TickMsg{Seq: c.seq}),
	)
}

func (c *Controller) handleTick(msg TickMsg) tea.Cmd {
	if !c.live(msg.Seq) || !c.started {
		return nil
	}
	elapsed := c.clock.Now().Sub(c.startedAt)
	linear := float64(elapsed) / float64(c.duration)
	c.applyProgress(c.easing.At(linear))
	if linear >= 1 {
		return nil
	}
	return c.clock.Frame(TickMsg{Seq: c.seq})
}

func (c *Controller) applyProgress(p float64) {
	c.progress = p
	if out, ok := c.panes[c.previous]; ok {
		out.Transform = Lerp(out.from, out.to, p)
	}
	if in, ok := c.panes[c.current]; ok {
		in.Transform = Lerp(in.from, in.to, p)
	}
}

func (c *Controller) handleFinalize(msg FinalizeMsg) tea.Cmd {
	if !c.live(msg.Seq) {
		return nil
	}

	if out, ok := c.panes[c.previous]; ok {
		out.hide()
	}
	if in, ok := c.panes[c.current]; ok {
		in.show()
	}
	c.markControls(c.current)

	if c.menuOpen {
		c.ToggleMobileMenu()
	}

	c.location.SetHash(Fragment(c.current))

	prev := c.previous
	c.state = Idle
	c.previous = ""
	c.started = false
	c.progress = 0

	logging.Debug(subsystem, "settled on %s", c.current)
	settled := SettledMsg{Previous: prev, Current: c.current}
	return func() tea.Msg { return settled }
}

func (c *Controller) markControls(target PaneID) {
	for i := range c.controls {
		c.controls[i].Active = c.controls[i].Target == target
	}
}
