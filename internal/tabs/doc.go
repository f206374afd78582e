// Package tabs implements the single-page tab controller: a fixed set of
// named panes, exactly one of which is active at rest, and a timed
// pseudo-3D transition between them.
//
// # State machine
//
// The controller is either Idle(current) or Transitioning(previous -> target):
//
//	Idle(X) --SwitchTab(Y != X)--> Transitioning(X -> Y) --[duration]--> Idle(Y)
//
// SwitchTab while Transitioning is dropped, not queued. Current reports the
// committed target as soon as SwitchTab returns; Settled reports the pane
// that is visually active.
//
// # Scheduling
//
// The controller never sleeps. SwitchTab returns a tea.Cmd produced by a
// Clock: first a frame message that starts the animation, then a finalize
// message after the transition duration. Both messages must be fed back to
// Update, which is what the Bubble Tea loop does. Tests use ManualClock to
// release scheduled messages without waiting on the wall clock.
//
// # Fragment
//
// On finalize the controller writes "#<pane>" to its Location. History is an
// in-memory Location with a back/forward stack; moving through it yields a
// PopStateMsg, which callers answer with SetInitialTab.
package tabs
