// Package widgets holds the small animated pieces that live inside panes:
// project pagination, the services carousel, stat counters, the typewriter
// title, skill bars, section scroll spy and toast notifications.
//
// Timed widgets schedule through a tabs.Clock and tag their messages with a
// generation number, so restarting a widget makes older ticks inert.
package widgets
