// Package tui provides the terminal user interface for folio.
//
// The TUI follows a Model-View-Controller split:
//
//   - Model (internal/tui/model/): application state, key bindings and the
//     widgets and tab controller the state is built from
//   - View (internal/tui/view/): pure rendering of the header, the pane area
//     (including the card-flip transition), toasts, the status bar and overlays
//   - Controller (internal/tui/controller/): message dispatch, keyboard and
//     mouse handling and the Bubble Tea program lifecycle
//
// # Message Flow
//
//  1. Timers (transition frames, typewriter, counters, carousel, background)
//     are tea.Cmds scheduled through a tabs.Clock
//  2. The controller routes each message to the widget or controller that
//     owns it
//  3. The view renders the updated state; clickable regions are marked with
//     bubblezone and resolved back to actions on mouse events
//
// # Keyboard Navigation
//
//   - 1-7: jump to a pane
//   - Left/Right, h/l, Tab: previous and next pane
//   - [ and ]: back and forward through visited fragments
//   - , and .: page projects or step the services carousel
//   - Enter: edit the contact form; Ctrl+S sends it
//   - ?: help overlay, L: activity log, b: toggle the background
//   - q/Ctrl+C: quit
//
// # Usage Example
//
//	p, err := controller.NewProgram(model.TUIConfig{
//	    Config:      cfg,
//	    InitialHash: "#cv",
//	    LogChannel:  logChannel,
//	})
//	if err != nil {
//	    return err
//	}
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
