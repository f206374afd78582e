package controller

import (
	"fmt"
	"strings"

	"folio/internal/contact"
	"folio/internal/tui/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// sendContactCmd opens the mail client off the update loop.
func sendContactCmd(sender *contact.Sender, form contact.Form) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sender.Send(form)
		return model.ContactSentMsg{Outcome: outcome, Err: err}
	}
}

// copyLogsCmd writes the activity log to the system clipboard.
func copyLogsCmd(lines []string) tea.Cmd {
	text := strings.Join(lines, "\n")
	n := len(lines)
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			return model.LogsCopiedMsg{Err: fmt.Errorf("copy activity log: %w", err)}
		}
		return model.LogsCopiedMsg{Lines: n}
	}
}

func handleLogsCopiedMsg(m *model.Model, msg model.LogsCopiedMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "failed to copy logs")
		return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, model.StatusMessageLifetime)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("%d log lines copied to clipboard", msg.Lines), model.StatusBarSuccess, model.StatusMessageLifetime)
}
