package model

import (
	"folio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil when
// there is no channel and stops once the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
