package model

import (
	"folio/internal/contact"
	"folio/pkg/logging"
)

type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// BackgroundFrameMsg advances the header animation.
type BackgroundFrameMsg struct{}

// ContactSentMsg reports the result of submitting the contact form.
type ContactSentMsg struct {
	Outcome contact.Outcome
	Err     error
}

// LogsCopiedMsg reports the result of copying the activity log.
type LogsCopiedMsg struct {
	Lines int
	Err   error
}
