package contact

import (
	"fmt"

	"folio/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

const (
	SentMessage   = "Email client opened! Please send the message."
	CopiedMessage = "No mail client found. The message link was copied to your clipboard."
)

// Launcher opens a mailto link in the platform mail client.
type Launcher interface {
	Open(link string) error
}

// Clipboard receives the link when no mail client could be opened.
type Clipboard interface {
	WriteAll(text string) error
}

// BrowserLauncher hands the link to xdg-open, open or rundll32.
type BrowserLauncher struct{}

func (BrowserLauncher) Open(link string) error { return browser.OpenURL(link) }

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Outcome describes a successful submission.
type Outcome struct {
	Link   string
	Copied bool // link went to the clipboard instead of a mail client
}

// Message is the notification text for the outcome.
func (o Outcome) Message() string {
	if o.Copied {
		return CopiedMessage
	}
	return SentMessage
}

// Sender validates forms and delivers them as mailto links.
type Sender struct {
	Recipient string
	Launcher  Launcher
	Clipboard Clipboard
}

// NewSender uses the system mail client and clipboard.
func NewSender(recipient string) *Sender {
	return &Sender{Recipient: recipient, Launcher: BrowserLauncher{}, Clipboard: SystemClipboard{}}
}

// Send validates f and opens the mail client. Validation errors are returned
// unwrapped so callers can show them as-is.
func (s *Sender) Send(f Form) (Outcome, error) {
	if err := f.Validate(); err != nil {
		return Outcome{}, err
	}
	link := MailtoLink(s.Recipient, f)

	err := s.Launcher.Open(link)
	if err == nil {
		logging.Info("Contact", "Opened mail client for %s", s.Recipient)
		return Outcome{Link: link}, nil
	}
	logging.Warn("Contact", "Could not open mail client: %v", err)

	if s.Clipboard == nil {
		return Outcome{}, fmt.Errorf("failed to open mail client: %w", err)
	}
	if cerr := s.Clipboard.WriteAll(link); cerr != nil {
		return Outcome{}, fmt.Errorf("failed to open mail client (%v) and to copy link: %w", err, cerr)
	}
	return Outcome{Link: link, Copied: true}, nil
}
