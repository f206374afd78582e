package widgets

import (
	"time"

	"folio/internal/tabs"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	ToastLifetime = 3 * time.Second
	WelcomeDelay  = time.Second
	WelcomeText   = "Welcome to my terminal portfolio!"
)

// ToastKind selects the toast icon and colour.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

func (k ToastKind) String() string {
	switch k {
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	default:
		return "info"
	}
}

// Icon is the glyph shown before the message.
func (k ToastKind) Icon() string {
	switch k {
	case ToastSuccess:
		return "✔"
	case ToastError:
		return "✖"
	default:
		return "ℹ"
	}
}

// Toast is one notification.
type Toast struct {
	ID      int
	Kind    ToastKind
	Message string
}

type (
	// ToastExpiredMsg removes the toast with ID.
	ToastExpiredMsg struct{ ID int }
	// ShowToastMsg asks the notifier to display a toast.
	ShowToastMsg struct {
		Kind    ToastKind
		Message string
	}
)

// Notifier stacks toasts, newest last, each living ToastLifetime.
type Notifier struct {
	clock  tabs.Clock
	toasts []Toast
	nextID int
}

func NewNotifier(clock tabs.Clock) *Notifier {
	return &Notifier{clock: clock}
}

// Show adds a toast and schedules its removal.
func (n *Notifier) Show(kind ToastKind, message string) tea.Cmd {
	n.nextID++
	t := Toast{ID: n.nextID, Kind: kind, Message: message}
	n.toasts = append(n.toasts, t)
	return n.clock.After(ToastLifetime, ToastExpiredMsg{ID: t.ID})
}

// Welcome schedules the start-up greeting.
func (n *Notifier) Welcome() tea.Cmd {
	return n.clock.After(WelcomeDelay, ShowToastMsg{Kind: ToastSuccess, Message: WelcomeText})
}

// Toasts returns the visible toasts.
func (n *Notifier) Toasts() []Toast {
	out := make([]Toast, len(n.toasts))
	copy(out, n.toasts)
	return out
}

// Update handles show and expiry messages.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return n.Show(msg.Kind, msg.Message)
	case ToastExpiredMsg:
		for i, t := range n.toasts {
			if t.ID == msg.ID {
				n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
				break
			}
		}
	}
	return nil
}
