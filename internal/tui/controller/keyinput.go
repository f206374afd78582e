package controller

import (
	"folio/internal/contact"
	"folio/internal/tui/model"
	"folio/internal/widgets"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const contactSubsystem = "ContactForm"

// handleKeyMsgContact processes keys while a contact form field has focus.
func handleKeyMsgContact(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		m.BlurContactForm()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Submit):
		return submitContact(m)

	case key.Matches(keyMsg, m.Keys.NextField):
		return m, m.FocusContactField(cycleField(m.ContactFocus, 1))

	case key.Matches(keyMsg, m.Keys.PrevField):
		return m, m.FocusContactField(cycleField(m.ContactFocus, -1))

	case keyMsg.Type == tea.KeyEnter && m.ContactFocus != contact.FieldMessage:
		return m, m.FocusContactField(cycleField(m.ContactFocus, 1))
	}
	return m, updateFocusedField(m, keyMsg)
}

func cycleField(f contact.Field, delta int) contact.Field {
	n := len(contact.Fields)
	return contact.Fields[((int(f)+delta)%n+n)%n]
}

// updateFocusedField forwards msg to the input that has focus.
func updateFocusedField(m *model.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.ContactFocus == contact.FieldMessage {
		m.ContactBody, cmd = m.ContactBody.Update(msg)
		return cmd
	}
	m.ContactInputs[m.ContactFocus], cmd = m.ContactInputs[m.ContactFocus].Update(msg)
	return cmd
}

// submitContact validates the form and, when it is complete, hands it to
// the sender in the background. Validation errors become error toasts.
func submitContact(m *model.Model) (*model.Model, tea.Cmd) {
	if m.ContactSending {
		return m, nil
	}
	form := m.ContactForm()
	if err := form.Validate(); err != nil {
		LogDebug(m, contactSubsystem, "form rejected: %v", err)
		return m, m.Notifier.Show(widgets.ToastError, err.Error())
	}
	m.ContactSending = true
	m.BlurContactForm()
	return m, sendContactCmd(m.Sender, form)
}

func handleContactSentMsg(m *model.Model, msg model.ContactSentMsg) (*model.Model, tea.Cmd) {
	m.ContactSending = false
	if msg.Err != nil {
		LogError(contactSubsystem, msg.Err, "could not hand the message to a mail client")
		return m, tea.Batch(
			m.Notifier.Show(widgets.ToastError, "Could not open an email client."),
			m.SetStatusMessage("Message not sent", model.StatusBarError, model.StatusMessageLifetime),
		)
	}
	m.ResetContactForm()
	kind := widgets.ToastSuccess
	if msg.Outcome.Copied {
		kind = widgets.ToastInfo
	}
	LogInfo(contactSubsystem, "mailto link prepared (copied=%v)", msg.Outcome.Copied)
	return m, m.Notifier.Show(kind, msg.Outcome.Message())
}
