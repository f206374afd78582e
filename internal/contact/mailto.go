package contact

import (
	"fmt"
	"net/url"
	"strings"
)

// Body formats the message body sent to the owner.
func (f Form) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", f.Name, f.Email, f.Message)
}

// MailtoLink builds the mailto URL for recipient.
func MailtoLink(recipient string, f Form) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", recipient, encodeComponent(f.Subject), encodeComponent(f.Body()))
}

// encodeComponent percent-encodes s, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
