package contact

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingFields = errors.New("Please fill in all fields")
	ErrInvalidEmail  = errors.New("Please enter a valid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field identifies one input of the form, in tab order.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
)

// Fields lists every field in tab order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldSubject:
		return "Subject"
	case FieldMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// Form is what the visitor typed.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Get returns the value of f.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Set assigns the value of field.
func (f *Form) Set(field Field, v string) {
	switch field {
	case FieldName:
		f.Name = v
	case FieldEmail:
		f.Email = v
	case FieldSubject:
		f.Subject = v
	case FieldMessage:
		f.Message = v
	}
}

// ValidEmail reports whether s looks like an address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// Validate checks that every field is filled and the email is plausible.
// Whitespace-only values count as empty.
func (f Form) Validate() error {
	for _, field := range Fields {
		if strings.TrimSpace(f.Get(field)) == "" {
			return ErrMissingFields
		}
	}
	if !ValidEmail(strings.TrimSpace(f.Email)) {
		return ErrInvalidEmail
	}
	return nil
}
