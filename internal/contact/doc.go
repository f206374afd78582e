// Package contact turns the contact form into a mailto link and opens it in
// the visitor's mail client. Nothing is sent by folio itself.
package contact
