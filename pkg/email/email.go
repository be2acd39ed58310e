package email

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// ErrNotConfigured is returned by every dispatch when provider credentials are missing.
var ErrNotConfigured = errors.New("email service is not configured: missing mail account credentials")

// Sender hands a composed message to a mail provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	// IsConfigured reports whether credentials were supplied at start-up
	IsConfigured() bool
	// Name identifies the provider in logs
	Name() string
}

// Message is a fully composed email. The provider fills in the sending account.
type Message struct {
	FromName string
	To       []string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Validate checks the fields every provider needs.
func (m *Message) Validate() error {
	if len(m.To) == 0 {
		return errors.New("email must have at least one recipient")
	}
	if m.Subject == "" {
		return errors.New("email must have a subject")
	}
	if m.Text == "" && m.HTML == "" {
		return errors.New("email must have a body")
	}
	return nil
}

// sanitizeHeader collapses CR/LF so user text cannot add headers.
func sanitizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(s)), " ")
}

// formatAddress renders "Name <addr>" with RFC 2047 encoding where needed.
func formatAddress(name, address string) string {
	a := mail.Address{Name: sanitizeHeader(name), Address: sanitizeHeader(address)}
	return a.String()
}

// ReplyAddress returns a header-safe Reply-To for a submitter, or "" when the
// submitted value does not parse as a single address.
func ReplyAddress(name, address string) string {
	parsed, err := mail.ParseAddress(strings.TrimSpace(address))
	if err != nil {
		return ""
	}
	return formatAddress(name, parsed.Address)
}
