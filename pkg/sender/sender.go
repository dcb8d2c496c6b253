package sender

import (
	"context"
	"fmt"
)

// Email is a fully-prepared message ready for delivery.
type Email struct {
	Tags    map[string]string // Provider tags, e.g. template key
	Subject string
	HTML    string
	Text    string // Plain text alternative
	From    string // Override the provider default sender
	ReplyTo string
	To      []string // At least one required
}

// Validate reports whether the email carries the minimum a provider needs.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}

// Sender is the delivery boundary email providers implement.
type Sender interface {
	// Send delivers an email. The Email must have To, Subject, and HTML
	// already set.
	Send(ctx context.Context, email *Email) error
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
