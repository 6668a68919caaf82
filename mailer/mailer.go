package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Attachment is a binary file attached to an outbound message. Content is
// raw bytes; the dispatcher base64-encodes it for the wire.
type Attachment struct {
	Filename    string
	ContentType string
	Disposition string
	Content     []byte
}

// Message is an outbound email. Exactly one of PlainText or HTML should be
// set. To lists the customer-facing recipients; the dispatcher adds the
// studio's own address so the operator receives a copy of everything.
type Message struct {
	Subject     string
	To          []string
	PlainText   string
	HTML        string
	Attachments []Attachment
}

// Sender delivers outbound messages. Handlers depend on this interface so
// tests can record sends without touching the network.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError is returned when the provider rejects or fails a send.
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("email delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("email delivery failed: provider returned %d: %s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// sendClient is the slice of the SendGrid client the dispatcher uses.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Dispatcher sends mail through SendGrid. Synchronous, no retries: a failed
// send is reported immediately and the form's submitter decides whether to
// resubmit.
type Dispatcher struct {
	client sendClient
	from   string
}

func NewDispatcher(apiKey, senderEmail string) *Dispatcher {
	return &Dispatcher{
		client: sendgrid.NewSendClient(apiKey),
		from:   senderEmail,
	}
}

func (d *Dispatcher) Send(ctx context.Context, msg Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", d.from))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, rcpt := range d.recipients(msg.To) {
		p.AddTos(mail.NewEmail("", rcpt))
	}
	m.AddPersonalizations(p)

	if msg.HTML != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTML))
	} else {
		m.AddContent(mail.NewContent("text/plain", msg.PlainText))
	}

	for _, att := range msg.Attachments {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Content))
		a.SetType(att.ContentType)
		a.SetFilename(att.Filename)
		a.SetDisposition(att.Disposition)
		m.AddAttachment(a)
	}

	resp, err := d.client.SendWithContext(ctx, m)
	if err != nil {
		return &DeliveryError{Err: err}
	}
	if resp.StatusCode >= 400 {
		return &DeliveryError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}

// recipients prepends the operator copy and drops duplicates and blanks.
// SendGrid rejects a personalization listing the same address twice.
func (d *Dispatcher) recipients(to []string) []string {
	out := make([]string, 0, len(to)+1)
	seen := make(map[string]struct{}, len(to)+1)
	for _, rcpt := range append([]string{d.from}, to...) {
		rcpt = strings.TrimSpace(rcpt)
		if rcpt == "" {
			continue
		}
		key := strings.ToLower(rcpt)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rcpt)
	}
	return out
}
