package domain

import "context"

// Mailer sends an email with optional html and text bodies.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, html, text string, err error)
}

// TicketConfirmationEmailData is the data for the ticket confirmation email
// sent after a successful registration.
type TicketConfirmationEmailData struct {
	Email     string
	EventName string
	TicketID  uint64
	Fee       int64
	TicketURI string
}

// EmailService defines outbound email operations.
type EmailService interface {
	SendTicketConfirmation(ctx context.Context, data *TicketConfirmationEmailData) error
}
