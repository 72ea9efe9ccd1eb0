package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ParticipationEmailData holds data for signup and withdrawal confirmations.
type ParticipationEmailData struct {
	Email        string
	ActivityName string
	Schedule     string
}

// EmailService sends participation confirmations.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *ParticipationEmailData) error
	SendUnregisterConfirmation(ctx context.Context, data *ParticipationEmailData) error
}
