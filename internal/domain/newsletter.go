package domain

import (
	"context"
	"time"
)

// Subscriber is a newsletter signup.
// swagger:model Subscriber
type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriberRepository defines the interface for newsletter subscriber storage.
// Subscribe reports whether a new record was created; re-subscribing an
// existing address is not an error.
type SubscriberRepository interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, bool, error)
}

// Mailer sends an email with html and/or text bodies.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template with data into
// subject, html body, and text body.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// NewsletterService defines newsletter signup.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, bool, error)
}
