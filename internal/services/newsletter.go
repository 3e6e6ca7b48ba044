package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"communitycenter/internal/domain"
)

var subscriberEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type newsletterService struct {
	subscriberRepo domain.SubscriberRepository
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	logger         *slog.Logger
	centerName     string
	contextTimeout time.Duration
}

// NewNewsletterService returns the NewsletterService. The welcome email goes
// through the configured mailer, which is a no-op unless SES is set up; a
// send failure never fails the signup.
func NewNewsletterService(subscriberRepo domain.SubscriberRepository, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger, centerName string, timeout time.Duration) domain.NewsletterService {
	return &newsletterService{
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		renderer:       renderer,
		logger:         logger,
		centerName:     centerName,
		contextTimeout: timeout,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !subscriberEmailRegexp.MatchString(email) {
		return nil, false, domain.NewValidationError("invalid email format")
	}

	sub, created, err := s.subscriberRepo.Subscribe(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("subscribe: %w", err)
	}
	if created {
		s.sendWelcome(ctx, email)
	}
	return sub, created, nil
}

func (s *newsletterService) sendWelcome(ctx context.Context, email string) {
	subject, html, text, err := s.renderer.Render("newsletter_welcome", map[string]string{"CenterName": s.centerName})
	if err != nil {
		s.logger.ErrorContext(ctx, "render welcome email failed", "err", err)
		return
	}
	if err := s.mailer.Send(email, subject, html, text); err != nil {
		s.logger.ErrorContext(ctx, "send welcome email failed", "to", email, "err", err)
	}
}
