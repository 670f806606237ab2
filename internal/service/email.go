package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"wedding-backend/internal/config"
	"wedding-backend/internal/domain"
	"wedding-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
	wedding  config.WeddingConfig
}

func NewEmailService(cfg config.EmailConfig, wedding config.WeddingConfig) EmailService {
	return &emailService{
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		fromName: cfg.FromName,
		wedding:  wedding,
	}
}

func (s *emailService) SendInvitation(ctx context.Context, g *domain.Guest, link string) error {
	subject := fmt.Sprintf("%s & %s - %s", s.wedding.BrideName, s.wedding.GroomName, s.wedding.Date)
	body := fmt.Sprintf(
		"%s\n\n%s,\n\n%s\n%s\n\n%s\n",
		s.wedding.Greeting.Resolve(s.defaultLang()),
		g.FullName(),
		s.wedding.Date,
		s.wedding.Venue.Resolve(s.defaultLang()),
		link,
	)
	return s.send(g, subject, body)
}

func (s *emailService) SendRSVPReminder(ctx context.Context, g *domain.Guest, link string) error {
	subject := fmt.Sprintf("RSVP reminder - %s & %s", s.wedding.BrideName, s.wedding.GroomName)
	body := fmt.Sprintf(
		"%s,\n\nWe have not heard back from you yet. Please let us know if you can join us on %s.\n\n%s\n",
		g.FullName(),
		s.wedding.Date,
		link,
	)
	return s.send(g, subject, body)
}

func (s *emailService) send(g *domain.Guest, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(g.FullName(), g.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", g.Email)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) defaultLang() domain.Language {
	if s.wedding.DefaultLang == string(domain.LanguageUkrainian) {
		return domain.LanguageUkrainian
	}
	return domain.LanguageEstonian
}
