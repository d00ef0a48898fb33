// Package smtp delivers shopauth's transactional mail over SMTP.
package smtp

import (
	"context"
	"fmt"

	"github.com/shopauth/shopauth"
	gomail "github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender implements shopauth.MailSender on top of an SMTP account.
type Sender struct {
	client *gomail.Client
	from   string
}

var _ shopauth.MailSender = (*Sender)(nil)

func New(cfg Config) (*Sender, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Sender{client: client, from: cfg.From}, nil
}

func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
