package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/domain"
)

// SendgridSender delivers email notifications through the Sendgrid API.
// User logins are email addresses.
type SendgridSender struct {
	key  string
	from *sgmail.Email
}

func NewSendgridSender(cfg *config.Config) *SendgridSender {
	return &SendgridSender{
		key:  cfg.SendgridKey,
		from: sgmail.NewEmail(cfg.SchoolName, cfg.EmailFrom),
	}
}

func (s *SendgridSender) Send(ctx context.Context, recipient *domain.User, n domain.Notification) error {
	to := sgmail.NewEmail(recipient.FullName, recipient.Login)
	message := sgmail.NewSingleEmailPlainText(s.from, n.Subject, to, n.Body)

	client := sendgrid.NewSendClient(s.key)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleSender logs notifications instead of delivering them. It stands in
// for email when no Sendgrid key is configured, and for SMS which has no
// provider wired up.
type ConsoleSender struct {
	channel string
}

func NewConsoleSender(channel string) *ConsoleSender {
	return &ConsoleSender{channel: channel}
}

func (s *ConsoleSender) Send(_ context.Context, recipient *domain.User, n domain.Notification) error {
	zap.L().Info("notification",
		zap.String("channel", s.channel),
		zap.Int("recipientID", recipient.ID),
		zap.String("recipient", recipient.Login),
		zap.String("subject", n.Subject),
		zap.String("body", n.Body),
	)
	return nil
}
