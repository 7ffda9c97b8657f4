package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/shared/constant"

	"github.com/mailersend/mailersend-go"
	"github.com/rs/zerolog/log"
)

type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
	Tags    []string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type mailerImpl struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	timeout   time.Duration
	otel      otel.Otel
}

// New returns a MailerSend backed mailer. Without an API key mail is only logged.
func New(cfg *config.Config, otel otel.Otel) Mailer {
	mailerCfg := cfg.Notification.Mailer

	if mailerCfg.APIKey == "" {
		log.Warn().Msg("No mailer API key configured, emails will only be logged")

		return &logMailer{}
	}

	timeout := time.Duration(mailerCfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &mailerImpl{
		client:    mailersend.NewMailersend(mailerCfg.APIKey),
		fromName:  mailerCfg.FromName,
		fromEmail: mailerCfg.FromEmail,
		timeout:   timeout,
		otel:      otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, email Email) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("mail.subject", email.Subject)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Name:  m.fromName,
		Email: m.fromEmail,
	})
	message.SetRecipients([]mailersend.Recipient{
		{
			Name:  email.ToName,
			Email: email.To,
		},
	})
	message.SetSubject(email.Subject)
	message.SetHTML(email.HTML)
	message.SetText(email.Text)
	message.SetTags(email.Tags)

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("messageID", res.Header.Get("X-Message-Id")).Str("subject", email.Subject).Msg("Email sent")

	return nil
}

type logMailer struct{}

func (l *logMailer) Send(_ context.Context, email Email) error {
	log.Info().Str("to", email.To).Str("subject", email.Subject).Msg("Email not sent, mailer disabled")

	return nil
}
