// Package mailer submits plain-text messages to an SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"request-portal/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Message is a single plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Receipt is what the relay accepted.
type Receipt struct {
	MessageID string
	Accepted  []string
	Envelope  Envelope
}

type Envelope struct {
	From string
	To   []string
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// SMTPSender dials the relay once per message; a go-mail client is not
// shared across goroutines.
type SMTPSender struct {
	host    string
	options []mail.Option
	log     *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) (*SMTPSender, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}

	tlsPolicy, err := parseTLSPolicy(config.TLSPolicy)
	if err != nil {
		return nil, err
	}

	options := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTLSPolicy(tlsPolicy),
		mail.WithTimeout(time.Duration(config.TimeoutSeconds) * time.Second),
	}
	if config.User != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.User),
			mail.WithPassword(config.Password),
		)
	}

	return &SMTPSender{
		host:    config.Host,
		options: options,
		log:     log.With(zap.String("component", "mailer")),
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.SetMessageID()

	client, err := mail.NewClient(s.host, s.options...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		s.log.Error("SMTP delivery failed",
			zap.Error(err),
			zap.String("host", s.host),
		)
		return nil, fmt.Errorf("deliver message: %w", err)
	}

	receipt := &Receipt{
		Accepted: []string{msg.To},
		Envelope: Envelope{From: msg.From, To: []string{msg.To}},
	}
	if ids := m.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		receipt.MessageID = ids[0]
	}

	return receipt, nil
}

func parseTLSPolicy(policy string) (mail.TLSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	}
	return mail.NoTLS, fmt.Errorf("unknown SMTP_TLS_POLICY %q", policy)
}
