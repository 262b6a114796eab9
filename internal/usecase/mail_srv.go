package usecase

import (
	"context"
	"fmt"

	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"
	"request-portal/pkg/mailer"

	"go.uber.org/zap"
)

type MailService interface {
	Send(ctx context.Context, req *request.SendMailRequest) (*response.MailResponse, error)
}

type mailService struct {
	sender mailer.Sender
	from   string
	log    *zap.Logger
}

func NewMailService(sender mailer.Sender, from string, log *zap.Logger) MailService {
	return &mailService{
		sender: sender,
		from:   from,
		log:    log.With(zap.String("service", "mail")),
	}
}

func (s *mailService) Send(ctx context.Context, req *request.SendMailRequest) (*response.MailResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	receipt, err := s.sender.Send(ctx, mailer.Message{
		From:    s.from,
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		// Recipient and body stay out of the log
		s.log.Error("Mail relay failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMailTransport, err)
	}

	s.log.Info("Mail relayed", zap.String("message_id", receipt.MessageID))

	return &response.MailResponse{
		MessageID: receipt.MessageID,
		Accepted:  receipt.Accepted,
		Envelope: response.MailEnvelope{
			From: receipt.Envelope.From,
			To:   receipt.Envelope.To,
		},
	}, nil
}
