package usecase

import (
	"request-portal/internal/data/repository"
	"request-portal/pkg/mailer"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Request     RequestService
	ActivityLog ActivityLogService
	Mail        MailService
}

func NewService(
	repo *repository.Repository,
	tokens TokenIssuer,
	sender mailer.Sender,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo.User, tokens, config, log),
		User:        NewUserService(repo, log),
		Request:     NewRequestService(repo, log),
		ActivityLog: NewActivityLogService(repo.ActivityLog, log),
		Mail:        NewMailService(sender, config.Email.From, log),
	}
}
