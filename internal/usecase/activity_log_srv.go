package usecase

import (
	"context"
	"fmt"

	"request-portal/internal/data/repository"
	"request-portal/internal/dto/response"

	"go.uber.org/zap"
)

type ActivityLogService interface {
	// ListActivityLogs returns every entry, newest first.
	ListActivityLogs(ctx context.Context) ([]response.ActivityLogResponse, error)
}

type activityLogService struct {
	repo repository.ActivityLogRepository
	log  *zap.Logger
}

func NewActivityLogService(repo repository.ActivityLogRepository, log *zap.Logger) ActivityLogService {
	return &activityLogService{
		repo: repo,
		log:  log.With(zap.String("service", "activity_log")),
	}
}

func (s *activityLogService) ListActivityLogs(ctx context.Context) ([]response.ActivityLogResponse, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}

	s.log.Debug("Activity logs retrieved", zap.Int("count", len(entries)))
	return response.ActivityLogsToResponse(entries), nil
}
