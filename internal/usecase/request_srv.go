package usecase

import (
	"context"
	"errors"
	"fmt"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"

	"go.uber.org/zap"
)

type RequestService interface {
	ListRequests(ctx context.Context) ([]response.RequestResponse, error)
	CreateRequest(ctx context.Context, req *request.CreateRequestRequest) (*response.RequestResponse, error)
	UpdateRequest(ctx context.Context, id int64, req *request.UpdateRequestRequest) (*response.RequestResponse, error)
	DeleteRequest(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*response.RequestStatsResponse, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	auditRepo   repository.ActivityLogRepository
	log         *zap.Logger
}

func NewRequestService(repo *repository.Repository, log *zap.Logger) RequestService {
	return &requestService{
		requestRepo: repo.Request,
		auditRepo:   repo.ActivityLog,
		log:         log.With(zap.String("service", "request")),
	}
}

func (rs *requestService) ListRequests(ctx context.Context) ([]response.RequestResponse, error) {
	requests, err := rs.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return response.RequestsToResponse(requests), nil
}

func (rs *requestService) CreateRequest(ctx context.Context, req *request.CreateRequestRequest) (*response.RequestResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	status := entity.StatusPending
	if req.Status != "" {
		status = entity.RequestStatus(req.Status)
	}

	newRequest := &entity.Request{
		UserID:      req.UserID,
		Description: req.Description,
		Status:      status,
	}

	if err := rs.requestRepo.Create(ctx, newRequest); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, fmt.Errorf("user %d %w", req.UserID, ErrNotFound)
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	rs.log.Info("Request created",
		zap.Int64("request_id", newRequest.ID),
		zap.Int64("user_id", newRequest.UserID),
		zap.String("status", string(newRequest.Status)))

	rs.audit(ctx, newRequest.UserID, entity.ActionCreateRequest,
		fmt.Sprintf("Created request #%d with status %s", newRequest.ID, newRequest.Status))

	resp := response.RequestToResponse(newRequest)
	return &resp, nil
}

// UpdateRequest applies the supplied fields. Any status may follow any other.
func (rs *requestService) UpdateRequest(ctx context.Context, id int64, req *request.UpdateRequestRequest) (*response.RequestResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := rs.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request %d for update: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("request %d %w", id, ErrNotFound)
	}

	previousStatus := existing.Status
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		existing.Status = entity.RequestStatus(*req.Status)
	}

	if err := rs.requestRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("request %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update request %d: %w", id, err)
	}

	rs.log.Info("Request updated",
		zap.Int64("request_id", id),
		zap.String("from_status", string(previousStatus)),
		zap.String("to_status", string(existing.Status)))

	description := fmt.Sprintf("Updated request #%d", id)
	if previousStatus != existing.Status {
		description = fmt.Sprintf("Updated request #%d status from %s to %s", id, previousStatus, existing.Status)
	}
	rs.audit(ctx, existing.UserID, entity.ActionUpdateRequest, description)

	resp := response.RequestToResponse(existing)
	return &resp, nil
}

func (rs *requestService) DeleteRequest(ctx context.Context, id int64) error {
	deleted, err := rs.requestRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("request %d %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete request %d: %w", id, err)
	}

	rs.log.Info("Request deleted", zap.Int64("request_id", id))

	rs.audit(ctx, deleted.UserID, entity.ActionDeleteRequest,
		fmt.Sprintf("Deleted request #%d", id))
	return nil
}

func (rs *requestService) GetStats(ctx context.Context) (*response.RequestStatsResponse, error) {
	stats, err := rs.requestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("request stats: %w", err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}

// audit records a mutation after it has succeeded. A failed write is logged
// and never undoes the mutation.
func (rs *requestService) audit(ctx context.Context, userID int64, action, description string) {
	entry := &entity.ActivityLog{
		UserID:      &userID,
		Action:      action,
		Description: description,
	}

	if err := rs.auditRepo.Create(ctx, entry); err != nil {
		rs.log.Warn("Failed to write activity log",
			zap.Error(err),
			zap.String("action", action),
			zap.Int64("user_id", userID))
	}
}
