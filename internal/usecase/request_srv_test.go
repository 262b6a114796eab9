package usecase

import (
	"context"
	"errors"
	"testing"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestService_CreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pending and writes audit entry", func(t *testing.T) {
		repos := newMockRepos()
		var order []string

		repos.Request.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Request) bool {
			return r.UserID == 1 && r.Status == entity.StatusPending
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Request).ID = 42
			order = append(order, "request")
		}).Return(nil)
		repos.ActivityLog.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.ActivityLog) bool {
			return e.UserID != nil && *e.UserID == 1 &&
				e.Action == entity.ActionCreateRequest &&
				e.Description == "Created request #42 with status pending"
		})).Run(func(mock.Arguments) {
			order = append(order, "audit")
		}).Return(nil)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		resp, err := svc.CreateRequest(ctx, &request.CreateRequestRequest{
			UserID:      1,
			Description: "Printer on floor 3 is jammed",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, []string{"request", "audit"}, order)
		repos.AssertExpectations(t)
	})

	t.Run("short description is rejected and nothing is written", func(t *testing.T) {
		repos := newMockRepos()
		svc := NewRequestService(repos.Repository, zap.NewNop())

		_, err := svc.CreateRequest(ctx, &request.CreateRequestRequest{UserID: 1, Description: "short"})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "description")
		repos.Request.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repos.ActivityLog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repos := newMockRepos()
		svc := NewRequestService(repos.Repository, zap.NewNop())

		_, err := svc.CreateRequest(ctx, &request.CreateRequestRequest{
			UserID:      1,
			Description: "Needs a new keyboard",
			Status:      "archived",
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "status")
	})

	t.Run("unknown owner", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("Create", mock.Anything, mock.Anything).Return(repository.ErrForeignKey)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		_, err := svc.CreateRequest(ctx, &request.CreateRequestRequest{UserID: 9, Description: "Needs a new keyboard"})

		assert.ErrorIs(t, err, ErrNotFound)
		repos.ActivityLog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("audit failure keeps the created request", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("Create", mock.Anything, mock.Anything).Return(nil)
		repos.ActivityLog.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		svc := NewRequestService(repos.Repository, zap.NewNop())
		resp, err := svc.CreateRequest(ctx, &request.CreateRequestRequest{
			UserID:      1,
			Description: "Needs a new keyboard",
			Status:      "in-progress",
		})

		require.NoError(t, err)
		assert.Equal(t, "in-progress", resp.Status)
	})
}

func TestRequestService_UpdateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("any status may follow any other", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("FindByID", mock.Anything, int64(42)).Return(&entity.Request{
			Base:        entity.Base{ID: 42},
			UserID:      1,
			Description: "Printer on floor 3 is jammed",
			Status:      entity.StatusRejected,
		}, nil)
		repos.Request.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Request) bool {
			return r.Status == entity.StatusPending && r.Description == "Printer on floor 3 is jammed"
		})).Return(nil)
		repos.ActivityLog.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.ActivityLog) bool {
			return *e.UserID == 1 && e.Action == entity.ActionUpdateRequest &&
				e.Description == "Updated request #42 status from rejected to pending"
		})).Return(nil)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		resp, err := svc.UpdateRequest(ctx, 42, &request.UpdateRequestRequest{Status: strPtr("pending")})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		repos.AssertExpectations(t)
	})

	t.Run("collects every violation", func(t *testing.T) {
		repos := newMockRepos()
		svc := NewRequestService(repos.Repository, zap.NewNop())

		_, err := svc.UpdateRequest(ctx, 42, &request.UpdateRequestRequest{
			Description: strPtr("tiny"),
			Status:      strPtr("done"),
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Fields, 2)
	})

	t.Run("missing request", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		_, err := svc.UpdateRequest(ctx, 42, &request.UpdateRequestRequest{Status: strPtr("completed")})

		assert.ErrorIs(t, err, ErrNotFound)
		repos.ActivityLog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRequestService_DeleteRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("audits against the deleted request's owner", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("Delete", mock.Anything, int64(42)).Return(&entity.Request{
			Base:   entity.Base{ID: 42},
			UserID: 8,
		}, nil)
		repos.ActivityLog.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.ActivityLog) bool {
			return *e.UserID == 8 && e.Action == entity.ActionDeleteRequest
		})).Return(nil)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		require.NoError(t, svc.DeleteRequest(ctx, 42))
		repos.AssertExpectations(t)
	})

	t.Run("missing request", func(t *testing.T) {
		repos := newMockRepos()
		repos.Request.On("Delete", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

		svc := NewRequestService(repos.Repository, zap.NewNop())
		err := svc.DeleteRequest(ctx, 42)

		assert.ErrorIs(t, err, ErrNotFound)
		repos.ActivityLog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRequestService_GetStats(t *testing.T) {
	repos := newMockRepos()
	repos.Request.On("CountByStatus", mock.Anything).Return(&entity.RequestStats{
		Pending: 3, InProgress: 2, Completed: 4, Rejected: 1, Total: 10,
	}, nil)

	svc := NewRequestService(repos.Repository, zap.NewNop())
	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.LessOrEqual(t, stats.Pending+stats.InProgress+stats.Completed+stats.Rejected, stats.Total)
}
