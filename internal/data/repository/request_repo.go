package repository

import (
	"context"
	"errors"
	"fmt"

	"request-portal/internal/data/entity"
	"request-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	FindByID(ctx context.Context, id int64) (*entity.Request, error)
	FindAll(ctx context.Context) ([]*entity.Request, error)
	Update(ctx context.Context, request *entity.Request) error
	Delete(ctx context.Context, id int64) (*entity.Request, error)
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)

	// Business queries
	CountByStatus(ctx context.Context) (*entity.RequestStats, error)
}

type requestRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRequestRepository(db database.Querier, log *zap.Logger) RequestRepository {
	return &requestRepository{
		db:  db,
		log: log.With(zap.String("repository", "request")),
	}
}

func (r *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	query := `
		INSERT INTO requests (user_id, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.UserID,
		request.Description,
		string(request.Status),
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrForeignKey) {
			return err
		}
		r.log.Error("Failed to create request",
			zap.Error(err),
			zap.Int64("user_id", request.UserID),
		)
		return fmt.Errorf("create request for user %d: %w", request.UserID, err)
	}

	return nil
}

// FindByID returns nil, nil when the request does not exist.
func (r *requestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	query := `
		SELECT id, user_id, description, status, created_at, updated_at
		FROM requests
		WHERE id = $1
	`

	var request entity.Request
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Description,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find request by ID",
			zap.Error(err),
			zap.Int64("request_id", id),
		)
		return nil, fmt.Errorf("find request by ID %d: %w", id, err)
	}

	return &request, nil
}

// FindAll returns every request with its owner attached.
func (r *requestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	query := `
		SELECT q.id, q.user_id, q.description, q.status, q.created_at, q.updated_at,
		       u.id, u.username, u.email
		FROM requests q
		JOIN users u ON u.id = q.user_id
		ORDER BY q.created_at DESC, q.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list requests", zap.Error(err))
		return nil, fmt.Errorf("find all requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.Request
	for rows.Next() {
		var (
			request entity.Request
			owner   entity.User
		)
		err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.Description,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
			&owner.ID,
			&owner.Username,
			&owner.Email,
		)
		if err != nil {
			r.log.Error("Failed to scan request row", zap.Error(err))
			return nil, fmt.Errorf("scan request row: %w", err)
		}
		request.User = &owner
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate request rows: %w", err)
	}

	return requests, nil
}

// Update writes description and status and refreshes the row from the database.
func (r *requestRepository) Update(ctx context.Context, request *entity.Request) error {
	query := `
		UPDATE requests
		SET description = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING user_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.ID,
		request.Description,
		string(request.Status),
	).Scan(&request.UserID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("request %d: %w", request.ID, ErrNotFound)
		}
		r.log.Error("Failed to update request",
			zap.Error(err),
			zap.Int64("request_id", request.ID),
		)
		return fmt.Errorf("update request %d: %w", request.ID, err)
	}

	return nil
}

// Delete removes the request and returns the deleted row.
func (r *requestRepository) Delete(ctx context.Context, id int64) (*entity.Request, error) {
	query := `
		DELETE FROM requests
		WHERE id = $1
		RETURNING id, user_id, description, status, created_at, updated_at
	`

	var request entity.Request
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Description,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("request %d: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to delete request",
			zap.Error(err),
			zap.Int64("request_id", id),
		)
		return nil, fmt.Errorf("delete request %d: %w", id, err)
	}

	r.log.Info("Request deleted", zap.Int64("request_id", id))
	return &request, nil
}

// DeleteByUserID removes every request owned by userID and reports the count.
func (r *requestRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM requests WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete requests by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("delete requests for user %d: %w", userID, err)
	}

	return result.RowsAffected(), nil
}

// CountByStatus aggregates in the database instead of loading every row.
func (r *requestRepository) CountByStatus(ctx context.Context) (*entity.RequestStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending')     AS pending,
			COUNT(*) FILTER (WHERE status = 'in-progress') AS in_progress,
			COUNT(*) FILTER (WHERE status = 'completed')   AS completed,
			COUNT(*) FILTER (WHERE status = 'rejected')    AS rejected,
			COUNT(*)                                       AS total
		FROM requests
	`

	var stats entity.RequestStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Pending,
		&stats.InProgress,
		&stats.Completed,
		&stats.Rejected,
		&stats.Total,
	)
	if err != nil {
		r.log.Error("Failed to count requests by status", zap.Error(err))
		return nil, fmt.Errorf("count requests by status: %w", err)
	}

	return &stats, nil
}
