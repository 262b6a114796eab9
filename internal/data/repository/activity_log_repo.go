package repository

import (
	"context"
	"fmt"

	"request-portal/internal/data/entity"
	"request-portal/pkg/database"

	"go.uber.org/zap"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *entity.ActivityLog) error
	FindAll(ctx context.Context) ([]*entity.ActivityLog, error)
}

type activityLogRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewActivityLogRepository(db database.Querier, log *zap.Logger) ActivityLogRepository {
	return &activityLogRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity_log")),
	}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, action, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.Action,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create activity log",
			zap.Error(err),
			zap.String("action", entry.Action),
		)
		return fmt.Errorf("create activity log %s: %w", entry.Action, mapError(err))
	}

	return nil
}

// FindAll returns every entry newest first, with the user attached when it still exists.
func (r *activityLogRepository) FindAll(ctx context.Context) ([]*entity.ActivityLog, error) {
	query := `
		SELECT a.id, a.user_id, a.action, a.description, a.created_at,
		       u.username, u.email
		FROM activity_logs a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC, a.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list activity logs", zap.Error(err))
		return nil, fmt.Errorf("find all activity logs: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ActivityLog
	for rows.Next() {
		var (
			entry    entity.ActivityLog
			username *string
			email    *string
		)
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Description,
			&entry.CreatedAt,
			&username,
			&email,
		)
		if err != nil {
			r.log.Error("Failed to scan activity log row", zap.Error(err))
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		if entry.UserID != nil && username != nil && email != nil {
			entry.User = &entity.User{
				Base:     entity.Base{ID: *entry.UserID},
				Username: *username,
				Email:    *email,
			}
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity log rows: %w", err)
	}

	return entries, nil
}
