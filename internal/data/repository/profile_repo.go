package repository

import (
	"context"
	"fmt"

	"request-portal/internal/data/entity"
	"request-portal/pkg/database"

	"go.uber.org/zap"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.UserProfile) error
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}

type profileRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProfileRepository(db database.Querier, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

// Upsert writes every profile column, inserting the row when it is missing.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, first_name, last_name, phone, address, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name  = EXCLUDED.last_name,
		    phone      = EXCLUDED.phone,
		    address    = EXCLUDED.address,
		    updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Address,
	).Scan(&profile.UpdatedAt)

	if err != nil {
		err = mapError(err)
		r.log.Error("Failed to upsert profile",
			zap.Error(err),
			zap.Int64("user_id", profile.UserID),
		)
		return fmt.Errorf("upsert profile for user %d: %w", profile.UserID, err)
	}

	return nil
}

// DeleteByUserID reports how many profile rows were removed (0 or 1).
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM user_profiles WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete profile",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("delete profile for user %d: %w", userID, err)
	}

	return result.RowsAffected(), nil
}
