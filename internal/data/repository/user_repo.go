package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"request-portal/internal/data/entity"
	"request-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// selectUserJoined reads a user together with its role and optional profile.
const selectUserJoined = `
	SELECT u.id, u.username, u.email, u.password, u.role_id, u.created_at, u.updated_at,
	       r.id, r.name, r.permissions, r.created_at,
	       p.user_id, p.first_name, p.last_name, p.phone, p.address, p.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id
	LEFT JOIN user_profiles p ON p.user_id = u.id
`

func scanUserJoined(row scanner) (*entity.User, error) {
	var (
		user             entity.User
		role             entity.Role
		profileUserID    *int64
		profile          entity.UserProfile
		profileUpdatedAt *time.Time
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&role.ID,
		&role.Name,
		&role.Permissions,
		&role.CreatedAt,
		&profileUserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Phone,
		&profile.Address,
		&profileUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = &role
	if profileUserID != nil {
		profile.UserID = *profileUserID
		if profileUpdatedAt != nil {
			profile.UpdatedAt = *profileUpdatedAt
		}
		user.Profile = &profile
	}

	return &user, nil
}

// Create inserts a new user record and fills in its generated id and timestamps.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, email, password, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.RoleID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrDuplicate) {
			ur.log.Warn("Duplicate user rejected", zap.String("username", user.Username))
			return err
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

// FindByID returns nil, nil when the user does not exist.
func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := selectUserJoined + ` WHERE u.id = $1`

	user, err := scanUserJoined(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

// FindByUsername returns nil, nil when the user does not exist.
func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := selectUserJoined + ` WHERE u.username = $1`

	user, err := scanUserJoined(ur.db.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

// FindAll retrieves every user with role and profile attached
func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := selectUserJoined + ` ORDER BY u.id`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close() // IMPORTANT: Close rows to release database connection

	var users []*entity.User
	for rows.Next() {
		user, err := scanUserJoined(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	// Check for errors during iteration (not just database errors)
	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := ur.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, role_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.RoleID,
	).Scan(&user.UpdatedAt)

	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
			return err
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("delete user %d: %w", id, mapError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	ur.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
