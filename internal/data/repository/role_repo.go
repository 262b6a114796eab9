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

type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	FindAll(ctx context.Context) ([]*entity.Role, error)
}

type roleRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoleRepository(db database.Querier, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

// FindByName returns nil, nil when no role has that name.
func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `
		SELECT id, name, permissions, created_at
		FROM roles
		WHERE name = $1
	`

	var role entity.Role
	err := r.db.QueryRow(ctx, query, name).Scan(
		&role.ID,
		&role.Name,
		&role.Permissions,
		&role.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find role by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find role %s: %w", name, err)
	}

	return &role, nil
}

func (r *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	query := `SELECT id, name, permissions, created_at FROM roles ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list roles", zap.Error(err))
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Permissions, &role.CreatedAt); err != nil {
			r.log.Error("Failed to scan role row", zap.Error(err))
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role rows: %w", err)
	}

	return roles, nil
}
