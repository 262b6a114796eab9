package usecase

import (
	"context"
	"fmt"
	"strings"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
)

// AssignableRoles are the role names user payloads may reference.
var AssignableRoles = []entity.UserRole{entity.RoleAdmin, entity.RoleStaff, entity.RoleUser}

// VerifyRoles fails when an assignable role is missing from storage, which
// means the migrations have not been applied.
func VerifyRoles(ctx context.Context, roles repository.RoleRepository) error {
	stored, err := roles.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}

	seeded := make(map[entity.UserRole]bool, len(stored))
	for _, role := range stored {
		seeded[role.Name] = true
	}

	var missing []string
	for _, name := range AssignableRoles {
		if !seeded[name] {
			missing = append(missing, string(name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is not seeded, run `migrate up`", ErrRoleNotFound, strings.Join(missing, ", "))
	}
	return nil
}
