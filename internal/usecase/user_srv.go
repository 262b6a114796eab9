package usecase

import (
	"context"
	"errors"
	"fmt"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, id int64) (*response.UserResponse, error)
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d %w", id, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(users)))
	return response.UsersToResponse(users), nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Resolve role
	role, err := us.repo.Role.FindByName(ctx, req.Role)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}
	if role == nil {
		return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, req.Role)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		RoleID:       role.ID,
	}
	profile := &entity.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	// 4. Save user and profile together
	err = us.repo.Tx.RunInTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Profile.Upsert(ctx, profile)
	})
	if err != nil {
		return nil, us.translateWriteError(err, "create user")
	}

	user.Role = role
	user.Profile = profile

	us.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(role.Name)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d for update: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d %w", id, ErrNotFound)
	}

	userChanged := false
	if req.Username != nil {
		user.Username = *req.Username
		userChanged = true
	}
	if req.Email != nil {
		user.Email = *req.Email
		userChanged = true
	}
	if req.Password != nil {
		// Only re-hash when a new password was supplied
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err), zap.Int64("user_id", id))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
		userChanged = true
	}
	if req.Role != nil {
		role, err := us.repo.Role.FindByName(ctx, *req.Role)
		if err != nil {
			return nil, fmt.Errorf("resolve role: %w", err)
		}
		if role == nil {
			return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, *req.Role)
		}
		user.RoleID = role.ID
		user.Role = role
		userChanged = true
	}

	var profile *entity.UserProfile
	if req.ProfileFields.HasAny() {
		profile = mergeProfile(id, user.Profile, req.ProfileFields)
	}

	err = us.repo.Tx.RunInTx(ctx, func(tx *repository.Repository) error {
		if userChanged {
			if err := tx.User.Update(ctx, user); err != nil {
				return err
			}
		}
		if profile != nil {
			return tx.Profile.Upsert(ctx, profile)
		}
		return nil
	})
	if err != nil {
		return nil, us.translateWriteError(err, "update user")
	}

	if profile != nil {
		user.Profile = profile
	}

	us.log.Info("User updated", zap.Int64("user_id", id))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes the profile, then owned requests, then the user, in one transaction.
func (us *userService) DeleteUser(ctx context.Context, id int64) error {
	var profiles, requests int64

	err := us.repo.Tx.RunInTx(ctx, func(tx *repository.Repository) error {
		var err error
		if profiles, err = tx.Profile.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		if requests, err = tx.Request.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		return tx.User.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %d %w", id, ErrNotFound)
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	us.log.Info("User deleted",
		zap.Int64("user_id", id),
		zap.Int64("profiles_removed", profiles),
		zap.Int64("requests_removed", requests))
	return nil
}

// ==================== HELPER METHODS ====================

// mergeProfile overlays the supplied fields on the existing profile, or on
// an empty one when the user has none yet.
func mergeProfile(userID int64, existing *entity.UserProfile, fields request.ProfileFields) *entity.UserProfile {
	merged := &entity.UserProfile{UserID: userID}
	if existing != nil {
		*merged = *existing
		merged.UserID = userID
	}

	if fields.FirstName != nil {
		merged.FirstName = fields.FirstName
	}
	if fields.LastName != nil {
		merged.LastName = fields.LastName
	}
	if fields.Phone != nil {
		merged.Phone = fields.Phone
	}
	if fields.Address != nil {
		merged.Address = fields.Address
	}
	return merged
}

func (us *userService) translateWriteError(err error, operation string) error {
	var dup *repository.DuplicateError
	switch {
	case errors.As(err, &dup):
		switch dup.Constraint {
		case "users_username_key":
			return &ConflictError{Message: "username already taken"}
		case "users_email_key":
			return &ConflictError{Message: "email already registered"}
		}
		return &ConflictError{Message: "username or email already taken"}
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("user %w", ErrNotFound)
	}

	us.log.Error("Failed to "+operation, zap.Error(err))
	return fmt.Errorf("%s: %w", operation, err)
}
