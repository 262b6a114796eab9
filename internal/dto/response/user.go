package response

import (
	"time"

	"request-portal/internal/data/entity"
)

type RoleResponse struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type ProfileResponse struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      *RoleResponse    `json:"role,omitempty"`
	Profile   *ProfileResponse `json:"profile"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// UserSummary is the owner record attached to requests and log entries.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func RoleToResponse(role *entity.Role) *RoleResponse {
	if role == nil {
		return nil
	}
	permissions := role.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return &RoleResponse{Name: string(role.Name), Permissions: permissions}
}

func ProfileToResponse(profile *entity.UserProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     profile.Phone,
		Address:   profile.Address,
	}
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      RoleToResponse(user.Role),
		Profile:   ProfileToResponse(user.Profile),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}

func UserToSummary(user *entity.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{ID: user.ID, Username: user.Username, Email: user.Email}
}
