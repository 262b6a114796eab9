package entity

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleUser  UserRole = "user"
)

type Role struct {
	BaseSimple
	Name        UserRole `db:"name"`
	Permissions []string `db:"permissions"`
}

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	RoleID       int64  `db:"role_id"`

	// Populated by joined reads
	Role    *Role
	Profile *UserProfile
}

// UserProfile is keyed by its user; a user has at most one.
type UserProfile struct {
	UserID    int64     `db:"user_id"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	UpdatedAt time.Time `db:"updated_at"`
}
