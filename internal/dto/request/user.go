package request

// ProfileFields are the optional profile columns accepted on user payloads.
type ProfileFields struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=3,max=30"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// HasAny reports whether at least one profile field was supplied.
func (p ProfileFields) HasAny() bool {
	return p.FirstName != nil || p.LastName != nil || p.Phone != nil || p.Address != nil
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin staff user"`
	ProfileFields
}

// UpdateUserRequest is a partial update: absent fields are left unchanged,
// present fields are validated in full.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,alphanum,min=3,max=30"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin staff user"`
	ProfileFields
}
