package usecase

import (
	"errors"

	"request-portal/pkg/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrRoleNotFound       = errors.New("role does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMailTransport      = errors.New("mail delivery failed")
)

// ValidationError lists every violated field constraint.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError names the unique value a write collided with.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// validate runs the struct validator and wraps any violations.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
