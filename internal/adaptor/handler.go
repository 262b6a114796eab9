package adaptor

import (
	"errors"
	"net/http"

	"request-portal/internal/usecase"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Request     *RequestHandler
	ActivityLog *ActivityLogHandler
	Mail        *MailHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, secureCookies(config.App.BaseURL), log),
		User:        NewUserHandler(service.User, log),
		Request:     NewRequestHandler(service.Request, log),
		ActivityLog: NewActivityLogHandler(service.ActivityLog, log),
		Mail:        NewMailHandler(service.Mail, log),
	}
}

// writeError renders a service error. Only 5xx details stay server-side.
func writeError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrRoleNotFound):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid username or password")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeBody decodes a JSON payload and answers 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, strict bool) bool {
	if err := utils.DecodeJSON(r, dst, strict); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return false
	}
	return true
}

// idParam parses a positive id and answers 400 itself when it is missing or malformed.
func idParam(w http.ResponseWriter, raw, source string) (int64, bool) {
	if raw == "" {
		utils.ResponseBadRequest(w, "id "+source+" is required", nil)
		return 0, false
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
