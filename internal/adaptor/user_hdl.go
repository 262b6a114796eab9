package adaptor

import (
	"net/http"

	"request-portal/internal/dto/request"
	"request-portal/internal/usecase"
	"request-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListUsers handles GET /users and GET /users?id={id}
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("id") {
		id, ok := idParam(w, r.URL.Query().Get("id"), "query parameter")
		if !ok {
			return
		}
		h.getUser(w, r, id)
		return
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, chi.URLParam(r, "id"), "path parameter")
	if !ok {
		return
	}
	h.getUser(w, r, id)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, chi.URLParam(r, "id"), "path parameter")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, chi.URLParam(r, "id"), "path parameter")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}
