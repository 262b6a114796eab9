package wire

import (
	"net/http"

	"request-portal/internal/adaptor"
	"request-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with permission checks
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	canRead := middleware.RequirePermission("users:read", log)
	canWrite := middleware.RequirePermission("users:write", log)

	r.With(auth).Route("/users", func(r chi.Router) {
		r.With(canRead).Get("/", userHandler.ListUsers)   // GET /users, GET /users?id=1
		r.With(canWrite).Post("/", userHandler.CreateUser) // POST /users

		r.With(canRead).Get("/{id}", userHandler.GetUser)
		r.With(canWrite).Put("/{id}", userHandler.UpdateUser)
		r.With(canWrite).Delete("/{id}", userHandler.DeleteUser)
	})
}
