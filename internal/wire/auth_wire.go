package wire

import (
	"request-portal/internal/adaptor"
	"request-portal/pkg/middleware"
	"request-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config utils.AuthConfig, log *zap.Logger) {
	signInLimit := middleware.RateLimit(
		middleware.NewClientLimiter(config.SignInPerMinute, config.SignInBurst), log)

	// ==================== PUBLIC ROUTES ====================
	r.Route("/auth/session", func(r chi.Router) {
		r.With(signInLimit).Post("/", authHandler.SignIn)
		r.Get("/", authHandler.GetSession)
		r.Delete("/", authHandler.SignOut)
	})
}
