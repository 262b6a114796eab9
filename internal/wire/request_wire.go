package wire

import (
	"net/http"

	"request-portal/internal/adaptor"
	"request-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRequest(
	r chi.Router,
	requestHandler *adaptor.RequestHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	canRead := middleware.RequirePermission("requests:read", log)
	canWrite := middleware.RequirePermission("requests:write", log)

	// Mutations take the record id from ?id=
	r.With(auth).Route("/requests", func(r chi.Router) {
		r.With(canRead).Get("/", requestHandler.ListRequests)
		r.With(canWrite).Post("/", requestHandler.CreateRequest)
		r.With(canWrite).Put("/", requestHandler.UpdateRequest)
		r.With(canWrite).Delete("/", requestHandler.DeleteRequest)

		r.With(canRead).Get("/stats", requestHandler.GetStats)
	})
}
