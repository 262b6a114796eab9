package wire

import (
	"net/http"

	"request-portal/internal/adaptor"
	"request-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActivityLog(
	r chi.Router,
	activityLogHandler *adaptor.ActivityLogHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth, middleware.RequirePermission("activity:read", log)).
		Get("/activityLogs", activityLogHandler.ListActivityLogs)
}
