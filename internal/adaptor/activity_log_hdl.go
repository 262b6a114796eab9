package adaptor

import (
	"net/http"

	"request-portal/internal/usecase"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type ActivityLogHandler struct {
	service usecase.ActivityLogService
	log     *zap.Logger
}

func NewActivityLogHandler(service usecase.ActivityLogService, log *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity_log")),
	}
}

// ListActivityLogs handles GET /activityLogs
func (h *ActivityLogHandler) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListActivityLogs(r.Context())
	if err != nil {
		writeError(w, h.log, err, "list activity logs")
		return
	}

	utils.ResponseSuccess(w, "Activity logs retrieved successfully", entries)
}
