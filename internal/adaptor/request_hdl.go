package adaptor

import (
	"net/http"

	"request-portal/internal/dto/request"
	"request-portal/internal/usecase"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type RequestHandler struct {
	service usecase.RequestService
	log     *zap.Logger
}

func NewRequestHandler(service usecase.RequestService, log *zap.Logger) *RequestHandler {
	return &RequestHandler{
		service: service,
		log:     log.With(zap.String("handler", "request")),
	}
}

// ListRequests handles GET /requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRequests(r.Context())
	if err != nil {
		writeError(w, h.log, err, "list requests")
		return
	}

	utils.ResponseSuccess(w, "Requests retrieved successfully", requests)
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	created, err := h.service.CreateRequest(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create request")
		return
	}

	utils.ResponseCreated(w, "Request created successfully", created)
}

// UpdateRequest handles PUT /requests?id={id}. Unknown body fields are ignored.
func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r.URL.Query().Get("id"), "query parameter")
	if !ok {
		return
	}

	var req request.UpdateRequestRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	updated, err := h.service.UpdateRequest(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err, "update request")
		return
	}

	utils.ResponseSuccess(w, "Request updated successfully", updated)
}

// DeleteRequest handles DELETE /requests?id={id}
func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r.URL.Query().Get("id"), "query parameter")
	if !ok {
		return
	}

	if err := h.service.DeleteRequest(r.Context(), id); err != nil {
		writeError(w, h.log, err, "delete request")
		return
	}

	utils.ResponseNoContent(w)
}

// GetStats handles GET /requests/stats
func (h *RequestHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeError(w, h.log, err, "request stats")
		return
	}

	utils.ResponseSuccess(w, "Request stats retrieved successfully", stats)
}
