package adaptor

import (
	"net/http"

	"request-portal/internal/dto/request"
	"request-portal/internal/usecase"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type MailHandler struct {
	service usecase.MailService
	log     *zap.Logger
}

func NewMailHandler(service usecase.MailService, log *zap.Logger) *MailHandler {
	return &MailHandler{
		service: service,
		log:     log.With(zap.String("handler", "mail")),
	}
}

// SendMail handles POST /mail
func (h *MailHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	var req request.SendMailRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	sent, err := h.service.Send(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "send mail")
		return
	}

	utils.ResponseSuccess(w, "Email sent successfully", sent)
}
