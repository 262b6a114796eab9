package wire

import (
	"net/http"

	"request-portal/internal/adaptor"
	"request-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMail(
	r chi.Router,
	mailHandler *adaptor.MailHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth, middleware.RequirePermission("mail:send", log)).
		Post("/mail", mailHandler.SendMail)
}
