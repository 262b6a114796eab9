// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"request-portal/internal/adaptor"
	"request-portal/internal/data/repository"
	"request-portal/internal/usecase"
	"request-portal/pkg/mailer"
	"request-portal/pkg/middleware"
	"request-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Deps are the process-owned collaborators the routes are built on.
type Deps struct {
	DB     Pinger
	Repo   *repository.Repository
	Tokens usecase.TokenIssuer
	Mailer mailer.Sender
	Config *utils.Config
	Logger *zap.Logger
}

// Wiring menginisialisasi semua dependencies
func Wiring(deps Deps) *App {
	service := usecase.NewService(deps.Repo, deps.Tokens, deps.Mailer, deps.Config, deps.Logger)
	handler := adaptor.NewHandler(service, deps.Config, deps.Logger)

	return &App{
		Router: setupRouter(handler, deps),
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, deps Deps) *chi.Mux {
	r := chi.NewRouter()
	log := deps.Logger

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP(deps.Config.App.TrustedProxies))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(deps.Config.App.AllowedOrigins))

	auth := middleware.Auth(deps.Tokens, log)

	// Apply routes
	wireAuth(r, handler.Auth, deps.Config.Auth, log)
	wireUser(r, handler.User, auth, log)
	wireRequest(r, handler.Request, auth, log)
	wireActivityLog(r, handler.ActivityLog, auth, log)
	wireMail(r, handler.Mail, auth, log)

	r.Get("/health", health(deps.DB))

	return r
}

func health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			utils.ResponseError(w, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	}
}
