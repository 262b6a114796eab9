package adaptor

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"time"

	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"
	"request-portal/internal/usecase"
	"request-portal/pkg/middleware"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		secureCookie: secureCookie,
		log:          log.With(zap.String("handler", "auth")),
	}
}

// SignIn handles POST /auth/session.
// Form posts come from the browser sign-in page and always answer with a redirect.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if isFormPost(r) {
		h.signInForm(w, r)
		return
	}

	var req request.SignInRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	session, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "sign in")
		return
	}

	h.setSessionCookie(w, session)
	utils.ResponseSuccess(w, "Signed in", session)
}

func (h *AuthHandler) signInForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("Malformed sign-in form", zap.Error(err))
		http.Redirect(w, r, h.service.SignInErrorPage(), http.StatusSeeOther)
		return
	}

	req := request.SignInRequest{
		Username:    r.PostForm.Get("username"),
		Password:    r.PostForm.Get("password"),
		CallbackURL: r.PostForm.Get("callbackUrl"),
	}

	session, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) && !errors.Is(err, usecase.ErrValidation) {
			h.log.Error("Failed to sign in", zap.Error(err))
		}
		http.Redirect(w, r, h.service.SignInErrorPage(), http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, session.Redirect, http.StatusSeeOther)
}

// GetSession handles GET /auth/session.
// A valid token is renewed; anything else yields an empty session.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), middleware.TokenFromRequest(r))
	if err != nil {
		writeError(w, h.log, err, "get session")
		return
	}

	if session == nil {
		utils.ResponseSuccess(w, "No active session", nil)
		return
	}

	h.setSessionCookie(w, session)
	utils.ResponseSuccess(w, "Session retrieved", session)
}

// SignOut handles DELETE /auth/session
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.ResponseNoContent(w)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *response.SessionResponse) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func isFormPost(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded"
}

func secureCookies(baseURL string) bool {
	u, err := url.Parse(baseURL)
	return err == nil && u.Scheme == "https"
}
