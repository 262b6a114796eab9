package middleware

import (
	"errors"
	"net/http"
	"strings"

	"request-portal/pkg/token"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is the cookie sign-in stores the session token in.
const SessionCookieName = "session_token"

// TokenParser verifies a signed session token.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		scheme, value, found := strings.Cut(authHeader, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value)
		}
		return ""
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Auth middleware untuk validasi session token
func Auth(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := TokenFromRequest(r)
			if raw == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				if errors.Is(err, token.ErrExpiredToken) {
					logger.Info("Expired session token", zap.String("path", r.URL.Path))
				} else {
					logger.Warn("Invalid session token", zap.String("path", r.URL.Path), zap.Error(err))
				}
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), utils.SessionUser{
				ID:          claims.ID,
				Username:    claims.Username,
				Role:        claims.Role.Name,
				Permissions: claims.Role.Permissions,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission rejects callers whose role lacks permission. It must run after Auth.
func RequirePermission(permission string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !user.Can(permission) {
				logger.Warn("Permission denied",
					zap.Int64("user_id", user.ID),
					zap.String("role", user.Role),
					zap.String("permission", permission),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Missing permission "+permission)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
