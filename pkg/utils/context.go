package utils

import (
	"context"
	"slices"
)

type contextKey string

const (
	SessionUserKey contextKey = "session_user"
	RequestIDKey   contextKey = "request_id"
)

// SessionUser is the authenticated caller taken from a verified session token.
type SessionUser struct {
	ID          int64
	Username    string
	Role        string
	Permissions []string
}

// Can reports whether the caller's role grants permission.
func (u SessionUser) Can(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}

func SetUserContext(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserKey, user)
}

func GetUserFromContext(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(SessionUserKey).(SessionUser)
	return user, ok
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
