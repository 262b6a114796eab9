package response

import (
	"time"

	"request-portal/pkg/token"
)

// SessionResponse is returned by sign-in and by session lookups.
type SessionResponse struct {
	User      token.Identity `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Redirect  string         `json:"redirect,omitempty"`
}
