package utils

import (
	"net/url"
	"strings"
)

// SafeRedirect returns callbackURL when it points at the same origin as
// baseURL, and fallback otherwise. Relative paths are resolved against
// baseURL. Origins are compared as parsed scheme, host and port.
func SafeRedirect(callbackURL, baseURL, fallback string) string {
	if callbackURL == "" {
		return fallback
	}
	if strings.ContainsAny(callbackURL, "\\\r\n\t") {
		return fallback
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return fallback
	}

	target, err := url.Parse(callbackURL)
	if err != nil || target.User != nil {
		return fallback
	}

	if target.Scheme == "" && target.Host == "" {
		if !strings.HasPrefix(target.Path, "/") {
			return fallback
		}
		return base.ResolveReference(target).String()
	}

	if !SameOrigin(base, target) {
		return fallback
	}
	return target.String()
}

// SameOrigin reports whether a and b share scheme, hostname and effective port.
func SameOrigin(a, b *url.URL) bool {
	if !strings.EqualFold(a.Scheme, b.Scheme) {
		return false
	}
	if !strings.EqualFold(a.Hostname(), b.Hostname()) {
		return false
	}
	return effectivePort(a) == effectivePort(b)
}

func effectivePort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}
