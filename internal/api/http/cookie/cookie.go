// Package cookie carries session tokens in an HttpOnly cookie.
package cookie

import (
	"net/http"
	"time"
)

// Manager sets, reads and clears the session cookie.
type Manager struct {
	name     string
	secure   bool
	sameSite http.SameSite
}

func NewManager(name string, secure bool, sameSite http.SameSite) *Manager {
	return &Manager{
		name:     name,
		secure:   secure,
		sameSite: sameSite,
	}
}

// Set writes token with a max age of ttl.
func (m *Manager) Set(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Clear instructs the client to drop the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Token returns the session token from the cookie, or from an
// "Authorization: Bearer" header when the cookie is absent.
func (m *Manager) Token(r *http.Request) string {
	if c, err := r.Cookie(m.name); err == nil && c.Value != "" {
		return c.Value
	}

	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
