package session

import (
	"net/http"

	"github.com/MKhiriev/site-vault/models"
)

// Cookie wraps token in the session cookie. MaxAge matches the token
// lifetime so the browser drops the cookie when the token expires.
func (m *Manager) Cookie(token models.Token) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(m.duration.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Revoke returns an immediately expiring replacement for the session cookie.
func (m *Manager) Revoke() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// FromRequest reads and validates the session cookie of r.
func (m *Manager) FromRequest(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return 0, false
	}
	return m.Validate(cookie.Value)
}
