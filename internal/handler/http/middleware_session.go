package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/utils"
)

// requireUser resolves the session cookie to the account behind it and stores
// the account in the request context.
//
// Requests without a usable session are sent to the login page with the
// original path as the redirect parameter. When the account cannot be read
// the cookie is cleared and the user has to log in again.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := h.sessions.FromRequest(r)
		if !ok {
			redirect(w, r, loginRedirect(r))
			return
		}

		user, err := h.services.AuthService.CurrentUser(r.Context(), userID)
		switch {
		case errors.Is(err, service.ErrNotLoggedIn):
			log.Debug().Int64("user_id", userID).Msg("session user does not exist")
			redirect(w, r, loginRedirect(r))
			return
		case err != nil:
			log.Warn().Err(err).Int64("user_id", userID).Msg("session terminated")
			http.SetCookie(w, h.sessions.Revoke())
			redirect(w, r, loginPath)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

func loginRedirect(r *http.Request) string {
	return loginPath + "?" + url.Values{fieldRedirect: {r.URL.RequestURI()}}.Encode()
}
