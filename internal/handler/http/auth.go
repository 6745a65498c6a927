package http

import (
	"net/http"

	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/utils"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := parseForm(w, r); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.register").Msg("malformed registration form")
		writeFailure(w, r, err)
		return
	}

	req := registerRequestFromForm(r)
	token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	redirect(w, r, utils.LocalRedirect(req.Redirect, sitesPath))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := parseForm(w, r); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Msg("malformed login form")
		writeFailure(w, r, err)
		return
	}

	req := loginRequestFromForm(r)
	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	redirect(w, r, utils.LocalRedirect(req.Redirect, sitesPath))
}

// logout drops the session cookie. The token itself stays valid until it
// expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.Revoke())
	redirect(w, r, loginPath)
}
