package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/utils"
)

const siteIDParam = "siteID"

func (h *Handler) listSites(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	overview, err := h.services.SiteService.ListSites(r.Context(), user)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, overview, http.StatusOK)
}

func (h *Handler) addSite(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	secret, err := h.services.SiteService.AddSite(r.Context(), user, addSiteRequestFromForm(r))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	redirect(w, r, sitesPath+"/"+secret.ID)
}

// getSite renders one site. Unknown and foreign ids go back to the listing.
func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	summary, err := h.services.SiteService.GetSite(r.Context(), user, chi.URLParam(r, siteIDParam))
	if errors.Is(err, service.ErrSiteNotFound) {
		redirect(w, r, sitesPath)
		return
	}
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, summary, http.StatusOK)
}

// siteAction dispatches the site form on its actionType field.
func (h *Handler) siteAction(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	siteID := chi.URLParam(r, siteIDParam)

	switch r.Form.Get(fieldActionType) {
	case actionDecrypt:
		result, err := h.services.SiteService.RevealSite(r.Context(), user, revealSiteRequestFromForm(r, siteID))
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeJSON(w, r, result, http.StatusOK)
	case actionDelete:
		if err := h.services.SiteService.DeleteSite(r.Context(), user, siteID); err != nil {
			writeFailure(w, r, err)
			return
		}
		redirect(w, r, sitesPath)
	default:
		writeFailure(w, r, ErrUnknownAction)
	}
}
