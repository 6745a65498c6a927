package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/site-vault/internal/app"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/utils"
	"github.com/MKhiriev/site-vault/models"
)

const (
	loginPath = "/login"
	sitesPath = "/sites"
)

// writeFailure renders err as the JSON result record. Flow errors carry their
// own message and echoed fields; anything else is reported generically.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	result := models.ActionResult{Error: app.MsgOperationFailed}

	var flowErr *service.FlowError
	switch {
	case errors.As(err, &flowErr):
		result = flowErr.Result()
	case errors.Is(err, ErrMalformedForm), errors.Is(err, ErrUnknownAction):
		result.Error = app.MsgIncorrectFormSubmission
	case errors.Is(err, service.ErrNotLoggedIn):
		result.Error = app.MsgNotLoggedIn
	}

	writeJSON(w, r, result, statusFromError(err))
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
