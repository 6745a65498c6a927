package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/site-vault/models"
)

// maxFormBytes bounds the size of a submitted form body.
const maxFormBytes = 64 << 10

// Form field names shared with the presentation layer.
const (
	fieldEmail                = "email"
	fieldPassword             = "password"
	fieldPasswordRepeat       = "passwordRepeat"
	fieldMasterPassword       = "masterPassword"
	fieldMasterPasswordRepeat = "masterPasswordRepeat"
	fieldWebsite              = "website"
	fieldActionType           = "actionType"
	fieldRedirect             = "redirect"
)

const (
	actionDecrypt = "decrypt"
	actionDelete  = "delete"
)

// parseForm reads the url-encoded body and query of r into r.Form.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}
	return nil
}

func registerRequestFromForm(r *http.Request) models.RegisterRequest {
	return models.RegisterRequest{
		Email:                r.Form.Get(fieldEmail),
		Password:             r.Form.Get(fieldPassword),
		PasswordRepeat:       r.Form.Get(fieldPasswordRepeat),
		MasterPassword:       r.Form.Get(fieldMasterPassword),
		MasterPasswordRepeat: r.Form.Get(fieldMasterPasswordRepeat),
		Redirect:             r.Form.Get(fieldRedirect),
	}
}

func loginRequestFromForm(r *http.Request) models.LoginRequest {
	return models.LoginRequest{
		Email:    r.Form.Get(fieldEmail),
		Password: r.Form.Get(fieldPassword),
		Redirect: r.Form.Get(fieldRedirect),
	}
}

func addSiteRequestFromForm(r *http.Request) models.AddSiteRequest {
	return models.AddSiteRequest{
		Website:        r.Form.Get(fieldWebsite),
		Password:       r.Form.Get(fieldPassword),
		MasterPassword: r.Form.Get(fieldMasterPassword),
	}
}

func revealSiteRequestFromForm(r *http.Request, siteID string) models.RevealSiteRequest {
	return models.RevealSiteRequest{
		SiteID:         siteID,
		MasterPassword: r.Form.Get(fieldMasterPassword),
	}
}
