package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidForm:             http.StatusBadRequest,
	service.ErrEmailInUse:              http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrLoginLocked:             http.StatusBadRequest,
	service.ErrIncorrectMasterPassword: http.StatusBadRequest,
	service.ErrDecryptionFailed:        http.StatusBadRequest,
	service.ErrCouldNotAddEntry:        http.StatusBadRequest,
	service.ErrSiteNotFound:            http.StatusNotFound,
	service.ErrNotLoggedIn:             http.StatusUnauthorized,
	service.ErrSessionTerminated:       http.StatusUnauthorized,
	service.ErrStorage:                 http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	ErrMalformedForm:                   http.StatusBadRequest,
	ErrUnknownAction:                   http.StatusBadRequest,

	store.ErrSiteSecretNotFound: http.StatusNotFound,
}

// statusFromError returns the status of the sentinel wrapped by err, 500 when
// none matches. A flow error wraps at most one mapped sentinel; low level
// store errors are not mapped and fall through to 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
