package service

import (
	"errors"

	"github.com/MKhiriev/site-vault/models"
)

var (
	ErrInvalidForm             = errors.New("invalid form submission")
	ErrEmailInUse              = errors.New("email already in use")
	ErrWeakPassword            = errors.New("password too weak")
	ErrInvalidCredentials      = errors.New("incorrect email or password")
	ErrLoginLocked             = errors.New("login temporarily disabled")
	ErrIncorrectMasterPassword = errors.New("incorrect master password")
	ErrSiteNotFound            = errors.New("site not found")
	ErrDecryptionFailed        = errors.New("decryption failed")
	ErrCouldNotAddEntry        = errors.New("couldn't add entry")
	ErrStorage                 = errors.New("storage operation failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotLoggedIn means there is no usable session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionTerminated means the session user could not be read and the
	// session must be dropped.
	ErrSessionTerminated = errors.New("session terminated")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// FlowError is a recoverable flow failure carrying the message shown to the
// user and the echoed form input. Err classifies the failure for errors.Is.
type FlowError struct {
	Message string
	Fields  map[string]string
	Err     error
}

func newFlowError(message string, fields map[string]string, err error) *FlowError {
	return &FlowError{Message: message, Fields: fields, Err: err}
}

// Error returns the user-facing message.
func (e *FlowError) Error() string {
	return e.Message
}

// Unwrap returns the classifying error.
func (e *FlowError) Unwrap() error {
	return e.Err
}

// Result converts the failure into the plain result record.
func (e *FlowError) Result() models.ActionResult {
	return models.ActionResult{Error: e.Message, Fields: e.Fields}
}
