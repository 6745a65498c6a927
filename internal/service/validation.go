package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/site-vault/internal/app"
	"github.com/MKhiriev/site-vault/internal/validators"
)

var validationMessages = map[error]string{
	validators.ErrMissingField:           app.MsgIncorrectFormSubmission,
	validators.ErrInvalidEmail:           app.MsgInvalidEmail,
	validators.ErrPasswordMismatch:       app.MsgPasswordMismatch,
	validators.ErrMasterPasswordMismatch: app.MsgMasterPasswordMismatch,
}

// invalidForm maps a validator error to its flow error.
func invalidForm(err error, fields map[string]string) *FlowError {
	message := app.MsgIncorrectFormSubmission
	for target, msg := range validationMessages {
		if errors.Is(err, target) {
			message = msg
			break
		}
	}
	return newFlowError(message, fields, fmt.Errorf("%w: %w", ErrInvalidForm, err))
}

// operationFailed wraps a persistence or infrastructure failure. The cause
// stays available to errors.Is but never reaches the message.
func operationFailed(err error, fields map[string]string) *FlowError {
	return newFlowError(app.MsgOperationFailed, fields, fmt.Errorf("%w: %w", ErrStorage, err))
}
