package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingField           = errors.New("required field is missing")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrPasswordMismatch       = errors.New("password and its repeat don't match")
	ErrMasterPasswordMismatch = errors.New("master password and its repeat don't match")
)
