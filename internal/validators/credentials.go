// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/site-vault/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldPresence requires every form field of the request to be non-empty.
	FieldPresence = "presence"

	// FieldEmail checks the shape of the email address.
	FieldEmail = "email"

	// FieldPasswordRepeat requires the account password to equal its repeat.
	FieldPasswordRepeat = "password_repeat"

	// FieldMasterPasswordRepeat requires the master password to equal its repeat.
	FieldMasterPasswordRepeat = "master_password_repeat"
)

// emailPattern is the WHATWG "valid email address" production as used by
// browsers for <input type="email">.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// CredentialsValidator validates the submitted forms of the auth and site
// flows: RegisterRequest, LoginRequest, AddSiteRequest and RevealSiteRequest.
//
// Rules run in the order of the field arguments and the first failure is
// returned. Without arguments every rule applicable to the type runs.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for any other type.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.AddSiteRequest:
		return v.validateAddSite(value, fields...)
	case *models.AddSiteRequest:
		return v.validateAddSite(*value, fields...)

	case models.RevealSiteRequest:
		return v.validateRevealSite(value, fields...)
	case *models.RevealSiteRequest:
		return v.validateRevealSite(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsValidEmail reports whether email has a valid shape. It does not check
// deliverability.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func (v *CredentialsValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresence, FieldEmail, FieldPasswordRepeat, FieldMasterPasswordRepeat}
	}

	for _, f := range fields {
		switch f {
		case FieldPresence:
			if anyEmpty(r.Email, r.Password, r.PasswordRepeat, r.MasterPassword, r.MasterPasswordRepeat) {
				return ErrMissingField
			}
		case FieldEmail:
			if !IsValidEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPasswordRepeat:
			if r.Password != r.PasswordRepeat {
				return ErrPasswordMismatch
			}
		case FieldMasterPasswordRepeat:
			if r.MasterPassword != r.MasterPasswordRepeat {
				return ErrMasterPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresence, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldPresence:
			if anyEmpty(r.Email, r.Password) {
				return ErrMissingField
			}
		case FieldEmail:
			if !IsValidEmail(r.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateAddSite(r models.AddSiteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresence}
	}

	for _, f := range fields {
		switch f {
		case FieldPresence:
			if anyEmpty(r.Website, r.Password, r.MasterPassword) {
				return ErrMissingField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateRevealSite(r models.RevealSiteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresence}
	}

	for _, f := range fields {
		switch f {
		case FieldPresence:
			if anyEmpty(r.SiteID, r.MasterPassword) {
				return ErrMissingField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func anyEmpty(values ...string) bool {
	for _, s := range values {
		if s == "" {
			return true
		}
	}
	return false
}
