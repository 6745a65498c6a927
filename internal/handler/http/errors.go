// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handlers themselves, before a request reaches
// the service layer. Callers can match against them with [errors.Is].
var (
	// ErrMalformedForm is returned when the request body cannot be parsed as
	// an url-encoded form or exceeds the accepted size.
	ErrMalformedForm = errors.New("malformed form body")

	// ErrUnknownAction is returned when a site form posts an actionType other
	// than "decrypt" or "delete".
	ErrUnknownAction = errors.New("unknown site action")
)
