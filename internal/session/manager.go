// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session issues and validates the stateless session token that
// identifies a logged-in user.
//
// The token is an HS256 JWT carrying only the standard sub (user id), iss,
// iat and exp claims. Nothing is stored on the server: a token is valid iff
// its signature verifies under the server secret, its issuer matches and it
// has not expired. Logout replaces the cookie; an already issued token stays
// valid until its expiry.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/site-vault/models"
)

const (
	DefaultDuration   = time.Hour
	DefaultCookieName = "SITE_VAULT_SESSION"
	DefaultIssuer     = "site-vault"
)

// Config holds the parameters of a [Manager].
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string
	// Issuer is written to and required in the iss claim.
	Issuer string
	// Duration is the absolute token lifetime.
	Duration time.Duration
	// CookieName is the name of the session cookie.
	CookieName string
	// Insecure drops the Secure attribute from the cookie (plain-HTTP dev setups).
	Insecure bool
}

// Manager issues, validates and transports session tokens.
type Manager struct {
	secret     []byte
	issuer     string
	duration   time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

// NewManager validates cfg, fills defaults and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}

	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		duration:   cfg.Duration,
		cookieName: cfg.CookieName,
		secure:     !cfg.Insecure,
		now:        time.Now,
	}, nil
}

// Issue creates a signed token for userID expiring Duration from now.
func (m *Manager) Issue(userID int64) (models.Token, error) {
	now := m.now()
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.RegisteredClaims).SignedString(m.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	token.SignedString = signed

	return token, nil
}

// Parse verifies raw and returns its claims. The signature, algorithm,
// issuer, expiry and a numeric subject are all required.
func (m *Manager) Parse(raw string) (models.Token, error) {
	if raw == "" {
		return models.Token{}, ErrInvalidToken
	}

	token := models.Token{}
	_, err := jwt.ParseWithClaims(raw, &token.RegisteredClaims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return models.Token{}, errors.Join(ErrInvalidToken, err)
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, errors.Join(ErrInvalidToken, err)
	}
	token.UserID = userID
	token.SignedString = raw

	return token, nil
}

// Validate returns the user id carried by raw. Missing, tampered, foreign
// or expired tokens yield ok == false.
func (m *Manager) Validate(raw string) (int64, bool) {
	token, err := m.Parse(raw)
	if err != nil {
		return 0, false
	}
	return token.UserID, true
}

// Duration returns the configured token lifetime.
func (m *Manager) Duration() time.Duration {
	return m.duration
}
