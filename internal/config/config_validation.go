// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The server refuses to start
// without a session secret.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.SessionSecret == "":
		return fmt.Errorf("%w: session secret needs to be set", ErrInvalidAppConfigs)
	case app.HashCost < bcrypt.MinCost || app.HashCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: hash cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	case app.SessionDuration <= 0:
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	case app.LockoutDuration <= 0 || app.MaxLoginAttempts <= 0:
		return fmt.Errorf("%w: login throttle limits must be positive", ErrInvalidAppConfigs)
	case app.LoginDelay < 0:
		return fmt.Errorf("%w: login delay must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	srv := cfg.Server
	if srv.HTTPAddress == "" || srv.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if (srv.TLSCertFile == "") != (srv.TLSKeyFile == "") {
		return fmt.Errorf("%w: both TLS certificate and key are required", ErrInvalidServerConfigs)
	}

	return nil
}
