// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the site-vault
// flows.
//
// Messages are written into the "error" member of the JSON result record.
// Authentication messages are intentionally generic: they never reveal
// whether the email or the password was wrong.
package app

const (
	// MsgIncorrectFormSubmission is returned when a required form field is
	// missing or empty.
	MsgIncorrectFormSubmission = "Incorrect form submission."

	// MsgInvalidEmail is returned when the email fails the shape check.
	MsgInvalidEmail = "Invalid email address form."

	// MsgPasswordMismatch is returned when the account password and its
	// repeat differ.
	MsgPasswordMismatch = "Password and its repeat don't match."

	// MsgMasterPasswordMismatch is returned when the master password and its
	// repeat differ.
	MsgMasterPasswordMismatch = "Master password and its repeat don't match."

	// MsgEmailInUse is returned when registering an email that already has
	// an account.
	MsgEmailInUse = "Email already in use."

	// MsgPasswordTooWeakFmt formats the strength estimator reason for an
	// account or site password.
	MsgPasswordTooWeakFmt = "Password too weak: %s."

	// MsgMasterPasswordTooWeakFmt formats the strength estimator reason for a
	// master password.
	MsgMasterPasswordTooWeakFmt = "Master password too weak: %s."

	// MsgIncorrectCredentials is returned for an unknown email or a wrong
	// account password.
	MsgIncorrectCredentials = "Incorrect email or password."

	// MsgLoginLocked is returned while the account is locked.
	MsgLoginLocked = "Login temporarily disabled after exceeding the number of incorrect attempts."

	// MsgLoginJustLockedFmt is returned by the failure that applied the lock.
	// The argument is the lockout duration in minutes.
	MsgLoginJustLockedFmt = "Too many incorrect attempts. Login disabled for %d minutes."

	// MsgIncorrectMasterPassword is returned when the master password does
	// not verify.
	MsgIncorrectMasterPassword = "Incorrect master password."

	// MsgCouldNotAddEntry is returned when a site secret cannot be stored.
	MsgCouldNotAddEntry = "Couldn't add entry."

	// MsgNotLoggedIn is returned by site flows without an active session.
	MsgNotLoggedIn = "Not logged in."

	// MsgSiteNotFound is returned for unknown or foreign site ids.
	MsgSiteNotFound = "Site not found."

	// MsgDecryptionFailed is returned when a stored secret cannot be
	// decrypted.
	MsgDecryptionFailed = "Decryption failed."

	// MsgOperationFailed is returned for persistence failures.
	MsgOperationFailed = "Operation failed."
)
