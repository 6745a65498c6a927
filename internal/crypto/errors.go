// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned for every decryption failure. Callers
	// cannot tell a wrong key from corrupted data.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrNonceGeneration is returned when the random source fails.
	ErrNonceGeneration = errors.New("nonce generation failed")

	// ErrHashingFailed is returned when bcrypt refuses to hash a secret
	// (for example, one longer than 72 bytes).
	ErrHashingFailed = errors.New("hashing failed")
)
