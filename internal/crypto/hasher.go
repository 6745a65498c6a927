package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultHashCost is the bcrypt work factor used for stored credentials.
	DefaultHashCost = 13

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
)

// credentialHasher is the bcrypt/SHA-256 implementation of [CredentialHasher].
type credentialHasher struct {
	cost int
}

// NewCredentialHasher returns a [CredentialHasher] using the given bcrypt
// cost. Costs outside bcrypt's accepted range fall back to DefaultHashCost.
func NewCredentialHasher(cost int) CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &credentialHasher{cost: cost}
}

func (h *credentialHasher) HashForStorage(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	return string(hash), nil
}

func (h *credentialHasher) Verify(secret, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}

func (h *credentialHasher) DeriveKeyMaterial(secret string) [KeySize]byte {
	return sha256.Sum256([]byte(secret))
}
