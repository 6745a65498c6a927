// Package crypto protects the credentials held by the vault.
//
// Two independent roles live here and must not be conflated:
//
//	CredentialHasher  bcrypt hashes for stored account/master passwords,
//	                  plus a fast SHA-256 digest used only as cipher key material.
//	EnvelopeCipher    AES-256-CBC encryption of a single site secret under a
//	                  fresh 16-byte nonce, persisted as hex(nonce)||hex(ciphertext).
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CredentialHasher hashes and verifies secrets.
type CredentialHasher interface {
	// HashForStorage returns a salted bcrypt hash of secret.
	HashForStorage(secret string) (string, error)

	// Verify reports whether secret matches storedHash. Any failure of the
	// underlying hash library, including a malformed hash, yields false.
	Verify(secret, storedHash string) bool

	// DeriveKeyMaterial returns the SHA-256 digest of secret. It is a fast
	// deterministic digest intended only for symmetric key derivation.
	DeriveKeyMaterial(secret string) [KeySize]byte
}

// EnvelopeCipher encrypts and decrypts a single site secret.
type EnvelopeCipher interface {
	// GenerateNonce returns NonceSize bytes from a CSPRNG.
	GenerateNonce() ([]byte, error)

	// Encrypt encrypts plaintext with AES-256-CBC and PKCS#7 padding.
	Encrypt(plaintext, key, nonce []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Invalid lengths, malformed padding and wrong
	// keys all surface as ErrDecryptionFailed.
	Decrypt(ciphertext, key, nonce []byte) ([]byte, error)

	// Seal generates a nonce, encrypts plaintext and returns the persisted
	// representation: lowercase hex nonce immediately followed by lowercase
	// hex ciphertext.
	Seal(plaintext, key []byte) (string, error)

	// Open splits a value produced by Seal and decrypts it.
	Open(combined string, key []byte) ([]byte, error)
}
