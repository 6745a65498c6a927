// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// NonceSize is the CBC initialisation vector length in bytes. Its hex form
// is always NonceHexLen characters long.
const (
	NonceSize   = aes.BlockSize
	NonceHexLen = NonceSize * 2
)

// envelopeCipher is the AES-256-CBC implementation of [EnvelopeCipher].
type envelopeCipher struct {
	random io.Reader
}

// NewEnvelopeCipher returns an [EnvelopeCipher] reading nonces from
// crypto/rand.
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{random: rand.Reader}
}

func (e *envelopeCipher) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonceGeneration, err)
	}
	return nonce, nil
}

func (e *envelopeCipher) Encrypt(plaintext, key, nonce []byte) ([]byte, error) {
	block, err := newBlock(key, nonce)
	if err != nil {
		return nil, err
	}

	padded := pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, nonce).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

func (e *envelopeCipher) Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	block, err := newBlock(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, nonce).CryptBlocks(padded, ciphertext)

	plaintext, ok := unpad(padded, aes.BlockSize)
	if !ok {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (e *envelopeCipher) Seal(plaintext, key []byte) (string, error) {
	nonce, err := e.GenerateNonce()
	if err != nil {
		return "", err
	}

	ciphertext, err := e.Encrypt(plaintext, key, nonce)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(nonce) + hex.EncodeToString(ciphertext), nil
}

func (e *envelopeCipher) Open(combined string, key []byte) ([]byte, error) {
	if len(combined) <= NonceHexLen {
		return nil, ErrDecryptionFailed
	}

	nonce, err := hex.DecodeString(combined[:NonceHexLen])
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	ciphertext, err := hex.DecodeString(combined[NonceHexLen:])
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return e.Decrypt(ciphertext, key, nonce)
}

func newBlock(key, nonce []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}
	return aes.NewCipher(key)
}

// pad appends PKCS#7 padding. A full block is added when data is aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}

	return data[:len(data)-n], true
}
