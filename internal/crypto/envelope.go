// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-file-share/models"
)

// ContentKeySize is the size of a per-file content key (AES-256).
const ContentKeySize = 32

// envelopeCipher is the private implementation of [EnvelopeCipher].
// The master AEAD is built once and never changes afterwards.
type envelopeCipher struct {
	master cipher.AEAD
}

// NewEnvelopeCipher builds an [EnvelopeCipher] around masterKey.
// The key is consumed at construction; the caller may wipe its copy.
func NewEnvelopeCipher(masterKey []byte) (EnvelopeCipher, error) {
	if len(masterKey) != ContentKeySize {
		return nil, ErrInvalidMasterKey
	}

	master, err := newGCM(masterKey)
	if err != nil {
		return nil, fmt.Errorf("create master cipher: %w", err)
	}

	return &envelopeCipher{master: master}, nil
}

// Encrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Encrypt(plaintext []byte) (models.EncryptedPayload, error) {
	contentKey := make([]byte, ContentKeySize)
	if _, err := io.ReadFull(rand.Reader, contentKey); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate content key: %w", err)
	}
	defer wipe(contentKey)

	gcm, err := newGCM(contentKey)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("create content cipher: %w", err)
	}

	nonce, err := randomNonce(gcm)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	wrapNonce, err := randomNonce(e.master)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	// wrapped key layout: wrapNonce ‖ sealed content key
	wrappedKey := append(wrapNonce, e.master.Seal(nil, wrapNonce, contentKey, nil)...)

	return models.EncryptedPayload{
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
		WrappedKey: wrappedKey,
		Nonce:      nonce,
	}, nil
}

// Decrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Decrypt(payload models.EncryptedPayload) ([]byte, error) {
	contentKey, err := e.unwrap(payload.WrappedKey)
	if err != nil {
		return nil, err
	}
	defer wipe(contentKey)

	gcm, err := newGCM(contentKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	if len(payload.Nonce) != gcm.NonceSize() || len(payload.Ciphertext) < gcm.Overhead() {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, payload.Nonce, payload.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func (e *envelopeCipher) unwrap(wrapped []byte) ([]byte, error) {
	nonceSize := e.master.NonceSize()
	if len(wrapped) < nonceSize+e.master.Overhead() {
		return nil, ErrInvalidKey
	}

	nonce, sealed := wrapped[:nonceSize], wrapped[nonceSize:]
	contentKey, err := e.master.Open(nil, nonce, sealed, nil)
	if err != nil || len(contentKey) != ContentKeySize {
		return nil, ErrInvalidKey
	}

	return contentKey, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

func randomNonce(aead cipher.AEAD) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
