package crypto

import "github.com/MKhiriev/go-file-share/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeCipher encrypts file contents at rest.
//
// Every call to Encrypt generates a fresh random content key, seals the
// plaintext with it and wraps the content key under the service master key:
//
//	contentKey  = random(32)
//	Ciphertext  = AES-256-GCM(contentKey, Nonce).Seal(plaintext)
//	WrappedKey  = wrapNonce ‖ AES-256-GCM(masterKey, wrapNonce).Seal(contentKey)
//
// Both methods are pure CPU work and safe for concurrent use.
type EnvelopeCipher interface {
	// Encrypt seals plaintext and returns the triple to persist.
	Encrypt(plaintext []byte) (models.EncryptedPayload, error)

	// Decrypt reverses Encrypt. It returns ErrInvalidKey when the wrapped
	// key cannot be unwrapped and ErrAuthenticationFailed when the content
	// does not authenticate. Callers outside the service must not be able
	// to tell the two apart.
	Decrypt(payload models.EncryptedPayload) ([]byte, error)
}

// PasswordHasher hashes share link and account passwords.
type PasswordHasher interface {
	// Hash returns a salted argon2id hash in PHC string format.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. The comparison is
	// constant-time. A malformed encoded value yields ErrMalformedHash.
	Verify(password, encoded string) (bool, error)
}
