package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned when a ciphertext or its nonce
	// does not authenticate under the content key.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidKey is returned when a wrapped content key cannot be
	// unwrapped with the master key.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidMasterKey is returned by NewEnvelopeCipher for a key that
	// is not 32 bytes long.
	ErrInvalidMasterKey = errors.New("master key must be 32 bytes")
	// ErrMalformedHash is returned when a stored password hash cannot be
	// parsed.
	ErrMalformedHash = errors.New("malformed password hash")
)
