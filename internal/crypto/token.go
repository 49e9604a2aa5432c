package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// ShareTokenSize is the entropy of a share link token in bytes.
const ShareTokenSize = 32

// RandomToken returns n random bytes encoded as unpadded base64url.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
