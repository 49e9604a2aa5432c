package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/store"
)

func denied(reason error) error {
	return fmt.Errorf("%w: %w", ErrAccessDenied, reason)
}

// unavailable turns a transient store failure into ErrServiceUnavailable
// and leaves any other error untouched.
func unavailable(err error) error {
	if errors.Is(err, store.ErrStoreUnavailable) {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return err
}

// timingEqualizer runs a password verification against a throwaway hash so
// that "no such link", "no password set" and "wrong password" cost the same.
type timingEqualizer struct {
	hasher crypto.PasswordHasher
	once   sync.Once
	hash   string
}

func newTimingEqualizer(hasher crypto.PasswordHasher) *timingEqualizer {
	return &timingEqualizer{hasher: hasher}
}

func (t *timingEqualizer) burn(password string) {
	t.once.Do(func() {
		t.hash, _ = t.hasher.Hash("go-file-share:equalizer")
	})
	if t.hash != "" {
		_, _ = t.hasher.Verify(password, t.hash)
	}
}
