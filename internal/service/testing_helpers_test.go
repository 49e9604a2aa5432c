package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/mock"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// tinyArgon2 keeps hashing fast in tests.
var tinyArgon2 = crypto.Argon2Params{Time: 1, Memory: 64, Threads: 1}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCipher(t *testing.T) crypto.EnvelopeCipher {
	t.Helper()
	cipher, err := crypto.NewEnvelopeCipher(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return cipher
}

type storeMocks struct {
	users      *mock.MockUserRepository
	files      *mock.MockFileRepository
	links      *mock.MockShareLinkRepository
	listings   *mock.MockListingRepository
	storages   *store.Storages
	controller *gomock.Controller
}

func newStoreMocks(t *testing.T) *storeMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		users:      mock.NewMockUserRepository(ctrl),
		files:      mock.NewMockFileRepository(ctrl),
		links:      mock.NewMockShareLinkRepository(ctrl),
		listings:   mock.NewMockListingRepository(ctrl),
		controller: ctrl,
	}
	m.storages = &store.Storages{
		UserRepository:      m.users,
		FileRepository:      m.files,
		ShareLinkRepository: m.links,
		ListingRepository:   m.listings,
	}
	return m
}
