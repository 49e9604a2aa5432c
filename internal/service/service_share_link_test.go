// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/mock"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type shareFixture struct {
	mocks   *storeMocks
	clock   *fakeClock
	cipher  crypto.EnvelopeCipher
	hasher  crypto.PasswordHasher
	service ShareLinkService
}

func newShareFixture(t *testing.T, app config.App) *shareFixture {
	t.Helper()

	m := newStoreMocks(t)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	cipher := newTestCipher(t)
	hasher := crypto.NewPasswordHasher(tinyArgon2)
	files := NewFileService(m.files, cipher, logger.Nop())

	return &shareFixture{
		mocks:   m,
		clock:   clock,
		cipher:  cipher,
		hasher:  hasher,
		service: NewShareLinkService(m.storages, files, cipher, hasher, clock, app, logger.Nop()),
	}
}

// memoryLinks emulates the locking retrieval of the store: a link is handed
// to fn only while it is live at the store clock, and consumption is kept
// only when fn succeeds.
type memoryLinks struct {
	mu    sync.Mutex
	links map[string]*models.ShareLink
	files map[uuid.UUID]models.File
	clock *fakeClock
}

func newMemoryLinks(clock *fakeClock) *memoryLinks {
	return &memoryLinks{
		links: make(map[string]*models.ShareLink),
		files: make(map[uuid.UUID]models.File),
		clock: clock,
	}
}

func (m *memoryLinks) withLive(_ context.Context, token string, consume bool, fn store.LiveLinkFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[token]
	if !ok || link.StateAt(m.clock.Now()) != models.LinkStateActive {
		return store.ErrShareLinkNotFound
	}
	if err := fn(*link, m.files[link.FileID]); err != nil {
		return err
	}
	if consume {
		now := m.clock.Now()
		link.ConsumedAt = &now
	}
	return nil
}

func (f *shareFixture) expectUploadAndShare(t *testing.T, mem *memoryLinks) {
	t.Helper()

	f.mocks.files.EXPECT().SaveFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file models.File) (models.File, error) {
			file.CreatedAt = f.clock.Now()
			mem.files[file.ID] = file
			return file, nil
		})
	f.mocks.files.EXPECT().GetFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (models.File, error) {
			file, ok := mem.files[id]
			if !ok {
				return models.File{}, store.ErrFileNotFound
			}
			return file, nil
		}).AnyTimes()
	f.mocks.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link models.ShareLink) (models.ShareLink, error) {
			link.CreatedAt = f.clock.Now()
			stored := link
			mem.links[link.Token] = &stored
			return link, nil
		})
}

func TestShareLinkService_PasswordProtectedExpiringLink(t *testing.T) {
	f := newShareFixture(t, config.App{LinkPolicy: config.LinkPolicyMultiUse})
	mem := newMemoryLinks(f.clock)
	f.expectUploadAndShare(t, mem)
	f.mocks.links.EXPECT().WithLiveShareLink(gomock.Any(), gomock.Any(), false, gomock.Any()).
		DoAndReturn(mem.withLive).AnyTimes()

	owner := uuid.New()
	content := []byte("%PDF-1.4..")
	expiresAt := f.clock.Now().Add(time.Hour)

	file, link, err := f.service.UploadAndShare(context.Background(),
		models.UploadRequest{OwnerID: owner, Filename: "report.pdf", FileType: "application/pdf", Content: content},
		models.CreateLinkRequest{Password: "s3cr3t", ExpiresAt: &expiresAt},
	)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.Filename)
	assert.Equal(t, int64(len(content)), file.FileSize)
	assert.NotContains(t, string(mem.files[file.ID].EncryptedFile), "%PDF")
	require.NotEmpty(t, link.Token)
	require.True(t, link.HasPassword())
	assert.NotEqual(t, "s3cr3t", *link.PasswordHash)

	t.Run("correct password returns plaintext", func(t *testing.T) {
		got, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "s3cr3t"})
		require.NoError(t, err)
		assert.Equal(t, content, got.Content)
		assert.Equal(t, "report.pdf", got.Filename)
		assert.Equal(t, "application/pdf", got.FileType)
	})

	t.Run("wrong password is denied", func(t *testing.T) {
		_, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "wrong"})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown token is denied", func(t *testing.T) {
		_, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "nope", Password: "s3cr3t"})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("multi-use link serves repeated retrievals", func(t *testing.T) {
		for range 3 {
			_, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "s3cr3t"})
			require.NoError(t, err)
		}
	})

	t.Run("after expiration the link is denied", func(t *testing.T) {
		f.clock.Advance(2 * time.Hour)
		_, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "s3cr3t"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestShareLinkService_SingleUseLink(t *testing.T) {
	f := newShareFixture(t, config.App{LinkPolicy: config.LinkPolicySingleUse})
	mem := newMemoryLinks(f.clock)
	f.expectUploadAndShare(t, mem)
	f.mocks.links.EXPECT().WithLiveShareLink(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(mem.withLive).AnyTimes()

	expiresAt := f.clock.Now().Add(time.Hour)
	_, link, err := f.service.UploadAndShare(context.Background(),
		models.UploadRequest{OwnerID: uuid.New(), Filename: "notes.txt", Content: []byte("once")},
		models.CreateLinkRequest{Password: "letmein!", ExpiresAt: &expiresAt},
	)
	require.NoError(t, err)

	_, err = f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "wrong-one"})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, mem.links[link.Token].ConsumedAt, "failed attempt must not consume the link")

	got, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "letmein!"})
	require.NoError(t, err)
	assert.Equal(t, []byte("once"), got.Content)
	assert.Equal(t, defaultFileType, got.FileType)

	_, err = f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "letmein!"})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestShareLinkService_LinkWithoutPassword(t *testing.T) {
	f := newShareFixture(t, config.App{LinkPolicy: config.LinkPolicyMultiUse})
	mem := newMemoryLinks(f.clock)
	f.expectUploadAndShare(t, mem)
	f.mocks.links.EXPECT().WithLiveShareLink(gomock.Any(), gomock.Any(), false, gomock.Any()).
		DoAndReturn(mem.withLive).AnyTimes()

	expiresAt := f.clock.Now().Add(time.Minute)
	_, link, err := f.service.UploadAndShare(context.Background(),
		models.UploadRequest{OwnerID: uuid.New(), Filename: "open.txt", Content: []byte("public")},
		models.CreateLinkRequest{ExpiresAt: &expiresAt},
	)
	require.NoError(t, err)
	assert.False(t, link.HasPassword())

	got, err := f.service.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: link.Token, Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, []byte("public"), got.Content)
}

func TestShareLinkService_CreateLink(t *testing.T) {
	owner := uuid.New()
	fileID := uuid.New()
	ownedFile := models.File{ID: fileID, UserID: uuid.NullUUID{UUID: owner, Valid: true}, Filename: "a.txt"}

	tests := []struct {
		name    string
		app     config.App
		req     func(now time.Time) models.CreateLinkRequest
		setup   func(m *storeMocks)
		wantErr []error
		check   func(t *testing.T, link models.ShareLink)
	}{
		{
			name: "expiration in the past",
			req: func(now time.Time) models.CreateLinkRequest {
				past := now.Add(-time.Second)
				return models.CreateLinkRequest{FileID: fileID, OwnerID: owner, ExpiresAt: &past}
			},
			wantErr: []error{ErrExpirationNotInFuture},
		},
		{
			name: "expiration equal to now",
			req: func(now time.Time) models.CreateLinkRequest {
				return models.CreateLinkRequest{FileID: fileID, OwnerID: owner, ExpiresAt: &now}
			},
			wantErr: []error{ErrExpirationNotInFuture},
		},
		{
			name: "permanent link while disabled",
			req: func(time.Time) models.CreateLinkRequest {
				return models.CreateLinkRequest{FileID: fileID, OwnerID: owner}
			},
			wantErr: []error{ErrExpirationRequired},
		},
		{
			name: "permanent link while enabled",
			app:  config.App{AllowPermanentLinks: true},
			req: func(time.Time) models.CreateLinkRequest {
				return models.CreateLinkRequest{FileID: fileID, OwnerID: owner}
			},
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
				m.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l models.ShareLink) (models.ShareLink, error) { return l, nil })
			},
			check: func(t *testing.T, link models.ShareLink) {
				assert.Nil(t, link.ExpiresAt)
				assert.Equal(t, fileID, link.FileID)
				assert.False(t, link.RecipientUserID.Valid)
			},
		},
		{
			name: "missing ids",
			req: func(now time.Time) models.CreateLinkRequest {
				later := now.Add(time.Hour)
				return models.CreateLinkRequest{ExpiresAt: &later}
			},
			wantErr: []error{ErrInvalidDataProvided},
		},
		{
			name: "file does not exist",
			req:  validRequest(fileID, owner, ""),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(models.File{}, store.ErrFileNotFound)
			},
			wantErr: []error{ErrFileNotFound},
		},
		{
			name: "requester is not the owner",
			req:  validRequest(fileID, uuid.New(), ""),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
			},
			wantErr: []error{ErrAccessDenied, ErrForbidden},
		},
		{
			name: "unknown recipient",
			req:  validRequest(fileID, owner, "ghost@example.com"),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
				m.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: []error{ErrRecipientNotFound},
		},
		{
			name: "recipient email is normalised",
			req:  validRequest(fileID, owner, "  Bob@Example.com "),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
				m.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").
					Return(models.User{ID: uuid.MustParse("0191e7a0-0000-7000-8000-000000000001")}, nil)
				m.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l models.ShareLink) (models.ShareLink, error) { return l, nil })
			},
			check: func(t *testing.T, link models.ShareLink) {
				require.True(t, link.RecipientUserID.Valid)
				assert.Equal(t, "0191e7a0-0000-7000-8000-000000000001", link.RecipientUserID.UUID.String())
			},
		},
		{
			name: "token collision is retried",
			req:  validRequest(fileID, owner, ""),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
				gomock.InOrder(
					m.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).Return(models.ShareLink{}, store.ErrShareTokenCollision),
					m.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, l models.ShareLink) (models.ShareLink, error) { return l, nil }),
				)
			},
			check: func(t *testing.T, link models.ShareLink) {
				assert.NotEmpty(t, link.Token)
			},
		},
		{
			name: "token collision gives up",
			req:  validRequest(fileID, owner, ""),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(ownedFile, nil)
				m.links.EXPECT().CreateShareLink(gomock.Any(), gomock.Any()).
					Return(models.ShareLink{}, store.ErrShareTokenCollision).Times(tokenAttempts)
			},
			wantErr: []error{store.ErrShareTokenCollision},
		},
		{
			name: "store unavailable",
			req:  validRequest(fileID, owner, ""),
			setup: func(m *storeMocks) {
				m.files.EXPECT().GetFile(gomock.Any(), fileID).
					Return(models.File{}, fmt.Errorf("%w: timeout", store.ErrStoreUnavailable))
			},
			wantErr: []error{ErrServiceUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShareFixture(t, tt.app)
			if tt.setup != nil {
				tt.setup(f.mocks)
			}

			link, err := f.service.CreateLink(context.Background(), tt.req(f.clock.Now()))
			if len(tt.wantErr) > 0 {
				for _, want := range tt.wantErr {
					assert.ErrorIs(t, err, want)
				}
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, link)
			}
		})
	}
}

func validRequest(fileID, owner uuid.UUID, recipient string) func(now time.Time) models.CreateLinkRequest {
	return func(now time.Time) models.CreateLinkRequest {
		later := now.Add(time.Hour)
		return models.CreateLinkRequest{FileID: fileID, OwnerID: owner, RecipientEmail: recipient, ExpiresAt: &later}
	}
}

func TestShareLinkService_AuthorizeAndFetch_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newStoreMocks(t)
	brokenCipher := mock.NewMockEnvelopeCipher(ctrl)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewShareLinkService(m.storages, NewFileService(m.files, brokenCipher, logger.Nop()), brokenCipher,
		crypto.NewPasswordHasher(tinyArgon2), clock, config.App{}, logger.Nop())

	later := clock.Now().Add(time.Hour)
	link := models.ShareLink{ID: uuid.New(), Token: "tok", ExpiresAt: &later}
	file := models.File{ID: uuid.New(), EncryptedFile: []byte{1}, WrappedKey: []byte{2}, Nonce: []byte{3}}

	runFn := func(_ context.Context, _ string, _ bool, fn store.LiveLinkFunc) error {
		return fn(link, file)
	}

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unwrap failure is reported as corruption", func(t *testing.T) {
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).DoAndReturn(runFn)
		brokenCipher.EXPECT().Decrypt(file.Sealed()).Return(nil, crypto.ErrInvalidKey)

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		require.ErrorIs(t, err, ErrFileCorrupted)
		assert.NotErrorIs(t, err, crypto.ErrInvalidKey)
		assert.NotErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("authentication failure is reported as corruption", func(t *testing.T) {
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).DoAndReturn(runFn)
		brokenCipher.EXPECT().Decrypt(file.Sealed()).Return(nil, crypto.ErrAuthenticationFailed)

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		require.ErrorIs(t, err, ErrFileCorrupted)
		assert.NotErrorIs(t, err, crypto.ErrAuthenticationFailed)
	})

	t.Run("incomplete record is corrupted", func(t *testing.T) {
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ bool, fn store.LiveLinkFunc) error {
				return fn(link, models.File{ID: file.ID, EncryptedFile: []byte{1}})
			})

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		assert.ErrorIs(t, err, ErrFileCorrupted)
	})

	t.Run("store unavailable", func(t *testing.T) {
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).
			Return(fmt.Errorf("%w: %w", store.ErrStoreUnavailable, context.DeadlineExceeded))

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		require.ErrorIs(t, err, ErrServiceUnavailable)
		assert.NotErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("service clock past expiry denies", func(t *testing.T) {
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).DoAndReturn(runFn)
		clock.Advance(2 * time.Hour)
		defer clock.Advance(-2 * time.Hour)

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.ErrorIs(t, err, ErrLinkExpired)
	})

	t.Run("revoked link handed out by the store is still denied", func(t *testing.T) {
		revokedAt := clock.Now()
		revoked := link
		revoked.RevokedAt = &revokedAt
		m.links.EXPECT().WithLiveShareLink(gomock.Any(), "tok", false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ bool, fn store.LiveLinkFunc) error {
				return fn(revoked, file)
			})

		_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "tok"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestShareLinkService_Revoke(t *testing.T) {
	owner := uuid.New()
	linkID := uuid.New()
	fileID := uuid.New()
	file := models.File{ID: fileID, UserID: uuid.NullUUID{UUID: owner, Valid: true}}
	// matches the fixture clock
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		requester uuid.UUID
		setup     func(m *storeMocks)
		wantErr   []error
	}{
		{
			name:      "expired link keeps its state",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).
					Return(models.ShareLink{ID: linkID, FileID: fileID, ExpiresAt: &past}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
			},
			wantErr: []error{ErrLinkNotActive},
		},
		{
			name:      "consumed link keeps its state",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).
					Return(models.ShareLink{ID: linkID, FileID: fileID, ConsumedAt: &past}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
			},
			wantErr: []error{ErrLinkNotActive},
		},
		{
			name:      "revoking twice succeeds without a write",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).
					Return(models.ShareLink{ID: linkID, FileID: fileID, RevokedAt: &past}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
			},
		},
		{
			name:      "link stops being live before the update",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).Return(models.ShareLink{ID: linkID, FileID: fileID}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
				m.links.EXPECT().RevokeShareLink(gomock.Any(), linkID).Return(store.ErrShareLinkNotFound)
			},
			wantErr: []error{ErrLinkNotActive},
		},
		{
			name:      "owner revokes",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).Return(models.ShareLink{ID: linkID, FileID: fileID}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
				m.links.EXPECT().RevokeShareLink(gomock.Any(), linkID).Return(nil)
			},
		},
		{
			name:      "unknown link",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).Return(models.ShareLink{}, store.ErrShareLinkNotFound)
			},
			wantErr: []error{ErrAccessDenied, ErrLinkNotFound},
		},
		{
			name:      "non-owner",
			requester: uuid.New(),
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).Return(models.ShareLink{ID: linkID, FileID: fileID}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
			},
			wantErr: []error{ErrAccessDenied, ErrForbidden},
		},
		{
			name:      "store unavailable",
			requester: owner,
			setup: func(m *storeMocks) {
				m.links.EXPECT().GetShareLink(gomock.Any(), linkID).Return(models.ShareLink{ID: linkID, FileID: fileID}, nil)
				m.files.EXPECT().GetFile(gomock.Any(), fileID).Return(file, nil)
				m.links.EXPECT().RevokeShareLink(gomock.Any(), linkID).Return(store.ErrStoreUnavailable)
			},
			wantErr: []error{ErrServiceUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShareFixture(t, config.App{})
			tt.setup(f.mocks)

			err := f.service.Revoke(context.Background(), linkID, tt.requester)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			if errors.Is(err, ErrLinkNotActive) {
				assert.NotErrorIs(t, err, ErrAccessDenied)
			}
		})
	}
}

func TestShareLinkService_UploadAndShare_RemovesFileOnFailure(t *testing.T) {
	f := newShareFixture(t, config.App{})
	owner := uuid.New()
	var saved models.File

	f.mocks.files.EXPECT().SaveFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file models.File) (models.File, error) {
			saved = file
			return file, nil
		})
	f.mocks.files.EXPECT().GetFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (models.File, error) { return saved, nil }).Times(2)
	f.mocks.users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	f.mocks.files.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, saved.ID, id)
			return nil
		})

	later := f.clock.Now().Add(time.Hour)
	_, _, err := f.service.UploadAndShare(context.Background(),
		models.UploadRequest{OwnerID: owner, Filename: "x.bin", Content: []byte{0}},
		models.CreateLinkRequest{RecipientEmail: "nobody@example.com", ExpiresAt: &later},
	)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestShareLinkService_UploadAndShare_RejectsExpirationBeforeStoring(t *testing.T) {
	f := newShareFixture(t, config.App{})
	past := f.clock.Now().Add(-time.Minute)

	_, _, err := f.service.UploadAndShare(context.Background(),
		models.UploadRequest{OwnerID: uuid.New(), Filename: "x.bin", Content: []byte{0}},
		models.CreateLinkRequest{ExpiresAt: &past},
	)
	assert.ErrorIs(t, err, ErrExpirationNotInFuture)
}

func TestTimingEqualizer_HashesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(gomock.Any()).Return("$argon2id$dummy", nil).Times(1)
	hasher.EXPECT().Verify(gomock.Any(), "$argon2id$dummy").Return(false, nil).Times(3)

	eq := newTimingEqualizer(hasher)
	eq.burn("a")
	eq.burn("b")
	eq.burn("")
}

func TestShareLinkService_UnknownTokenBurnsAVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newStoreMocks(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewShareLinkService(m.storages, nil, newTestCipher(t), hasher, &fakeClock{}, config.App{}, logger.Nop())

	m.links.EXPECT().WithLiveShareLink(gomock.Any(), "missing", false, gomock.Any()).Return(store.ErrShareLinkNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("dummy", nil)
	hasher.EXPECT().Verify("guess", "dummy").Return(false, nil)

	_, err := svc.AuthorizeAndFetch(context.Background(), models.RetrieveRequest{Token: "missing", Password: "guess"})
	assert.True(t, errors.Is(err, ErrAccessDenied))
}
