// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// tokenAttempts bounds retries after a share token collision.
const tokenAttempts = 3

// shareLinkService is the share link state machine.
//
// Liveness of a link is decided twice while it is redeemed: by the store,
// which only hands out rows matching the live predicate at the database
// clock and keeps them locked, and by StateAt against the service clock.
// Either check failing denies access.
type shareLinkService struct {
	shareLinkRepository store.ShareLinkRepository
	fileRepository      store.FileRepository
	userRepository      store.UserRepository
	fileService         FileService

	cipher    crypto.EnvelopeCipher
	hasher    crypto.PasswordHasher
	equalizer *timingEqualizer
	newToken  func(n int) (string, error)
	ids       *utils.UUIDGenerator
	clock     utils.Clock

	singleUse      bool
	allowPermanent bool

	logger *logger.Logger
}

// NewShareLinkService wires the share link manager. cfg selects the link
// policy and whether permanent links are accepted.
func NewShareLinkService(
	storages *store.Storages,
	fileService FileService,
	cipher crypto.EnvelopeCipher,
	hasher crypto.PasswordHasher,
	clock utils.Clock,
	cfg config.App,
	logger *logger.Logger,
) ShareLinkService {
	return &shareLinkService{
		shareLinkRepository: storages.ShareLinkRepository,
		fileRepository:      storages.FileRepository,
		userRepository:      storages.UserRepository,
		fileService:         fileService,
		cipher:              cipher,
		hasher:              hasher,
		equalizer:           newTimingEqualizer(hasher),
		newToken:            crypto.RandomToken,
		ids:                 utils.NewUUIDGenerator(),
		clock:               clock,
		singleUse:           cfg.SingleUseLinks(),
		allowPermanent:      cfg.AllowPermanentLinks,
		logger:              logger,
	}
}

// CreateLink grants access to a file owned by req.OwnerID.
//
// Returns:
//   - ErrExpirationNotInFuture / ErrExpirationRequired for a bad expiration.
//   - ErrFileNotFound when the file does not exist.
//   - ErrAccessDenied (ErrForbidden) when the requester is not the owner.
//   - ErrRecipientNotFound when RecipientEmail matches no account.
func (s *shareLinkService) CreateLink(ctx context.Context, req models.CreateLinkRequest) (models.ShareLink, error) {
	log := logger.FromContext(ctx)

	if req.FileID == uuid.Nil || req.OwnerID == uuid.Nil {
		return models.ShareLink{}, ErrInvalidDataProvided
	}
	if err := s.checkExpiration(req.ExpiresAt); err != nil {
		return models.ShareLink{}, err
	}

	file, err := s.fileRepository.GetFile(ctx, req.FileID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.ShareLink{}, ErrFileNotFound
		}
		return models.ShareLink{}, unavailable(err)
	}
	if !file.OwnedBy(req.OwnerID) {
		log.Warn().
			Str("func", "shareLinkService.CreateLink").
			Str("file_id", file.ID.String()).
			Str("requester_id", req.OwnerID.String()).
			Msg("share attempt by non-owner")
		return models.ShareLink{}, denied(ErrForbidden)
	}

	link := models.ShareLink{
		ID:        s.ids.Generate(),
		FileID:    file.ID,
		ExpiresAt: req.ExpiresAt,
	}

	if req.RecipientEmail != "" {
		recipient, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(req.RecipientEmail))
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return models.ShareLink{}, ErrRecipientNotFound
			}
			return models.ShareLink{}, unavailable(err)
		}
		link.RecipientUserID = uuid.NullUUID{UUID: recipient.ID, Valid: true}
	}

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			log.Err(err).Str("func", "shareLinkService.CreateLink").Msg("link password hashing failed")
			return models.ShareLink{}, fmt.Errorf("link password hashing failed: %w", err)
		}
		link.PasswordHash = &hash
	}

	for attempt := 1; ; attempt++ {
		link.Token, err = s.newToken(crypto.ShareTokenSize)
		if err != nil {
			return models.ShareLink{}, fmt.Errorf("share token generation failed: %w", err)
		}

		created, err := s.shareLinkRepository.CreateShareLink(ctx, link)
		if err == nil {
			log.Info().
				Str("link_id", created.ID.String()).
				Str("file_id", created.FileID.String()).
				Bool("password", created.HasPassword()).
				Msg("share link created")
			return created, nil
		}

		switch {
		case errors.Is(err, store.ErrShareTokenCollision) && attempt < tokenAttempts:
			log.Warn().Int("attempt", attempt).Msg("share token collision, regenerating")
			continue
		case errors.Is(err, store.ErrFileNotFound):
			return models.ShareLink{}, ErrFileNotFound
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.ShareLink{}, ErrRecipientNotFound
		}
		return models.ShareLink{}, unavailable(err)
	}
}

// AuthorizeAndFetch redeems a link and returns the decrypted file.
//
// The link and its file stay locked while the password is checked and the
// content decrypted. Under the single-use policy the link is consumed in
// the same transaction, so bytes are returned only if the consumption
// commits. Every denial is reported as ErrAccessDenied.
func (s *shareLinkService) AuthorizeAndFetch(ctx context.Context, req models.RetrieveRequest) (models.DecryptedFile, error) {
	log := logger.FromContext(ctx)

	if req.Token == "" {
		return models.DecryptedFile{}, ErrInvalidDataProvided
	}

	var fetched models.DecryptedFile
	err := s.shareLinkRepository.WithLiveShareLink(ctx, req.Token, s.singleUse, func(link models.ShareLink, file models.File) error {
		if err := s.checkPassword(link, req.Password); err != nil {
			return err
		}
		if state := link.StateAt(s.clock.Now()); state != models.LinkStateActive {
			return denied(ErrLinkExpired)
		}

		decrypted, err := decryptFile(ctx, s.cipher, file)
		if err != nil {
			return err
		}
		fetched = decrypted
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrShareLinkNotFound):
			s.equalizer.burn(req.Password)
			err = denied(ErrLinkNotFound)
		case errors.Is(err, ErrFileCorrupted):
			log.Error().Str("func", "shareLinkService.AuthorizeAndFetch").Msg("shared file is corrupted")
			return models.DecryptedFile{}, ErrFileCorrupted
		}

		if errors.Is(err, ErrAccessDenied) {
			log.Info().Err(err).Str("func", "shareLinkService.AuthorizeAndFetch").Msg("retrieval denied")
			return models.DecryptedFile{}, err
		}
		log.Err(err).Str("func", "shareLinkService.AuthorizeAndFetch").Msg("retrieval failed")
		return models.DecryptedFile{}, unavailable(err)
	}

	log.Info().Str("file_id", fetched.FileID.String()).Bool("single_use", s.singleUse).Msg("shared file retrieved")
	return fetched, nil
}

// Revoke withdraws an active link. Only the owner of the file may revoke.
// Revoking twice succeeds; an expired or consumed link is refused with
// [ErrLinkNotActive] and keeps its state.
func (s *shareLinkService) Revoke(ctx context.Context, linkID, requesterID uuid.UUID) error {
	log := logger.FromContext(ctx)

	link, err := s.shareLinkRepository.GetShareLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			return denied(ErrLinkNotFound)
		}
		return unavailable(err)
	}

	file, err := s.fileRepository.GetFile(ctx, link.FileID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return denied(ErrLinkNotFound)
		}
		return unavailable(err)
	}
	if !file.OwnedBy(requesterID) {
		log.Warn().
			Str("func", "shareLinkService.Revoke").
			Str("link_id", linkID.String()).
			Str("requester_id", requesterID.String()).
			Msg("revoke attempt by non-owner")
		return denied(ErrForbidden)
	}

	switch link.StateAt(s.clock.Now()) {
	case models.LinkStateRevoked:
		return nil
	case models.LinkStateExpired, models.LinkStateConsumed:
		log.Info().Str("link_id", linkID.String()).Msg("revoke refused: link is no longer active")
		return ErrLinkNotActive
	}

	if err = s.shareLinkRepository.RevokeShareLink(ctx, linkID); err != nil {
		// the link stopped being live after it was read
		if errors.Is(err, store.ErrShareLinkNotFound) {
			return ErrLinkNotActive
		}
		return unavailable(err)
	}

	log.Info().Str("link_id", linkID.String()).Msg("share link revoked")
	return nil
}

// UploadAndShare implements [ShareLinkService].
func (s *shareLinkService) UploadAndShare(ctx context.Context, upload models.UploadRequest, share models.CreateLinkRequest) (models.File, models.ShareLink, error) {
	// reject a bad expiration before anything is written
	if err := s.checkExpiration(share.ExpiresAt); err != nil {
		return models.File{}, models.ShareLink{}, err
	}

	file, err := s.fileService.Store(ctx, upload)
	if err != nil {
		return models.File{}, models.ShareLink{}, err
	}

	share.FileID = file.ID
	share.OwnerID = upload.OwnerID

	link, err := s.CreateLink(ctx, share)
	if err != nil {
		if !upload.Retain {
			if delErr := s.fileService.Delete(ctx, file.ID, upload.OwnerID); delErr != nil {
				logger.FromContext(ctx).Err(delErr).
					Str("func", "shareLinkService.UploadAndShare").
					Str("file_id", file.ID.String()).
					Msg("failed to remove file after link creation failed")
			}
		}
		return models.File{}, models.ShareLink{}, err
	}

	return file, link, nil
}

func (s *shareLinkService) checkExpiration(expiresAt *time.Time) error {
	if expiresAt == nil {
		if s.allowPermanent {
			return nil
		}
		return ErrExpirationRequired
	}
	if !expiresAt.After(s.clock.Now()) {
		return ErrExpirationNotInFuture
	}
	return nil
}

// checkPassword always performs one verification so that links with and
// without a password answer in the same time.
func (s *shareLinkService) checkPassword(link models.ShareLink, attempt string) error {
	if !link.HasPassword() {
		s.equalizer.burn(attempt)
		return nil
	}

	ok, err := s.hasher.Verify(attempt, *link.PasswordHash)
	if err != nil {
		return denied(fmt.Errorf("%w: %w", ErrInvalidPassword, err))
	}
	if !ok {
		return denied(ErrInvalidPassword)
	}
	return nil
}
