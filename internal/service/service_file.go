package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

const defaultFileType = "application/octet-stream"

type fileService struct {
	fileRepository store.FileRepository
	cipher         crypto.EnvelopeCipher
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewFileService builds the file store over fileRepository. Content is
// sealed with cipher before it reaches the repository.
func NewFileService(fileRepository store.FileRepository, cipher crypto.EnvelopeCipher, logger *logger.Logger) FileService {
	return &fileService{
		fileRepository: fileRepository,
		cipher:         cipher,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Store encrypts req.Content and persists the file in one write.
func (f *fileService) Store(ctx context.Context, req models.UploadRequest) (models.File, error) {
	log := logger.FromContext(ctx)

	filename := strings.TrimSpace(req.Filename)
	if req.OwnerID == uuid.Nil || filename == "" {
		return models.File{}, ErrInvalidDataProvided
	}
	if len(req.Content) == 0 {
		return models.File{}, ErrEmptyFile
	}

	fileType := req.FileType
	if fileType == "" {
		fileType = defaultFileType
	}

	payload, err := f.cipher.Encrypt(req.Content)
	if err != nil {
		log.Err(err).Str("func", "fileService.Store").Msg("encryption failed")
		return models.File{}, fmt.Errorf("encryption failed: %w", err)
	}

	saved, err := f.fileRepository.SaveFile(ctx, models.File{
		ID:            f.ids.Generate(),
		UserID:        uuid.NullUUID{UUID: req.OwnerID, Valid: true},
		Filename:      filename,
		FileType:      fileType,
		FileSize:      int64(len(req.Content)),
		EncryptedFile: payload.Ciphertext,
		WrappedKey:    payload.WrappedKey,
		Nonce:         payload.Nonce,
		Retained:      req.Retain,
	})
	if err != nil {
		log.Err(err).Str("func", "fileService.Store").Str("owner_id", req.OwnerID.String()).Msg("saving file failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.File{}, ErrUserNotFound
		}
		return models.File{}, unavailable(err)
	}

	log.Info().Str("file_id", saved.ID.String()).Int64("size", saved.FileSize).Msg("file stored")
	return saved, nil
}

// Load returns the encrypted file record.
func (f *fileService) Load(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	file, err := f.fileRepository.GetFile(ctx, fileID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.File{}, ErrFileNotFound
		}
		return models.File{}, unavailable(err)
	}
	return file, nil
}

// Delete removes the file and every share link on it. Only the owner may
// delete.
func (f *fileService) Delete(ctx context.Context, fileID, requesterID uuid.UUID) error {
	file, err := f.ownedFile(ctx, fileID, requesterID)
	if err != nil {
		return err
	}

	if err = f.fileRepository.DeleteFile(ctx, file.ID); err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return unavailable(err)
	}

	logger.FromContext(ctx).Info().Str("file_id", file.ID.String()).Msg("file deleted")
	return nil
}

// Download decrypts a file for its owner.
func (f *fileService) Download(ctx context.Context, fileID, requesterID uuid.UUID) (models.DecryptedFile, error) {
	file, err := f.ownedFile(ctx, fileID, requesterID)
	if err != nil {
		return models.DecryptedFile{}, err
	}

	return decryptFile(ctx, f.cipher, file)
}

func (f *fileService) ownedFile(ctx context.Context, fileID, requesterID uuid.UUID) (models.File, error) {
	file, err := f.Load(ctx, fileID)
	if err != nil {
		return models.File{}, err
	}
	if !file.OwnedBy(requesterID) {
		logger.FromContext(ctx).Warn().
			Str("file_id", fileID.String()).
			Str("requester_id", requesterID.String()).
			Msg("file access by non-owner")
		return models.File{}, denied(ErrForbidden)
	}
	return file, nil
}

// decryptFile refuses incomplete records and hides the cryptographic reason
// of a failure behind ErrFileCorrupted.
func decryptFile(ctx context.Context, cipher crypto.EnvelopeCipher, file models.File) (models.DecryptedFile, error) {
	log := logger.FromContext(ctx)

	if !file.IsIntact() {
		log.Error().Str("file_id", file.ID.String()).Msg("file record is missing encrypted parts")
		return models.DecryptedFile{}, ErrFileCorrupted
	}

	plaintext, err := cipher.Decrypt(file.Sealed())
	if err != nil {
		log.Err(err).Str("file_id", file.ID.String()).Msg("file failed to decrypt")
		return models.DecryptedFile{}, fmt.Errorf("%w: %w", ErrFileCorrupted, err)
	}

	return models.DecryptedFile{
		FileID:   file.ID,
		Filename: file.Filename,
		FileType: file.FileType,
		Content:  plaintext,
	}, nil
}
