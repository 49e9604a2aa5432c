package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// fileRepository is the PostgreSQL-backed implementation of
// [FileRepository] over the "files" table.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by db.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveFile inserts the metadata and the three encrypted parts in one
// statement, so a partially written file is never visible.
func (f *fileRepository) SaveFile(ctx context.Context, file models.File) (models.File, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	err := f.DB.QueryRowContext(ctx, saveFile,
		file.ID,
		file.UserID,
		file.Filename,
		file.FileType,
		file.FileSize,
		file.EncryptedFile,
		file.WrappedKey,
		file.Nonce,
		file.Retained,
	).Scan(&file.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.SaveFile").
			Str("file_id", file.ID.String()).
			Msg("failed to save file")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.File{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		}
		return models.File{}, f.wrapError(ErrExecutingQuery, err)
	}

	return file, nil
}

// GetFile returns the file with its encrypted parts.
// Returns [ErrFileNotFound] when no row matches.
func (f *fileRepository) GetFile(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	file, err := scanFile(f.DB.QueryRowContext(ctx, getFile, fileID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrFileNotFound
		}
		log.Err(err).
			Str("func", "fileRepository.GetFile").
			Str("file_id", fileID.String()).
			Msg("failed to get file")
		return models.File{}, f.wrapError(ErrExecutingQuery, err)
	}

	return file, nil
}

// DeleteFile removes the file's share links, then the file itself.
func (f *fileRepository) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	log := logger.FromContext(ctx).With().
		Str("func", "fileRepository.DeleteFile").
		Str("file_id", fileID.String()).
		Logger()
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return f.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteFileShareLinks, fileID); err != nil {
		log.Err(err).Msg("failed to delete share links of file")
		return f.wrapError(ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, deleteFile, fileID)
	if err != nil {
		log.Err(err).Msg("failed to delete file")
		return f.wrapError(ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return f.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return f.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().Msg("file deleted")
	return nil
}

func scanFile(row rowScanner) (models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.UserID,
		&file.Filename,
		&file.FileType,
		&file.FileSize,
		&file.EncryptedFile,
		&file.WrappedKey,
		&file.Nonce,
		&file.Retained,
		&file.CreatedAt,
	)
	return file, err
}
