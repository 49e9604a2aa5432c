// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/jackc/pgx/v5/pgconn"
)

// shareLinkRepository is the PostgreSQL-backed implementation of
// [ShareLinkRepository] over the "share_links" table.
//
// Liveness is always decided by the database clock through
// liveShareLinkPredicate, both when redeeming a link and when purging.
type shareLinkRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareLinkRepository constructs a [ShareLinkRepository] backed by db.
func NewShareLinkRepository(db *DB, logger *logger.Logger) ShareLinkRepository {
	return &shareLinkRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateShareLink inserts a link row.
//
// Error handling:
//   - unique_violation on the token → [ErrShareTokenCollision].
//   - foreign_key_violation on the file → [ErrFileNotFound].
func (s *shareLinkRepository) CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.DB.QueryRowContext(ctx, createShareLink,
		link.ID,
		link.FileID,
		link.RecipientUserID,
		link.PasswordHash,
		link.Token,
		link.ExpiresAt,
	).Scan(&link.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "shareLinkRepository.CreateShareLink").
			Str("file_id", link.FileID.String()).
			Msg("failed to create share link")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ShareLink{}, fmt.Errorf("%w: %w", ErrShareTokenCollision, err)
		case pgerrcode.ForeignKeyViolation:
			if constraint(err) == "share_links_recipient_user_id_fkey" {
				return models.ShareLink{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
			}
			return models.ShareLink{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return models.ShareLink{}, s.wrapError(ErrExecutingQuery, err)
	}

	return link, nil
}

// GetShareLink returns a link by id whatever its state.
func (s *shareLinkRepository) GetShareLink(ctx context.Context, linkID uuid.UUID) (models.ShareLink, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	link, err := scanShareLink(s.DB.QueryRowContext(ctx, getShareLink, linkID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShareLink{}, ErrShareLinkNotFound
		}
		log.Err(err).
			Str("func", "shareLinkRepository.GetShareLink").
			Str("link_id", linkID.String()).
			Msg("failed to get share link")
		return models.ShareLink{}, s.wrapError(ErrExecutingQuery, err)
	}

	return link, nil
}

// RevokeShareLink sets revoked_at on a live link. Revoking an already
// revoked link keeps the first timestamp and succeeds. Unknown, expired and
// consumed links are left as they are and yield [ErrShareLinkNotFound].
func (s *shareLinkRepository) RevokeShareLink(ctx context.Context, linkID uuid.UUID) error {
	log := logger.FromContext(ctx)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.DB.ExecContext(ctx, revokeShareLink, linkID)
	if err != nil {
		log.Err(err).
			Str("func", "shareLinkRepository.RevokeShareLink").
			Str("link_id", linkID.String()).
			Msg("failed to revoke share link")
		return s.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return s.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrShareLinkNotFound
	}

	return nil
}

// WithLiveShareLink implements [ShareLinkRepository].
//
// The link row is locked FOR UPDATE when it is consumed and FOR SHARE
// otherwise, so concurrent multi-use retrievals do not queue behind each
// other. The file is locked FOR SHARE. Either way a concurrent purge or
// revocation waits until fn has returned and the transaction is finished.
func (s *shareLinkRepository) WithLiveShareLink(ctx context.Context, token string, consume bool, fn LiveLinkFunc) error {
	log := logger.FromContext(ctx).With().
		Str("func", "shareLinkRepository.WithLiveShareLink").
		Logger()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return s.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	lockQuery := selectLiveShareLinkForShare
	if consume {
		lockQuery = selectLiveShareLinkForUpdate
	}

	link, err := scanShareLink(tx.QueryRowContext(ctx, lockQuery, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShareLinkNotFound
		}
		log.Err(err).Msg("failed to lock share link")
		return s.wrapError(ErrExecutingQuery, err)
	}

	file, err := scanFile(tx.QueryRowContext(ctx, getFileForShare, link.FileID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShareLinkNotFound
		}
		log.Err(err).Str("link_id", link.ID.String()).Msg("failed to lock shared file")
		return s.wrapError(ErrExecutingQuery, err)
	}

	if err = fn(link, file); err != nil {
		return err
	}

	if consume {
		if _, err = tx.ExecContext(ctx, consumeShareLink, link.ID); err != nil {
			log.Err(err).Str("link_id", link.ID.String()).Msg("failed to consume share link")
			return s.wrapError(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("link_id", link.ID.String()).Msg("failed to commit transaction")
		return s.wrapError(ErrCommitingTransaction, err)
	}

	return nil
}

// PurgeExpired implements [ExpiredLinkPurger]. Rows locked by an in-flight
// retrieval are waited for and re-evaluated after that transaction ends.
func (s *shareLinkRepository) PurgeExpired(ctx context.Context, purgeOrphans bool) (models.SweepResult, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "shareLinkRepository.PurgeExpired").
		Logger()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result models.SweepResult

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.SweepResult{}, s.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, purgeDeadShareLinks)
	if err != nil {
		log.Err(err).Msg("failed to purge share links")
		return models.SweepResult{}, s.wrapError(ErrExecutingQuery, err)
	}

	seen := make(map[uuid.UUID]struct{})
	fileIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var fileID uuid.UUID
		if err = rows.Scan(&fileID); err != nil {
			rows.Close()
			log.Err(err).Msg("failed to scan purged file id")
			return models.SweepResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result.LinksPurged++
		if _, ok := seen[fileID]; !ok {
			seen[fileID] = struct{}{}
			fileIDs = append(fileIDs, fileID)
		}
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		log.Err(err).Msg("error occurred during rows iteration")
		return models.SweepResult{}, s.wrapError(ErrScanningRows, err)
	}
	rows.Close()

	if purgeOrphans && len(fileIDs) > 0 {
		query, args, buildErr := buildPurgeOrphanFilesQuery(fileIDs)
		if buildErr != nil {
			return models.SweepResult{}, buildErr
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).Msg("failed to purge orphan files")
			return models.SweepResult{}, s.wrapError(ErrExecutingStatement, execErr)
		}
		if result.FilesPurged, err = res.RowsAffected(); err != nil {
			return models.SweepResult{}, s.wrapError(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.SweepResult{}, s.wrapError(ErrCommitingTransaction, err)
	}

	return result, nil
}

func scanShareLink(row rowScanner) (models.ShareLink, error) {
	var link models.ShareLink
	err := row.Scan(
		&link.ID,
		&link.FileID,
		&link.RecipientUserID,
		&link.PasswordHash,
		&link.Token,
		&link.ExpiresAt,
		&link.CreatedAt,
		&link.RevokedAt,
		&link.ConsumedAt,
	)
	return link, err
}

func constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
