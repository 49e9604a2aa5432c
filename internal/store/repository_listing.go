package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// listingRepository builds the sent/received projections with squirrel.
// The count and the page of a listing are read from one snapshot.
type listingRepository struct {
	*DB
	logger *logger.Logger
}

// NewListingRepository constructs a [ListingRepository] backed by db.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	return &listingRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSent returns one page of the links on files owned by userID, in any
// state, newest first, plus the total count.
func (l *listingRepository) ListSent(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "listingRepository.ListSent").
		Str("user_id", userID.String()).
		Logger()

	query, args, err := buildListSentQuery(userID, page)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return models.SentFilesPage{}, err
	}
	countQuery, countArgs, err := buildCountSentQuery(userID)
	if err != nil {
		log.Err(err).Msg("failed to create count query")
		return models.SentFilesPage{}, err
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tx, err := l.beginSnapshot(ctx)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.SentFilesPage{}, err
	}
	defer tx.Rollback()

	var total int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("failed to count sent files")
		return models.SentFilesPage{}, l.wrapError(ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to list sent files")
		return models.SentFilesPage{}, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.SendFileDetails, 0, page.Limit)
	for rows.Next() {
		var item models.SendFileDetails
		if err = rows.Scan(
			&item.LinkID,
			&item.FileID,
			&item.Filename,
			&item.RecipientEmail,
			&item.ExpirationDate,
			&item.CreatedAt,
			&item.State,
		); err != nil {
			log.Err(err).Msg("failed to scan sent file row")
			return models.SentFilesPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files = append(files, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error occurred during rows iteration")
		return models.SentFilesPage{}, l.wrapError(ErrScanningRows, err)
	}
	rows.Close()

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.SentFilesPage{}, l.wrapError(ErrCommitingTransaction, err)
	}

	return models.SentFilesPage{Files: files, Results: total}, nil
}

// ListReceived returns one page of the live links addressed to userID,
// newest first, plus the total count.
func (l *listingRepository) ListReceived(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "listingRepository.ListReceived").
		Str("user_id", userID.String()).
		Logger()

	query, args, err := buildListReceivedQuery(userID, page)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return models.ReceivedFilesPage{}, err
	}
	countQuery, countArgs, err := buildCountReceivedQuery(userID)
	if err != nil {
		log.Err(err).Msg("failed to create count query")
		return models.ReceivedFilesPage{}, err
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tx, err := l.beginSnapshot(ctx)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.ReceivedFilesPage{}, err
	}
	defer tx.Rollback()

	var total int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("failed to count received files")
		return models.ReceivedFilesPage{}, l.wrapError(ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to list received files")
		return models.ReceivedFilesPage{}, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.ReceiveFileDetails, 0, page.Limit)
	for rows.Next() {
		var item models.ReceiveFileDetails
		if err = rows.Scan(
			&item.LinkID,
			&item.Token,
			&item.FileID,
			&item.Filename,
			&item.SenderEmail,
			&item.ExpirationDate,
			&item.CreatedAt,
		); err != nil {
			log.Err(err).Msg("failed to scan received file row")
			return models.ReceivedFilesPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files = append(files, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error occurred during rows iteration")
		return models.ReceivedFilesPage{}, l.wrapError(ErrScanningRows, err)
	}
	rows.Close()

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.ReceivedFilesPage{}, l.wrapError(ErrCommitingTransaction, err)
	}

	return models.ReceivedFilesPage{Files: files, Results: total}, nil
}

// beginSnapshot opens a read-only REPEATABLE READ transaction, so that
// every statement in it sees the same snapshot.
func (l *listingRepository) beginSnapshot(ctx context.Context) (*sql.Tx, error) {
	tx, err := l.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, l.wrapError(ErrBeginningTransaction, err)
	}
	return tx, nil
}
