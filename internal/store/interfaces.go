package store

import (
	"context"

	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (models.User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	// SearchEmails returns up to limit emails starting with prefix,
	// excluding the account of the requester.
	SearchEmails(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]string, error)
}

// FileRepository persists encrypted files. It performs no access control.
type FileRepository interface {
	// SaveFile writes the file row with all three encrypted parts in a
	// single statement.
	SaveFile(ctx context.Context, file models.File) (models.File, error)
	GetFile(ctx context.Context, fileID uuid.UUID) (models.File, error)
	// DeleteFile removes the file's share links and then the file in one
	// transaction.
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
}

// LiveLinkFunc runs inside the retrieval transaction while the link row is
// locked. Returning an error rolls the transaction back.
type LiveLinkFunc func(link models.ShareLink, file models.File) error

// ShareLinkRepository persists share links.
type ShareLinkRepository interface {
	CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error)
	GetShareLink(ctx context.Context, linkID uuid.UUID) (models.ShareLink, error)
	RevokeShareLink(ctx context.Context, linkID uuid.UUID) error

	// WithLiveShareLink locks the live link identified by token and its file,
	// calls fn and, when consume is set, marks the link consumed before
	// committing. Liveness is judged by the database clock. A link that is
	// absent or not live yields ErrShareLinkNotFound.
	WithLiveShareLink(ctx context.Context, token string, consume bool, fn LiveLinkFunc) error

	ExpiredLinkPurger
}

// ExpiredLinkPurger deletes share links that are no longer live using the
// same predicate as WithLiveShareLink.
type ExpiredLinkPurger interface {
	// PurgeExpired deletes every link that is not live and, when
	// purgeOrphans is set, the non-retained files left without links.
	PurgeExpired(ctx context.Context, purgeOrphans bool) (models.SweepResult, error)
}

// ListingRepository builds the sent/received projections.
type ListingRepository interface {
	ListSent(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error)
	ListReceived(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error)
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
