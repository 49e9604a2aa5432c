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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PublicKey, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser persists a new user record and returns the canonical database
// representation of the account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Transient failures → [ErrStoreUnavailable].
//   - Any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Username, user.Email, user.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered with email.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// UpdateUserName changes the display name and returns the updated user.
func (r *userRepository) UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.UpdateUserName", updateUserName, userID, name)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUserPassword stores a new password hash.
func (r *userRepository) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, updateUserPassword, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Str("user_id", userID.String()).Msg("error updating password")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// SearchEmails implements [UserRepository].
func (r *userRepository) SearchEmails(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchEmailsQuery(prefix, excludeID, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchEmails").Msg("failed to create query")
		return nil, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchEmails").Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	emails := make([]string, 0, limit)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return emails, nil
}
