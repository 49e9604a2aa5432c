package store

import (
	"fmt"

	"github.com/MKhiriev/go-file-share/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// liveShareLinkPredicate is the single definition of a redeemable link.
// Authorization selects rows matching it; the reaper deletes rows that do
// not. Both sides evaluate NOW() inside their own transaction.
const liveShareLinkPredicate = `(sl.expires_at IS NULL OR sl.expires_at > NOW()) AND sl.revoked_at IS NULL AND sl.consumed_at IS NULL`

const linkStateExpr = `CASE
		WHEN sl.revoked_at IS NOT NULL THEN 'revoked'
		WHEN sl.consumed_at IS NOT NULL THEN 'consumed'
		WHEN sl.expires_at IS NOT NULL AND sl.expires_at <= NOW() THEN 'expired'
		ELSE 'active'
	END`

const userColumns = `id, username, email, password, public_key, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, username, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUserName = `UPDATE users
    SET username = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	updateUserPassword = `UPDATE users
    SET password = $2, updated_at = NOW()
    WHERE id = $1;`
)

const fileColumns = `id, user_id, file_name, file_type, file_size, encrypted_file, wrapped_key, nonce, retained, created_at`

const (
	saveFile = `INSERT INTO files (
			id,
			user_id,
			file_name,
			file_type,
			file_size,
			encrypted_file,
			wrapped_key,
			nonce,
			retained
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at;`

	getFile = `SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1;`

	getFileForShare = `SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1
		FOR SHARE;`

	deleteFileShareLinks = `DELETE FROM share_links
		WHERE file_id = $1;`

	deleteFile = `DELETE FROM files
		WHERE id = $1;`
)

const shareLinkColumns = `sl.id, sl.file_id, sl.recipient_user_id, sl.password, sl.token, sl.expires_at, sl.created_at, sl.revoked_at, sl.consumed_at`

const (
	createShareLink = `INSERT INTO share_links (
			id,
			file_id,
			recipient_user_id,
			password,
			token,
			expires_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at;`

	getShareLink = `SELECT ` + shareLinkColumns + `
		FROM share_links sl
		WHERE sl.id = $1;`

	// only a live link becomes revoked; revoking twice keeps the first
	// timestamp, expired and consumed links are left untouched
	revokeShareLink = `UPDATE share_links AS sl
		SET revoked_at = COALESCE(sl.revoked_at, NOW())
		WHERE sl.id = $1 AND (sl.revoked_at IS NOT NULL OR (` + liveShareLinkPredicate + `));`

	selectLiveShareLinkForUpdate = `SELECT ` + shareLinkColumns + `
		FROM share_links sl
		WHERE sl.token = $1 AND ` + liveShareLinkPredicate + `
		FOR UPDATE;`

	selectLiveShareLinkForShare = `SELECT ` + shareLinkColumns + `
		FROM share_links sl
		WHERE sl.token = $1 AND ` + liveShareLinkPredicate + `
		FOR SHARE;`

	consumeShareLink = `UPDATE share_links
		SET consumed_at = NOW()
		WHERE id = $1;`

	purgeDeadShareLinks = `DELETE FROM share_links AS sl
		WHERE NOT (` + liveShareLinkPredicate + `)
		RETURNING sl.file_id;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSearchEmailsQuery selects emails starting with prefix. LIKE wildcards
// in prefix are escaped.
func buildSearchEmailsQuery(prefix string, excludeID uuid.UUID, limit int) (string, []any, error) {
	query, args, err := psql.
		Select("email").
		From("users").
		Where(sq.ILike{"email": escapeLike(prefix) + "%"}).
		Where(sq.NotEq{"id": excludeID.String()}).
		OrderBy("email").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListSentQuery selects one page of the links created on files owned
// by userID, newest first.
func buildListSentQuery(userID uuid.UUID, page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(
			"sl.id",
			"f.id",
			"f.file_name",
			"u.email",
			"sl.expires_at",
			"sl.created_at",
			linkStateExpr+" AS state",
		).
		From("share_links sl").
		Join("files f ON f.id = sl.file_id").
		LeftJoin("users u ON u.id = sl.recipient_user_id").
		Where(sq.Eq{"f.user_id": userID.String()}).
		OrderBy("sl.created_at DESC", "sl.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountSentQuery(userID uuid.UUID) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("share_links sl").
		Join("files f ON f.id = sl.file_id").
		Where(sq.Eq{"f.user_id": userID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListReceivedQuery selects one page of the live links addressed to
// userID, newest first.
func buildListReceivedQuery(userID uuid.UUID, page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(
			"sl.id",
			"sl.token",
			"f.id",
			"f.file_name",
			"u.email",
			"sl.expires_at",
			"sl.created_at",
		).
		From("share_links sl").
		Join("files f ON f.id = sl.file_id").
		LeftJoin("users u ON u.id = f.user_id").
		Where(sq.Eq{"sl.recipient_user_id": userID.String()}).
		Where(liveShareLinkPredicate).
		OrderBy("sl.created_at DESC", "sl.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountReceivedQuery(userID uuid.UUID) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("share_links sl").
		Where(sq.Eq{"sl.recipient_user_id": userID.String()}).
		Where(liveShareLinkPredicate).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPurgeOrphanFilesQuery deletes the candidate files that are not
// retained and have no share link left.
func buildPurgeOrphanFilesQuery(fileIDs []uuid.UUID) (string, []any, error) {
	ids := make([]string, 0, len(fileIDs))
	for _, id := range fileIDs {
		ids = append(ids, id.String())
	}

	query, args, err := psql.
		Delete("files").
		Where(sq.Eq{"id": ids}).
		Where("retained = FALSE").
		Where("NOT EXISTS (SELECT 1 FROM share_links sl WHERE sl.file_id = files.id)").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
