package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkState is the state of a share link computed at read time.
type LinkState string

const (
	// LinkStateActive links can be redeemed.
	LinkStateActive LinkState = "active"
	// LinkStateExpired links are past their expiration but not yet purged.
	LinkStateExpired LinkState = "expired"
	// LinkStateRevoked links were withdrawn by the file owner.
	LinkStateRevoked LinkState = "revoked"
	// LinkStateConsumed links were redeemed under the single-use policy.
	LinkStateConsumed LinkState = "consumed"
)

// ShareLink is an access grant over exactly one File.
type ShareLink struct {
	// ID is the internal identifier, used by the owner to revoke the link.
	ID uuid.UUID `json:"id"`

	// FileID references the shared file.
	FileID uuid.UUID `json:"file_id"`

	// RecipientUserID is set when the link was addressed to an account.
	// It drives the "received files" listing.
	RecipientUserID uuid.NullUUID `json:"recipient_user_id"`

	// PasswordHash is the argon2id hash of the link password, if any.
	PasswordHash *string `json:"-"`

	// Token is the opaque, unguessable public identifier of the link.
	Token string `json:"token"`

	// ExpiresAt is nil only for permanent links.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the ShareLink model.
func (l ShareLink) TableName() string {
	return "share_links"
}

// HasPassword reports whether the link is password-gated.
func (l ShareLink) HasPassword() bool {
	return l.PasswordHash != nil && *l.PasswordHash != ""
}

// StateAt returns the state of the link at the given instant.
// Revocation and consumption take precedence over expiration.
func (l ShareLink) StateAt(now time.Time) LinkState {
	switch {
	case l.RevokedAt != nil:
		return LinkStateRevoked
	case l.ConsumedAt != nil:
		return LinkStateConsumed
	case l.ExpiresAt != nil && !now.Before(*l.ExpiresAt):
		return LinkStateExpired
	default:
		return LinkStateActive
	}
}

// CreateLinkRequest describes a new share link.
type CreateLinkRequest struct {
	FileID uuid.UUID
	// OwnerID is the authenticated requester; only the file owner may share.
	OwnerID uuid.UUID
	// RecipientEmail optionally addresses the link to a registered user.
	RecipientEmail string
	// Password optionally gates the link. Never stored in plaintext.
	Password string
	// ExpiresAt must lie in the future; nil requests a permanent link.
	ExpiresAt *time.Time
}

// RetrieveRequest is a recipient's attempt to redeem a link.
type RetrieveRequest struct {
	Token    string
	Password string
}
