package models

import (
	"time"

	"github.com/google/uuid"
)

// EncryptedPayload is the at-rest triple produced by the envelope cipher.
// The three parts are only meaningful together.
type EncryptedPayload struct {
	// Ciphertext is the file content sealed with the per-file content key
	// (AES-256-GCM, tag appended).
	Ciphertext []byte

	// WrappedKey is the content key sealed under the master key,
	// laid out as nonce ‖ ciphertext.
	WrappedKey []byte

	// Nonce is the GCM nonce used with the content key.
	Nonce []byte
}

// IsComplete reports whether every part of the payload is present.
func (p EncryptedPayload) IsComplete() bool {
	return len(p.Ciphertext) > 0 && len(p.WrappedKey) > 0 && len(p.Nonce) > 0
}

// File is an encrypted blob plus its metadata. Files are immutable after
// upload.
type File struct {
	// ID is the unique identifier of the file.
	ID uuid.UUID `json:"id"`

	// UserID references the owner. It becomes NULL when the owner account
	// is deleted; the file stays shareable.
	UserID uuid.NullUUID `json:"user_id"`

	// Filename is the original file name supplied on upload.
	Filename string `json:"filename"`

	// FileType is the MIME type of the plaintext.
	FileType string `json:"file_type"`

	// FileSize is the plaintext size in bytes.
	FileSize int64 `json:"file_size"`

	// EncryptedFile, WrappedKey and Nonce are always written together.
	EncryptedFile []byte `json:"-"`
	WrappedKey    []byte `json:"-"`
	Nonce         []byte `json:"-"`

	// Retained marks a file kept by its owner directly; the reaper never
	// deletes a retained file even when it has no share links left.
	Retained bool `json:"retained"`

	// CreatedAt is the upload time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the File model.
func (f File) TableName() string {
	return "files"
}

// Sealed returns the encrypted triple stored for the file.
func (f File) Sealed() EncryptedPayload {
	return EncryptedPayload{
		Ciphertext: f.EncryptedFile,
		WrappedKey: f.WrappedKey,
		Nonce:      f.Nonce,
	}
}

// IsIntact reports whether the file can be presented for decryption.
func (f File) IsIntact() bool {
	return f.Sealed().IsComplete()
}

// OwnedBy reports whether userID is the current owner of the file.
func (f File) OwnedBy(userID uuid.UUID) bool {
	return f.UserID.Valid && f.UserID.UUID == userID
}

// UploadRequest carries a plaintext upload into the file store.
type UploadRequest struct {
	OwnerID  uuid.UUID
	Filename string
	FileType string
	Content  []byte
	// Retain keeps the file after its last share link is gone.
	Retain bool
}

// DecryptedFile is the plaintext returned to an authorized caller.
type DecryptedFile struct {
	FileID   uuid.UUID
	Filename string
	FileType string
	Content  []byte
}
