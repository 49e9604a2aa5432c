package models

import (
	"time"

	"github.com/google/uuid"
)

// Request bodies accepted by the HTTP API. Field rules are enforced with
// go-playground/validator tags before any service call.

// RegisterUserRequest creates an account.
type RegisterUserRequest struct {
	Username        string `json:"username" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// LoginUserRequest exchanges credentials for a bearer token.
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ShareRequest describes a share link for an already uploaded file, and the
// share part of an upload-and-share form.
type ShareRequest struct {
	// RecipientEmail optionally addresses the link to a registered user.
	RecipientEmail string `json:"recipient_email" validate:"omitempty,email"`
	// Password optionally gates the link.
	Password string `json:"password" validate:"omitempty,min=8,max=128"`
	// ExpirationDate is an RFC 3339 timestamp in the future.
	ExpirationDate *time.Time `json:"expiration_date"`
}

// RetrieveFileRequest redeems a share link.
type RetrieveFileRequest struct {
	SharedID string `json:"shared_id" validate:"required"`
	Password string `json:"password" validate:"max=128"`
}

// PageQuery is the pagination query of listing endpoints.
type PageQuery struct {
	Page  int `validate:"min=1,max=1000000"`
	Limit int `validate:"min=1,max=50"`
}

// NameUpdateRequest changes the display name.
type NameUpdateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// PasswordUpdateRequest changes the account password.
type PasswordUpdateRequest struct {
	OldPassword        string `json:"old_password" validate:"required,min=8"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required,eqfield=NewPassword"`
}

// SearchByEmailRequest looks up registered emails by prefix.
type SearchByEmailRequest struct {
	Query string `validate:"required,max=254"`
}

// Responses.

// StatusResponse is the minimal envelope of every JSON response.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse drops every credential field of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

// FileResponse describes an uploaded file without its content.
type FileResponse struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	Retained  bool      `json:"retained"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFileResponse projects f without its encrypted parts.
func NewFileResponse(f File) FileResponse {
	return FileResponse{
		ID:        f.ID,
		Filename:  f.Filename,
		FileType:  f.FileType,
		FileSize:  f.FileSize,
		Retained:  f.Retained,
		CreatedAt: f.CreatedAt,
	}
}

// ShareLinkResponse describes a freshly created link. SharedID is what the
// recipient presents on retrieval.
type ShareLinkResponse struct {
	LinkID    uuid.UUID  `json:"link_id"`
	FileID    uuid.UUID  `json:"file_id"`
	SharedID  string     `json:"shared_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NewShareLinkResponse projects l for its creator.
func NewShareLinkResponse(l ShareLink) ShareLinkResponse {
	return ShareLinkResponse{
		LinkID:    l.ID,
		FileID:    l.FileID,
		SharedID:  l.Token,
		ExpiresAt: l.ExpiresAt,
	}
}

// UploadResponse answers an upload, optionally with the created link.
type UploadResponse struct {
	Status string             `json:"status"`
	File   FileResponse       `json:"file"`
	Link   *ShareLinkResponse `json:"link,omitempty"`
}

// ShareResponse answers a share request.
type ShareResponse struct {
	Status string            `json:"status"`
	Link   ShareLinkResponse `json:"link"`
}

// SentFilesResponse is a page of the sent projection.
type SentFilesResponse struct {
	Status  string            `json:"status"`
	Files   []SendFileDetails `json:"files"`
	Results int               `json:"results"`
}

// ReceivedFilesResponse is a page of the received projection.
type ReceivedFilesResponse struct {
	Status  string               `json:"status"`
	Files   []ReceiveFileDetails `json:"files"`
	Results int                  `json:"results"`
}

// EmailListResponse answers an email search.
type EmailListResponse struct {
	Status string   `json:"status"`
	Emails []string `json:"emails"`
}

// VersionResponse reports the build of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
