package service

import (
	"context"

	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// AuthService manages accounts and bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) (models.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) error
	SearchEmails(ctx context.Context, requesterID uuid.UUID, query string) ([]string, error)
}

// FileService encrypts, stores and removes files. Store and Load perform no
// access control; Delete and Download are owner-only.
type FileService interface {
	Store(ctx context.Context, req models.UploadRequest) (models.File, error)
	Load(ctx context.Context, fileID uuid.UUID) (models.File, error)
	Delete(ctx context.Context, fileID, requesterID uuid.UUID) error
	Download(ctx context.Context, fileID, requesterID uuid.UUID) (models.DecryptedFile, error)
}

// ShareLinkService issues, redeems and revokes share links.
type ShareLinkService interface {
	CreateLink(ctx context.Context, req models.CreateLinkRequest) (models.ShareLink, error)
	AuthorizeAndFetch(ctx context.Context, req models.RetrieveRequest) (models.DecryptedFile, error)
	Revoke(ctx context.Context, linkID, requesterID uuid.UUID) error

	// UploadAndShare stores a file and creates its first link. The file is
	// removed again if the link cannot be created.
	UploadAndShare(ctx context.Context, upload models.UploadRequest, share models.CreateLinkRequest) (models.File, models.ShareLink, error)
}

// ListingService serves the sent and received projections.
type ListingService interface {
	ListSent(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error)
	ListReceived(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error)
}
