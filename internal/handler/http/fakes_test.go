package http

import (
	"context"

	"github.com/MKhiriev/go-file-share/internal/service"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// ---- Fake: AuthService ----

type fakeAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginUserRequest) (models.User, error)
	parseTokenFn     func(ctx context.Context, token string) (models.Token, error)
	getUserFn        func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateNameFn     func(ctx context.Context, userID uuid.UUID, name string) (models.User, error)
	updatePasswordFn func(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) error
	searchEmailsFn   func(ctx context.Context, userID uuid.UUID, query string) ([]string, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{ID: uuid.New(), Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{ID: uuid.New(), Email: req.Email}, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-" + user.Email, UserID: user.ID}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, token)
	}
	if token != validToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testUserID}, nil
}

func (f *fakeAuthService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if f.getUserFn != nil {
		return f.getUserFn(ctx, userID)
	}
	return models.User{ID: userID}, nil
}

func (f *fakeAuthService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (models.User, error) {
	if f.updateNameFn != nil {
		return f.updateNameFn(ctx, userID, name)
	}
	return models.User{ID: userID, Username: name}, nil
}

func (f *fakeAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, userID, req)
	}
	return nil
}

func (f *fakeAuthService) SearchEmails(ctx context.Context, userID uuid.UUID, query string) ([]string, error) {
	if f.searchEmailsFn != nil {
		return f.searchEmailsFn(ctx, userID, query)
	}
	return nil, nil
}

// ---- Fake: FileService ----

type fakeFileService struct {
	storeFn    func(ctx context.Context, req models.UploadRequest) (models.File, error)
	deleteFn   func(ctx context.Context, fileID, requesterID uuid.UUID) error
	downloadFn func(ctx context.Context, fileID, requesterID uuid.UUID) (models.DecryptedFile, error)
}

func (f *fakeFileService) Store(ctx context.Context, req models.UploadRequest) (models.File, error) {
	if f.storeFn != nil {
		return f.storeFn(ctx, req)
	}
	return models.File{ID: uuid.New(), Filename: req.Filename, FileSize: int64(len(req.Content)), Retained: req.Retain}, nil
}

func (f *fakeFileService) Load(_ context.Context, fileID uuid.UUID) (models.File, error) {
	return models.File{ID: fileID}, nil
}

func (f *fakeFileService) Delete(ctx context.Context, fileID, requesterID uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, fileID, requesterID)
	}
	return nil
}

func (f *fakeFileService) Download(ctx context.Context, fileID, requesterID uuid.UUID) (models.DecryptedFile, error) {
	if f.downloadFn != nil {
		return f.downloadFn(ctx, fileID, requesterID)
	}
	return models.DecryptedFile{FileID: fileID}, nil
}

// ---- Fake: ShareLinkService ----

type fakeShareLinkService struct {
	createLinkFn     func(ctx context.Context, req models.CreateLinkRequest) (models.ShareLink, error)
	fetchFn          func(ctx context.Context, req models.RetrieveRequest) (models.DecryptedFile, error)
	revokeFn         func(ctx context.Context, linkID, requesterID uuid.UUID) error
	uploadAndShareFn func(ctx context.Context, upload models.UploadRequest, share models.CreateLinkRequest) (models.File, models.ShareLink, error)
}

func (f *fakeShareLinkService) CreateLink(ctx context.Context, req models.CreateLinkRequest) (models.ShareLink, error) {
	if f.createLinkFn != nil {
		return f.createLinkFn(ctx, req)
	}
	return models.ShareLink{ID: uuid.New(), FileID: req.FileID, Token: "tok", ExpiresAt: req.ExpiresAt}, nil
}

func (f *fakeShareLinkService) AuthorizeAndFetch(ctx context.Context, req models.RetrieveRequest) (models.DecryptedFile, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx, req)
	}
	return models.DecryptedFile{}, service.ErrAccessDenied
}

func (f *fakeShareLinkService) Revoke(ctx context.Context, linkID, requesterID uuid.UUID) error {
	if f.revokeFn != nil {
		return f.revokeFn(ctx, linkID, requesterID)
	}
	return nil
}

func (f *fakeShareLinkService) UploadAndShare(ctx context.Context, upload models.UploadRequest, share models.CreateLinkRequest) (models.File, models.ShareLink, error) {
	if f.uploadAndShareFn != nil {
		return f.uploadAndShareFn(ctx, upload, share)
	}
	file := models.File{ID: uuid.New(), Filename: upload.Filename}
	return file, models.ShareLink{ID: uuid.New(), FileID: file.ID, Token: "tok", ExpiresAt: share.ExpiresAt}, nil
}

// ---- Fake: ListingService ----

type fakeListingService struct {
	sentFn     func(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error)
	receivedFn func(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error)
}

func (f *fakeListingService) ListSent(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error) {
	if f.sentFn != nil {
		return f.sentFn(ctx, userID, page)
	}
	return models.SentFilesPage{Files: []models.SendFileDetails{}}, nil
}

func (f *fakeListingService) ListReceived(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error) {
	if f.receivedFn != nil {
		return f.receivedFn(ctx, userID, page)
	}
	return models.ReceivedFilesPage{Files: []models.ReceiveFileDetails{}}, nil
}
