// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-file-share HTTP API.
//
// [ServerAdapter] hides the REST surface from the command-line client. HTTP
// answers are mapped onto the sentinel errors of this package so callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnavailable] for 503
// once retries are exhausted).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// UploadFile is a local file to upload, optionally shared in the same call.
type UploadFile struct {
	Filename string
	Content  []byte
	// Share creates the first share link together with the upload.
	Share bool
	// Retain keeps the file on the server after its links are gone.
	Retain bool
	Link   models.ShareRequest
}

// RetrievedFile is plaintext content returned by the server.
type RetrievedFile struct {
	Filename string
	FileType string
	Content  []byte
}

// ServerAdapter defines communication with the go-file-share server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterUserRequest) (string, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.LoginUserRequest) (string, error)

	// Me returns the authenticated user.
	Me(ctx context.Context) (models.UserResponse, error)

	Upload(ctx context.Context, file UploadFile) (models.UploadResponse, error)
	CreateLink(ctx context.Context, fileID uuid.UUID, req models.ShareRequest) (models.ShareLinkResponse, error)

	// Retrieve redeems a share link. It needs no token.
	Retrieve(ctx context.Context, req models.RetrieveFileRequest) (RetrievedFile, error)

	// Download fetches a file owned by the authenticated user.
	Download(ctx context.Context, fileID uuid.UUID) (RetrievedFile, error)

	DeleteFile(ctx context.Context, fileID uuid.UUID) error
	RevokeLink(ctx context.Context, linkID uuid.UUID) error

	ListSent(ctx context.Context, page models.Page) (models.SentFilesResponse, error)
	ListReceived(ctx context.Context, page models.Page) (models.ReceivedFilesResponse, error)
}
