// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext means an authorized route ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)

// Request decoding errors. All of them are answered with 400.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidID         = errors.New("invalid identifier")
	ErrInvalidForm       = errors.New("invalid multipart form")
	ErrMissingFile       = errors.New("file is required")
	ErrInvalidExpiration = errors.New("expiration_date must be an RFC 3339 timestamp")
	ErrInvalidQuery      = errors.New("invalid query parameters")
	ErrUploadTooLarge    = errors.New("file is too large")
)
