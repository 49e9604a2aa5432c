package service

import "errors"

// Validation errors. The caller sent something the service refuses; they
// are reported back as-is and never retried.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrExpirationNotInFuture is returned when a link expiration is not
	// strictly after the current time.
	ErrExpirationNotInFuture = errors.New("expiration must be in the future")

	// ErrExpirationRequired is returned for a link without expiration while
	// permanent links are disabled.
	ErrExpirationRequired = errors.New("expiration is required")

	ErrRecipientNotFound = errors.New("recipient not found")
	ErrInvalidPage       = errors.New("invalid page parameters")
	ErrEmptyFile         = errors.New("file is empty")
)

// Authentication and account errors.
var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailTaken              = errors.New("email already registered")
	ErrUserNotFound            = errors.New("user not found")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ErrAccessDenied is the only error a caller sees when a share link or a
// file cannot be accessed. The reason it wraps is for logs.
var ErrAccessDenied = errors.New("access denied")

// Reasons wrapped by ErrAccessDenied.
var (
	ErrLinkNotFound    = errors.New("share link not found")
	ErrLinkExpired     = errors.New("share link expired")
	ErrInvalidPassword = errors.New("invalid link password")
	ErrForbidden       = errors.New("requester does not own the file")
)

// ErrLinkNotActive is returned to the owner revoking a link that already
// expired or was consumed. Such a link keeps its state.
var ErrLinkNotActive = errors.New("share link is no longer active")

// ErrFileNotFound is returned to the owner of a file that does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileCorrupted hides every cryptographic failure from the caller.
var ErrFileCorrupted = errors.New("file is corrupted")

// ErrServiceUnavailable reports a transient store failure; the caller may
// retry.
var ErrServiceUnavailable = errors.New("service unavailable")
