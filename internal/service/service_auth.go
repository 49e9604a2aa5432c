package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

// searchEmailsLimit bounds the result of SearchEmails.
const searchEmailsLimit = 10

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates
// and the JWT token lifecycle, using a UserRepository for persistence and
// argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes and verifies account passwords.
	hasher crypto.PasswordHasher

	// equalizer keeps failed logins of unknown emails as slow as wrong
	// passwords.
	equalizer *timingEqualizer

	// ids issues identifiers for new accounts.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		equalizer:      newTimingEqualizer(hasher),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is normalised to lower case and the password is stored as an
// argon2id hash.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a field is empty or the confirmation differs.
//   - ErrEmailTaken if the email is already registered.
//   - ErrServiceUnavailable on a transient store failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if strings.TrimSpace(req.Username) == "" || email == "" || req.Password == "" || req.Password != req.PasswordConfirm {
		log.Error().Str("func", "authService.RegisterUser").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Str("func", "authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, unavailable(fmt.Errorf("user creation ended with error: %w", err))
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials
// and take the same time.
func (a *authService) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.equalizer.burn(req.Password)
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, unavailable(fmt.Errorf("user search by email failed: %w", err))
	}

	ok, err := a.hasher.Verify(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", foundUser.ID.String()).Msg("stored password hash is unreadable")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("func", "authService.Login").Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser returns the account of userID.
func (a *authService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, a.userError(err)
	}
	return user, nil
}

// UpdateName changes the display name of userID.
func (a *authService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.UpdateUserName(ctx, userID, name)
	if err != nil {
		return models.User{}, a.userError(err)
	}
	return user, nil
}

// UpdatePassword replaces the password of userID once the old one has been
// verified.
func (a *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || req.NewPassword == "" || req.NewPassword != req.NewPasswordConfirm {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return a.userError(err)
	}

	ok, err := a.hasher.Verify(req.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		log.Info().Str("func", "authService.UpdatePassword").Str("user_id", userID.String()).Msg("old password does not match")
		return ErrInvalidCredentials
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdateUserPassword(ctx, userID, hash); err != nil {
		return a.userError(err)
	}
	return nil
}

// SearchEmails returns registered emails starting with query, excluding the
// requester's own.
func (a *authService) SearchEmails(ctx context.Context, requesterID uuid.UUID, query string) ([]string, error) {
	query = normalizeEmail(query)
	if query == "" {
		return nil, ErrInvalidDataProvided
	}

	emails, err := a.userRepository.SearchEmails(ctx, query, requesterID, searchEmailsLimit)
	if err != nil {
		return nil, unavailable(err)
	}
	return emails, nil
}

func (a *authService) userError(err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	return unavailable(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
