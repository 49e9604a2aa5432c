package service

import (
	"fmt"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/crypto"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
)

type Services struct {
	AuthService      AuthService
	FileService      FileService
	ShareLinkService ShareLinkService
	ListingService   ListingService
}

// NewServices builds the service layer. It fails only when the master key
// in cfg cannot be turned into an envelope cipher.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	masterKey, err := cfg.App.MasterKeyBytes()
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewEnvelopeCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("envelope cipher: %w", err)
	}

	hasher := crypto.NewPasswordHasher(crypto.Argon2Params{
		Time:    cfg.App.Argon2.Time,
		Memory:  cfg.App.Argon2.MemoryKiB,
		Threads: cfg.App.Argon2.Threads,
	})

	fileService := NewFileService(storages.FileRepository, cipher, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		FileService:      fileService,
		ShareLinkService: NewShareLinkService(storages, fileService, cipher, hasher, utils.SystemClock{}, cfg.App, logger),
		ListingService:   NewListingService(storages.ListingRepository, logger),
	}, nil
}
