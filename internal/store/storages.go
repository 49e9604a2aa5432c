package store

import "github.com/MKhiriev/go-file-share/internal/logger"

// Storages aggregates every repository backed by one database.
type Storages struct {
	UserRepository      UserRepository
	FileRepository      FileRepository
	ShareLinkRepository ShareLinkRepository
	ListingRepository   ListingRepository
}

// NewStorages builds all repositories over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		FileRepository:      NewFileRepository(db, logger),
		ShareLinkRepository: NewShareLinkRepository(db, logger),
		ListingRepository:   NewListingRepository(db, logger),
	}
}
