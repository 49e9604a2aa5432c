package service

import (
	"context"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

type listingService struct {
	listingRepository store.ListingRepository
	logger            *logger.Logger
}

func NewListingService(listingRepository store.ListingRepository, logger *logger.Logger) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		logger:            logger,
	}
}

// ListSent returns the links created on files owned by userID, newest
// first, whatever their state.
func (l *listingService) ListSent(ctx context.Context, userID uuid.UUID, page models.Page) (models.SentFilesPage, error) {
	page, err := normalizePage(userID, page)
	if err != nil {
		return models.SentFilesPage{}, err
	}

	result, err := l.listingRepository.ListSent(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listingService.ListSent").Msg("listing sent files failed")
		return models.SentFilesPage{}, unavailable(err)
	}
	if result.Files == nil {
		result.Files = []models.SendFileDetails{}
	}
	return result, nil
}

// ListReceived returns the live links addressed to userID, newest first.
func (l *listingService) ListReceived(ctx context.Context, userID uuid.UUID, page models.Page) (models.ReceivedFilesPage, error) {
	page, err := normalizePage(userID, page)
	if err != nil {
		return models.ReceivedFilesPage{}, err
	}

	result, err := l.listingRepository.ListReceived(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listingService.ListReceived").Msg("listing received files failed")
		return models.ReceivedFilesPage{}, unavailable(err)
	}
	if result.Files == nil {
		result.Files = []models.ReceiveFileDetails{}
	}
	return result, nil
}

// normalizePage fills in zero values with defaults and rejects anything
// out of bounds.
func normalizePage(userID uuid.UUID, page models.Page) (models.Page, error) {
	if userID == uuid.Nil {
		return models.Page{}, ErrInvalidDataProvided
	}
	if page.Number == 0 {
		page.Number = 1
	}
	if page.Limit == 0 {
		page.Limit = models.DefaultPageLimit
	}
	if page.Number < 1 || page.Number > models.MaxPageNumber ||
		page.Limit < 1 || page.Limit > models.MaxPageLimit {
		return models.Page{}, ErrInvalidPage
	}
	return page, nil
}
