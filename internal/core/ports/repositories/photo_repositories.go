package repositories

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// PhotoRepositoryFacade defines persistence operations for entry photos.
// Image bytes are heavy, so reads distinguish between metadata-only and
// full-data fetches.
type PhotoRepositoryFacade interface {
	// SavePhoto persists a new photo attached to the given entry.
	SavePhoto(ctx context.Context, photo domain.Photo, entryID string) error

	// FindPhotoByID retrieves one photo including its image bytes.
	FindPhotoByID(ctx context.Context, photoID string) (*domain.Photo, error)

	// FindPhotosByEntryID retrieves an entry's photos in taken-at order.
	// When includeData is false the image and thumbnail bytes are omitted.
	FindPhotosByEntryID(ctx context.Context, entryID string, includeData bool) ([]domain.Photo, error)

	// UpdateCaption replaces the caption; nil clears it.
	UpdateCaption(ctx context.Context, photoID string, caption *string) error

	// DeletePhoto removes a photo.
	DeletePhoto(ctx context.Context, photoID string) error

	// CountPhotos returns the total number of stored photos.
	CountPhotos(ctx context.Context) (int64, error)
}
