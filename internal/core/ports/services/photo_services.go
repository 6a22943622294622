package services

import (
	"context"
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// PhotoReaderSvc defines read operations for photos
type PhotoReaderSvc interface {
	// GetPhotoByID retrieves a photo including its image bytes.
	GetPhotoByID(ctx context.Context, photoID string) (*domain.Photo, error)

	// GetPhotosByEntryID retrieves photo metadata for an entry.
	GetPhotosByEntryID(ctx context.Context, entryID string) ([]domain.Photo, error)

	// GetImage returns the full-size JPEG bytes of a photo.
	GetImage(ctx context.Context, photoID string) ([]byte, error)

	// GetThumbnail returns the thumbnail JPEG bytes of a photo.
	GetThumbnail(ctx context.Context, photoID string) ([]byte, error)
}

// PhotoWriterSvc defines write operations for photos
type PhotoWriterSvc interface {
	// AttachPhoto processes the uploaded image and stores it on the entry.
	AttachPhoto(ctx context.Context, entryID string, imageData []byte, caption *string, takenAt time.Time) (*domain.Photo, error)

	// UpdateCaption changes or clears a photo caption.
	UpdateCaption(ctx context.Context, photoID string, caption *string) (*domain.Photo, error)

	// DeletePhoto removes a photo.
	DeletePhoto(ctx context.Context, photoID string) error
}

// PhotoSvcFacade combines all photo-related service interfaces
type PhotoSvcFacade interface {
	PhotoReaderSvc
	PhotoWriterSvc
}
