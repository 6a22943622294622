package mapping

import (
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/models"
)

// ToModelPhoto converts a domain Photo to its database model.
func ToModelPhoto(d domain.Photo, entryID string) models.Photo {
	return models.Photo{
		PhotoID:       d.PhotoID,
		EntryID:       entryID,
		ImageData:     d.ImageData,
		ThumbnailData: d.ThumbnailData,
		Caption:       d.Caption,
		TakenAt:       d.TakenAt,
		FileSize:      d.FileSize,
		Width:         d.Width,
		Height:        d.Height,
	}
}

// ToDomainPhoto converts a database model to a domain Photo.
func ToDomainPhoto(m models.Photo) domain.Photo {
	return domain.Photo{
		PhotoID:       m.PhotoID,
		ImageData:     m.ImageData,
		ThumbnailData: m.ThumbnailData,
		Caption:       m.Caption,
		TakenAt:       m.TakenAt,
		FileSize:      m.FileSize,
		Width:         m.Width,
		Height:        m.Height,
	}
}

// ToDomainPhotos converts a slice of photo models.
func ToDomainPhotos(ms []models.Photo) []domain.Photo {
	photos := make([]domain.Photo, len(ms))
	for i, m := range ms {
		photos[i] = ToDomainPhoto(m)
	}
	return photos
}
