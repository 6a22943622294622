package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// Stored images are capped at maxImageDimension on the longer side and
// re-encoded as JPEG; thumbnails get a smaller cap and stronger compression.
const (
	maxImageDimension    = 2048
	thumbnailDimension   = 300
	imageJPEGQuality     = 80
	thumbnailJPEGQuality = 70
)

type PhotoService struct {
	photoRepo portsrepo.PhotoRepositoryFacade
	entryRepo portsrepo.EntryRepositoryFacade
}

func NewPhotoService(photoRepo portsrepo.PhotoRepositoryFacade, entryRepo portsrepo.EntryRepositoryFacade) *PhotoService {
	return &PhotoService{photoRepo: photoRepo, entryRepo: entryRepo}
}

// processImage normalizes an uploaded image: EXIF orientation applied,
// downscaled to fit the stored bounds, re-encoded as JPEG.
func processImage(data []byte) (full []byte, thumb []byte, width, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: cannot decode image: %v", apperrors.ErrValidation, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
		bounds = img.Bounds()
	}

	full, err = encodeJPEG(img, imageJPEGQuality)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	thumbImg := imaging.Fit(img, thumbnailDimension, thumbnailDimension, imaging.Lanczos)
	thumb, err = encodeJPEG(thumbImg, thumbnailJPEGQuality)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	return full, thumb, bounds.Dx(), bounds.Dy(), nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *PhotoService) AttachPhoto(ctx context.Context, entryID string, imageData []byte, caption *string, takenAt time.Time) (*domain.Photo, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: image data must not be empty", apperrors.ErrValidation)
	}

	// The entry must exist before we do the expensive image work.
	if _, err := s.entryRepo.FindEntryByID(ctx, entryID); err != nil {
		return nil, fmt.Errorf("failed to load entry %s: %w", entryID, err)
	}

	full, thumb, width, height, err := processImage(imageData)
	if err != nil {
		return nil, err
	}

	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}

	photo := domain.Photo{
		PhotoID:       uuid.NewString(),
		ImageData:     full,
		ThumbnailData: thumb,
		Caption:       caption,
		TakenAt:       takenAt,
		FileSize:      int64(len(full)),
		Width:         width,
		Height:        height,
	}

	if err := s.photoRepo.SavePhoto(ctx, photo, entryID); err != nil {
		logger.Error("Failed to save photo", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	logger.Info("Photo attached",
		slog.String("photo_id", photo.PhotoID),
		slog.String("entry_id", entryID),
		slog.Int64("file_size", photo.FileSize),
		slog.Int("width", width),
		slog.Int("height", height),
	)
	return &photo, nil
}

func (s *PhotoService) GetPhotoByID(ctx context.Context, photoID string) (*domain.Photo, error) {
	photo, err := s.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo %s: %w", photoID, err)
	}
	return photo, nil
}

func (s *PhotoService) GetPhotosByEntryID(ctx context.Context, entryID string) ([]domain.Photo, error) {
	photos, err := s.photoRepo.FindPhotosByEntryID(ctx, entryID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get photos for entry %s: %w", entryID, err)
	}
	if photos == nil {
		return []domain.Photo{}, nil
	}
	return photos, nil
}

func (s *PhotoService) GetImage(ctx context.Context, photoID string) ([]byte, error) {
	photo, err := s.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo %s: %w", photoID, err)
	}
	return photo.ImageData, nil
}

func (s *PhotoService) GetThumbnail(ctx context.Context, photoID string) ([]byte, error) {
	photo, err := s.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo %s: %w", photoID, err)
	}
	// Photos stored before thumbnail generation carry no thumbnail bytes.
	if len(photo.ThumbnailData) == 0 {
		return photo.ImageData, nil
	}
	return photo.ThumbnailData, nil
}

func (s *PhotoService) UpdateCaption(ctx context.Context, photoID string, caption *string) (*domain.Photo, error) {
	if err := s.photoRepo.UpdateCaption(ctx, photoID, caption); err != nil {
		return nil, fmt.Errorf("failed to update caption on photo %s: %w", photoID, err)
	}
	photo, err := s.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload photo %s: %w", photoID, err)
	}
	return photo, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, photoID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.photoRepo.DeletePhoto(ctx, photoID); err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", photoID, err)
	}
	logger.Info("Photo deleted", slog.String("photo_id", photoID))
	return nil
}
