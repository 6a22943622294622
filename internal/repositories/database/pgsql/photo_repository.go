package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/models"
	"github.com/mindfulhq/mindful_journal_app/internal/utils/mapping"
)

type PgxPhotoRepository struct {
	BaseRepository
}

// newPgxPhotoRepository creates a new repository for photo data.
func newPgxPhotoRepository(pool *pgxpool.Pool) portsrepo.PhotoRepositoryFacade {
	return &PgxPhotoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PhotoRepositoryFacade = (*PgxPhotoRepository)(nil)

// SavePhoto persists a new photo attached to the given entry.
func (r *PgxPhotoRepository) SavePhoto(ctx context.Context, photo domain.Photo, entryID string) error {
	m := mapping.ToModelPhoto(photo, entryID)

	query := `
		INSERT INTO photos (photo_id, entry_id, image_data, thumbnail_data, caption, taken_at, file_size, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PhotoID,
		m.EntryID,
		m.ImageData,
		m.ThumbnailData,
		m.Caption,
		m.TakenAt,
		m.FileSize,
		m.Width,
		m.Height,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save photo %s: %w", m.PhotoID, err)
	}
	return nil
}

// FindPhotoByID retrieves one photo including its image bytes.
func (r *PgxPhotoRepository) FindPhotoByID(ctx context.Context, photoID string) (*domain.Photo, error) {
	query := `
		SELECT photo_id, entry_id, image_data, thumbnail_data, caption, taken_at, file_size, width, height
		FROM photos
		WHERE photo_id = $1;
	`
	var m models.Photo
	err := r.Pool.QueryRow(ctx, query, photoID).Scan(
		&m.PhotoID,
		&m.EntryID,
		&m.ImageData,
		&m.ThumbnailData,
		&m.Caption,
		&m.TakenAt,
		&m.FileSize,
		&m.Width,
		&m.Height,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find photo %s: %w", photoID, err)
	}

	photo := mapping.ToDomainPhoto(m)
	return &photo, nil
}

// FindPhotosByEntryID retrieves an entry's photos in taken-at order. When
// includeData is false the image and thumbnail bytes are omitted.
func (r *PgxPhotoRepository) FindPhotosByEntryID(ctx context.Context, entryID string, includeData bool) ([]domain.Photo, error) {
	var query string
	if includeData {
		query = `
			SELECT photo_id, entry_id, image_data, thumbnail_data, caption, taken_at, file_size, width, height
			FROM photos
			WHERE entry_id = $1
			ORDER BY taken_at;
		`
	} else {
		query = `
			SELECT photo_id, entry_id, NULL::bytea, NULL::bytea, caption, taken_at, file_size, width, height
			FROM photos
			WHERE entry_id = $1
			ORDER BY taken_at;
		`
	}

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelPhotos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Photo, error) {
		var m models.Photo
		err := row.Scan(
			&m.PhotoID,
			&m.EntryID,
			&m.ImageData,
			&m.ThumbnailData,
			&m.Caption,
			&m.TakenAt,
			&m.FileSize,
			&m.Width,
			&m.Height,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan photos for entry %s: %w", entryID, err)
	}

	return mapping.ToDomainPhotos(modelPhotos), nil
}

// UpdateCaption replaces the caption; nil clears it.
func (r *PgxPhotoRepository) UpdateCaption(ctx context.Context, photoID string, caption *string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE photos SET caption = $2 WHERE photo_id = $1;`, photoID, caption)
	if err != nil {
		return fmt.Errorf("failed to update caption on photo %s: %w", photoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePhoto removes a photo.
func (r *PgxPhotoRepository) DeletePhoto(ctx context.Context, photoID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM photos WHERE photo_id = $1;`, photoID)
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", photoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountPhotos returns the total number of stored photos.
func (r *PgxPhotoRepository) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}
