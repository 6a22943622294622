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

type PgxTagRepository struct {
	BaseRepository
}

// newPgxTagRepository creates a new repository for tag data.
func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

// SaveTag persists a new tag. Tag names are unique.
func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)

	query := `INSERT INTO tags (tag_id, name, color) VALUES ($1, $2, $3);`
	_, err := r.Pool.Exec(ctx, query, m.TagID, m.Name, m.Color)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("tag name %q: %w", m.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save tag %s: %w", m.TagID, err)
	}
	return nil
}

// FindTagByID retrieves one tag.
func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	query := `SELECT tag_id, name, color FROM tags WHERE tag_id = $1;`

	var m models.Tag
	err := r.Pool.QueryRow(ctx, query, tagID).Scan(&m.TagID, &m.Name, &m.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag %s: %w", tagID, err)
	}

	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

// ListTags retrieves all tags ordered by name.
func (r *PgxTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.Pool.Query(ctx, `SELECT tag_id, name, color FROM tags ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	modelTags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tag, error) {
		var m models.Tag
		err := row.Scan(&m.TagID, &m.Name, &m.Color)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags: %w", err)
	}

	return mapping.ToDomainTags(modelTags), nil
}

// FindTagsByEntryID retrieves the tags linked to an entry in link order.
func (r *PgxTagRepository) FindTagsByEntryID(ctx context.Context, entryID string) ([]domain.Tag, error) {
	query := `
		SELECT t.tag_id, t.name, t.color
		FROM entry_tags et
		JOIN tags t ON t.tag_id = et.tag_id
		WHERE et.entry_id = $1
		ORDER BY et.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelTags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tag, error) {
		var m models.Tag
		err := row.Scan(&m.TagID, &m.Name, &m.Color)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags for entry %s: %w", entryID, err)
	}

	return mapping.ToDomainTags(modelTags), nil
}

// DeleteTag removes a tag; its entry links go with it via cascade.
func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tags WHERE tag_id = $1;`, tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", tagID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
