package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/models"
	"github.com/mindfulhq/mindful_journal_app/internal/utils/mapping"
	"github.com/mindfulhq/mindful_journal_app/internal/utils/pagination"
)

// pgErrForeignKeyViolation and pgErrUniqueViolation are the PostgreSQL error
// codes the repositories translate into application errors.
const (
	pgErrForeignKeyViolation = "23503"
	pgErrUniqueViolation     = "23505"
)

// entryColumns is the column list shared by every entry SELECT.
const entryColumns = `entry_id, title, content, created_at, modified_at, is_favorite, word_count,
	mood, latitude, longitude, place_name, city, country,
	weather_condition, temperature_celsius, humidity, wind_speed, weather_observed_at`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.Title,
		&m.Content,
		&m.CreatedAt,
		&m.ModifiedAt,
		&m.IsFavorite,
		&m.WordCount,
		&m.Mood,
		&m.Latitude,
		&m.Longitude,
		&m.PlaceName,
		&m.City,
		&m.Country,
		&m.WeatherCondition,
		&m.TemperatureCelsius,
		&m.Humidity,
		&m.WindSpeed,
		&m.WeatherObservedAt,
	)
	return m, err
}

// SaveEntry persists a new entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelEntry(entry)

	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Title,
		m.Content,
		m.CreatedAt,
		m.ModifiedAt,
		m.IsFavorite,
		m.WordCount,
		m.Mood,
		m.Latitude,
		m.Longitude,
		m.PlaceName,
		m.City,
		m.Country,
		m.WeatherCondition,
		m.TemperatureCelsius,
		m.Humidity,
		m.WindSpeed,
		m.WeatherObservedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("entry %s: %w", m.EntryID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save entry %s: %w", m.EntryID, err)
	}
	return nil
}

// UpdateEntry updates an existing entry's scalar fields.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelEntry(entry)

	query := `
		UPDATE journal_entries SET
			title = $2,
			content = $3,
			modified_at = $4,
			is_favorite = $5,
			word_count = $6,
			mood = $7,
			latitude = $8,
			longitude = $9,
			place_name = $10,
			city = $11,
			country = $12,
			weather_condition = $13,
			temperature_celsius = $14,
			humidity = $15,
			wind_speed = $16,
			weather_observed_at = $17
		WHERE entry_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Title,
		m.Content,
		m.ModifiedAt,
		m.IsFavorite,
		m.WordCount,
		m.Mood,
		m.Latitude,
		m.Longitude,
		m.PlaceName,
		m.City,
		m.Country,
		m.WeatherCondition,
		m.TemperatureCelsius,
		m.Humidity,
		m.WindSpeed,
		m.WeatherObservedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry; photos and tag links go with it via cascade.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetFavorite flips the favorite flag and bumps the modification time.
func (r *PgxEntryRepository) SetFavorite(ctx context.Context, entryID string, favorite bool, modifiedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE journal_entries SET is_favorite = $2, modified_at = $3 WHERE entry_id = $1;`,
		entryID, favorite, modifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set favorite on entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddTagToEntry links a tag to an entry. Adding an already-linked tag is a no-op.
func (r *PgxEntryRepository) AddTagToEntry(ctx context.Context, entryID, tagID string, modifiedAt time.Time) error {
	query := `
		INSERT INTO entry_tags (entry_id, tag_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (entry_id, tag_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, entryID, tagID, modifiedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to link tag %s to entry %s: %w", tagID, entryID, err)
	}

	_, err = r.Pool.Exec(ctx, `UPDATE journal_entries SET modified_at = $2 WHERE entry_id = $1;`, entryID, modifiedAt)
	if err != nil {
		return fmt.Errorf("failed to bump modified time on entry %s: %w", entryID, err)
	}
	return nil
}

// RemoveTagFromEntry unlinks a tag from an entry.
func (r *PgxEntryRepository) RemoveTagFromEntry(ctx context.Context, entryID, tagID string, modifiedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entry_tags WHERE entry_id = $1 AND tag_id = $2;`, entryID, tagID)
	if err != nil {
		return fmt.Errorf("failed to unlink tag %s from entry %s: %w", tagID, entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = r.Pool.Exec(ctx, `UPDATE journal_entries SET modified_at = $2 WHERE entry_id = $1;`, entryID, modifiedAt)
	if err != nil {
		return fmt.Errorf("failed to bump modified time on entry %s: %w", entryID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry with its tags and photo metadata attached.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	entry := mapping.ToDomainEntry(m)

	entries := []domain.JournalEntry{entry}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// ListEntries retrieves a paginated page of entries. Date-based sort orders use
// keyset pagination over (sort timestamp, entry_id); the title sort returns a
// single unpaginated page since the token encodes a timestamp.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, sortBy domain.EntrySortOrder, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if sortBy == domain.SortTitleAscending {
		return r.listEntriesByTitle(ctx, limit)
	}

	sortColumn := "created_at"
	if sortBy == domain.SortModifiedDate {
		sortColumn = "modified_at"
	}
	descending := sortBy != domain.SortDateAscending

	comparator := "<"
	direction := "DESC"
	if !descending {
		comparator = ">"
		direction = "ASC"
	}

	args := []any{limit + 1}
	where := ""
	if nextToken != nil && *nextToken != "" {
		afterTime, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		where = fmt.Sprintf("WHERE (%s, entry_id) %s ($2, $3)", sortColumn, comparator)
		args = append(args, afterTime, afterID)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM journal_entries
		%s
		ORDER BY %s %s, entry_id %s
		LIMIT $1;
	`, entryColumns, where, sortColumn, direction, direction)

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		sortTime := last.CreatedAt
		if sortBy == domain.SortModifiedDate {
			sortTime = last.ModifiedAt
		}
		encoded := pagination.EncodeToken(sortTime, last.EntryID)
		token = &encoded
	}

	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, nil, err
	}
	return entries, token, nil
}

func (r *PgxEntryRepository) listEntriesByTitle(ctx context.Context, limit int) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries ORDER BY title ASC, entry_id ASC LIMIT $1;`
	entries, err := r.queryEntries(ctx, query, limit)
	if err != nil {
		return nil, nil, err
	}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, nil, err
	}
	return entries, nil, nil
}

// SearchEntries retrieves entries whose title or content matches the query.
func (r *PgxEntryRepository) SearchEntries(ctx context.Context, query string, limit int) ([]domain.JournalEntry, error) {
	sql := `
		SELECT ` + entryColumns + ` FROM journal_entries
		WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2;
	`
	entries, err := r.queryEntries(ctx, sql, query, limit)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindEntriesByMood retrieves entries recorded with the given mood.
func (r *PgxEntryRepository) FindEntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	sql := `
		SELECT ` + entryColumns + ` FROM journal_entries
		WHERE mood = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	entries, err := r.queryEntries(ctx, sql, string(mood), limit)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindEntriesByDateRange retrieves entries created inside [from, to].
func (r *PgxEntryRepository) FindEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	sql := `
		SELECT ` + entryColumns + ` FROM journal_entries
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC;
	`
	entries, err := r.queryEntries(ctx, sql, from, to)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindFavoriteEntries retrieves favorited entries, newest first.
func (r *PgxEntryRepository) FindFavoriteEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	sql := `
		SELECT ` + entryColumns + ` FROM journal_entries
		WHERE is_favorite
		ORDER BY created_at DESC;
	`
	entries, err := r.queryEntries(ctx, sql)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsAndPhotos(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JournalEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainEntry(m)
	}
	return entries, nil
}

// attachTagsAndPhotos fills Tags and Photos (metadata only) for a batch of
// entries with one query each.
func (r *PgxEntryRepository) attachTagsAndPhotos(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryIDs := make([]string, len(entries))
	index := make(map[string]int, len(entries))
	for i := range entries {
		entryIDs[i] = entries[i].EntryID
		index[entries[i].EntryID] = i
	}

	tagRows, err := r.Pool.Query(ctx, `
		SELECT et.entry_id, t.tag_id, t.name, t.color
		FROM entry_tags et
		JOIN tags t ON t.tag_id = et.tag_id
		WHERE et.entry_id = ANY($1)
		ORDER BY et.created_at;
	`, entryIDs)
	if err != nil {
		return fmt.Errorf("failed to query entry tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var entryID string
		var m models.Tag
		if err := tagRows.Scan(&entryID, &m.TagID, &m.Name, &m.Color); err != nil {
			return fmt.Errorf("failed to scan entry tag: %w", err)
		}
		i := index[entryID]
		entries[i].Tags = append(entries[i].Tags, mapping.ToDomainTag(m))
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("failed to read entry tags: %w", err)
	}

	photoRows, err := r.Pool.Query(ctx, `
		SELECT entry_id, photo_id, caption, taken_at, file_size, width, height
		FROM photos
		WHERE entry_id = ANY($1)
		ORDER BY taken_at;
	`, entryIDs)
	if err != nil {
		return fmt.Errorf("failed to query entry photos: %w", err)
	}
	defer photoRows.Close()

	for photoRows.Next() {
		var entryID string
		var m models.Photo
		if err := photoRows.Scan(&entryID, &m.PhotoID, &m.Caption, &m.TakenAt, &m.FileSize, &m.Width, &m.Height); err != nil {
			return fmt.Errorf("failed to scan entry photo: %w", err)
		}
		i := index[entryID]
		entries[i].Photos = append(entries[i].Photos, mapping.ToDomainPhoto(m))
	}
	if err := photoRows.Err(); err != nil {
		return fmt.Errorf("failed to read entry photos: %w", err)
	}

	return nil
}

// CountEntries returns the total number of entries.
func (r *PgxEntryRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// CountFavorites returns the number of favorited entries.
func (r *PgxEntryRepository) CountFavorites(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE is_favorite;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// TotalWordCount returns the sum of word counts across all entries.
func (r *PgxEntryRepository) TotalWordCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(word_count), 0) FROM journal_entries;`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum word counts: %w", err)
	}
	return total, nil
}

// MoodCounts returns how many entries carry each mood.
func (r *PgxEntryRepository) MoodCounts(ctx context.Context) (map[domain.Mood]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT mood, COUNT(*) FROM journal_entries
		WHERE mood IS NOT NULL
		GROUP BY mood;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count moods: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Mood]int64)
	for rows.Next() {
		var mood string
		var count int64
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, fmt.Errorf("failed to scan mood count: %w", err)
		}
		counts[domain.Mood(mood)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood counts: %w", err)
	}
	return counts, nil
}
