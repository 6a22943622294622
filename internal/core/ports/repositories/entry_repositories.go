package repositories

import (
	"context"
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves an entry with its tags and photo metadata
	// (no image bytes) attached.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated page of entries using token-based
	// pagination. It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, sortBy domain.EntrySortOrder, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// SearchEntries retrieves entries whose title or content matches the query,
	// newest first.
	SearchEntries(ctx context.Context, query string, limit int) ([]domain.JournalEntry, error)

	// FindEntriesByMood retrieves entries recorded with the given mood, newest first.
	FindEntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error)

	// FindEntriesByDateRange retrieves entries created inside [from, to], newest first.
	FindEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)

	// FindFavoriteEntries retrieves favorited entries, newest first.
	FindFavoriteEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry updates an existing entry's scalar fields.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes an entry and, via cascade, its photos and tag links.
	DeleteEntry(ctx context.Context, entryID string) error

	// SetFavorite flips the favorite flag and bumps the modification time.
	SetFavorite(ctx context.Context, entryID string, favorite bool, modifiedAt time.Time) error

	// AddTagToEntry links a tag to an entry. Adding an already-linked tag is a no-op.
	AddTagToEntry(ctx context.Context, entryID, tagID string, modifiedAt time.Time) error

	// RemoveTagFromEntry unlinks a tag from an entry.
	RemoveTagFromEntry(ctx context.Context, entryID, tagID string, modifiedAt time.Time) error
}

// EntryStatsReader defines aggregate queries used by the stats service.
type EntryStatsReader interface {
	CountEntries(ctx context.Context) (int64, error)
	CountFavorites(ctx context.Context) (int64, error)
	TotalWordCount(ctx context.Context) (int64, error)
	MoodCounts(ctx context.Context) (map[domain.Mood]int64, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	EntryStatsReader
}
