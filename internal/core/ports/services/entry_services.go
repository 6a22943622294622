package services

import (
	"context"
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
)

// EntryReaderSvc defines read operations for journal entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves a single entry with its tags and photo metadata.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a token-paginated page of entries.
	ListEntries(ctx context.Context, sortBy domain.EntrySortOrder, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// SearchEntries returns entries whose title or content match the query.
	SearchEntries(ctx context.Context, query string, limit int) ([]domain.JournalEntry, error)

	// GetEntriesByMood returns entries recorded with the given mood.
	GetEntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error)

	// GetEntriesByDateRange returns entries created inside [from, to].
	GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)

	// GetFavoriteEntries returns entries marked as favorites.
	GetFavoriteEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// EntryWriterSvc defines write operations for journal entries
type EntryWriterSvc interface {
	// CreateEntry creates a new entry and recalculates its word count.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry applies the non-nil fields of req to an existing entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry along with its photos and tag links.
	DeleteEntry(ctx context.Context, entryID string) error

	// SetFavorite toggles the favorite flag on an entry.
	SetFavorite(ctx context.Context, entryID string, favorite bool) (*domain.JournalEntry, error)

	// AddTag links a tag to an entry. Adding an already-linked tag is a no-op.
	AddTag(ctx context.Context, entryID, tagID string) error

	// RemoveTag unlinks a tag from an entry.
	RemoveTag(ctx context.Context, entryID, tagID string) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
