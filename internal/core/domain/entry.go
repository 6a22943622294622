package domain

import (
	"strings"
	"time"
)

// EntrySortOrder selects the ordering of entry listings.
type EntrySortOrder string

const (
	SortDateDescending EntrySortOrder = "date_desc"
	SortDateAscending  EntrySortOrder = "date_asc"
	SortTitleAscending EntrySortOrder = "title_asc"
	SortModifiedDate   EntrySortOrder = "modified_desc"
)

// untitledPlaceholder is the display title for entries with no title and no content.
const untitledPlaceholder = "Untitled Entry"

// titlePreviewRunes is how much of the content stands in for a missing title.
const titlePreviewRunes = 50

// JournalEntry is the aggregate root of the journal: the entry text plus its
// optional mood/location/weather context and attached tags and photos.
type JournalEntry struct {
	EntryID    string    `json:"entryID"` // Primary Key (UUID)
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Mood       *Mood     `json:"mood"`
	Location   *Location `json:"location"`
	Weather    *Weather  `json:"weather"`
	IsFavorite bool      `json:"isFavorite"`
	WordCount  int       `json:"wordCount"`
	Tags       []Tag     `json:"tags"`
	Photos     []Photo   `json:"photos"`
}

// UpdateWordCount recomputes WordCount from Content as a whitespace-delimited
// token count. The service layer calls this on every create and update so that
// WordCount always reflects the current content.
func (e *JournalEntry) UpdateWordCount() {
	e.WordCount = len(strings.Fields(e.Content))
}

// DisplayTitle resolves the title to show for the entry: the title itself when
// set, else the first 50 runes of the content, else a fixed placeholder.
func (e *JournalEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	runes := []rune(e.Content)
	if len(runes) == 0 {
		return untitledPlaceholder
	}
	if len(runes) > titlePreviewRunes {
		runes = runes[:titlePreviewRunes]
	}
	return string(runes)
}

// ReadingTime estimates minutes to read the entry at 200 words per minute,
// never less than one.
func (e *JournalEntry) ReadingTime() int {
	const wordsPerMinute = 200
	if t := e.WordCount / wordsPerMinute; t > 1 {
		return t
	}
	return 1
}
