package repositories

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// TagRepositoryFacade defines persistence operations for tags.
// Tag uniqueness by ID and by name is enforced here, not in the domain.
type TagRepositoryFacade interface {
	// SaveTag persists a new tag. Returns apperrors.ErrDuplicate when a tag
	// with the same name already exists.
	SaveTag(ctx context.Context, tag domain.Tag) error

	// FindTagByID retrieves one tag.
	FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error)

	// ListTags retrieves all tags ordered by name.
	ListTags(ctx context.Context) ([]domain.Tag, error)

	// FindTagsByEntryID retrieves the tags linked to an entry in link order.
	FindTagsByEntryID(ctx context.Context, entryID string) ([]domain.Tag, error)

	// DeleteTag removes a tag and its entry links.
	DeleteTag(ctx context.Context, tagID string) error
}
