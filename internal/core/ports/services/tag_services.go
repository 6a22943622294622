package services

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
)

// TagSvcFacade defines operations for managing tags.
type TagSvcFacade interface {
	// CreateTag creates a new tag. Tag names are unique.
	CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error)

	// GetTagByID retrieves a tag by ID.
	GetTagByID(ctx context.Context, tagID string) (*domain.Tag, error)

	// ListTags retrieves all tags ordered by name.
	ListTags(ctx context.Context) ([]domain.Tag, error)

	// DeleteTag removes a tag and its entry links.
	DeleteTag(ctx context.Context, tagID string) error
}
