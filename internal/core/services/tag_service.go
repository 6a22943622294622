package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// defaultTagColor matches the color assigned to untinted tags in the UI.
const defaultTagColor = "#8E8E93"

type TagService struct {
	tagRepo portsrepo.TagRepositoryFacade
}

func NewTagService(tagRepo portsrepo.TagRepositoryFacade) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	color := req.Color
	if color == "" {
		color = defaultTagColor
	}
	tag := domain.Tag{
		TagID: uuid.NewString(),
		Name:  req.Name,
		Color: color,
	}

	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		logger.Warn("Failed to save tag", slog.String("error", err.Error()), slog.String("tag_name", req.Name))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	logger.Info("Tag created", slog.String("tag_id", tag.TagID), slog.String("tag_name", tag.Name))
	return &tag, nil
}

func (s *TagService) GetTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %s: %w", tagID, err)
	}
	return tag, nil
}

func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		return []domain.Tag{}, nil
	}
	return tags, nil
}

func (s *TagService) DeleteTag(ctx context.Context, tagID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.tagRepo.DeleteTag(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", tagID, err)
	}
	logger.Info("Tag deleted", slog.String("tag_id", tagID))
	return nil
}
