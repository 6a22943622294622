package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

const defaultListLimit = 20
const maxListLimit = 100

type EntryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	tagRepo   portsrepo.TagRepositoryFacade
}

func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, tagRepo portsrepo.TagRepositoryFacade) *EntryService {
	return &EntryService{entryRepo: entryRepo, tagRepo: tagRepo}
}

func moodFromRequest(raw *string) (*domain.Mood, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	mood := domain.Mood(*raw)
	if !mood.IsValid() {
		return nil, fmt.Errorf("%w: unknown mood %q", apperrors.ErrValidation, *raw)
	}
	return &mood, nil
}

func locationFromRequest(payload *dto.LocationPayload) *domain.Location {
	if payload == nil {
		return nil
	}
	return &domain.Location{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		PlaceName: payload.PlaceName,
		City:      payload.City,
		Country:   payload.Country,
	}
}

func weatherFromRequest(payload *dto.WeatherPayload, fallback time.Time) (*domain.Weather, error) {
	if payload == nil {
		return nil, nil
	}
	condition := domain.WeatherCondition(payload.Condition)
	if !condition.IsValid() {
		return nil, fmt.Errorf("%w: unknown weather condition %q", apperrors.ErrValidation, payload.Condition)
	}
	observedAt := fallback
	if payload.ObservedAt != nil {
		observedAt = *payload.ObservedAt
	}
	return &domain.Weather{
		TemperatureCelsius: payload.TemperatureCelsius,
		Condition:          condition,
		Humidity:           payload.Humidity,
		WindSpeed:          payload.WindSpeed,
		ObservedAt:         observedAt,
	}, nil
}

func (s *EntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	mood, err := moodFromRequest(req.Mood)
	if err != nil {
		return nil, err
	}
	weather, err := weatherFromRequest(req.Weather, now)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:    uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  now,
		ModifiedAt: now,
		Mood:       mood,
		Location:   locationFromRequest(req.Location),
		Weather:    weather,
		Tags:       []domain.Tag{},
		Photos:     []domain.Photo{},
	}
	entry.UpdateWordCount()

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save entry in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	for _, tagID := range req.TagIDs {
		if err := s.AddTag(ctx, entry.EntryID, tagID); err != nil {
			return nil, err
		}
	}
	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.FindTagsByEntryID(ctx, entry.EntryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tags for new entry: %w", err)
		}
		entry.Tags = tags
	}

	logger.Info("Entry created", slog.String("entry_id", entry.EntryID), slog.Int("word_count", entry.WordCount))
	return &entry, nil
}

func (s *EntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *EntryService) ListEntries(ctx context.Context, sortBy domain.EntrySortOrder, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	entries, token, err := s.entryRepo.ListEntries(ctx, sortBy, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, token, nil
}

func (s *EntryService) SearchEntries(ctx context.Context, query string, limit int) ([]domain.JournalEntry, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	entries, err := s.entryRepo.SearchEntries(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) GetEntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	if !mood.IsValid() {
		return nil, fmt.Errorf("%w: unknown mood %q", apperrors.ErrValidation, string(mood))
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	entries, err := s.entryRepo.FindEntriesByMood(ctx, mood, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries by mood: %w", err)
	}
	return entries, nil
}

func (s *EntryService) GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	entries, err := s.entryRepo.FindEntriesByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries by date range: %w", err)
	}
	return entries, nil
}

func (s *EntryService) GetFavoriteEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.entryRepo.FindFavoriteEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry %s for update: %w", entryID, err)
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
		entry.UpdateWordCount()
	}
	if req.Mood != nil {
		mood, err := moodFromRequest(req.Mood)
		if err != nil {
			return nil, err
		}
		entry.Mood = mood
	}
	if req.Location != nil {
		entry.Location = locationFromRequest(req.Location)
	}
	if req.Weather != nil {
		weather, err := weatherFromRequest(req.Weather, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		entry.Weather = weather
	}
	entry.ModifiedAt = time.Now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		logger.Error("Failed to update entry in repository", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	logger.Info("Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *EntryService) SetFavorite(ctx context.Context, entryID string, favorite bool) (*domain.JournalEntry, error) {
	if err := s.entryRepo.SetFavorite(ctx, entryID, favorite, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to set favorite on entry %s: %w", entryID, err)
	}
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *EntryService) AddTag(ctx context.Context, entryID, tagID string) error {
	// Verify the tag exists so the caller gets a not-found error instead of
	// a bare foreign key violation.
	if _, err := s.tagRepo.FindTagByID(ctx, tagID); err != nil {
		return fmt.Errorf("failed to load tag %s: %w", tagID, err)
	}
	if err := s.entryRepo.AddTagToEntry(ctx, entryID, tagID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to tag entry %s: %w", entryID, err)
	}
	return nil
}

func (s *EntryService) RemoveTag(ctx context.Context, entryID, tagID string) error {
	if err := s.entryRepo.RemoveTagFromEntry(ctx, entryID, tagID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to untag entry %s: %w", entryID, err)
	}
	return nil
}
