package services

import (
	"context"
	"fmt"

	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/shopspring/decimal"
)

type StatsService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	photoRepo portsrepo.PhotoRepositoryFacade
}

func NewStatsService(entryRepo portsrepo.EntryRepositoryFacade, photoRepo portsrepo.PhotoRepositoryFacade) *StatsService {
	return &StatsService{entryRepo: entryRepo, photoRepo: photoRepo}
}

func (s *StatsService) GetJournalStats(ctx context.Context) (*dto.JournalStatsResponse, error) {
	entryCount, err := s.entryRepo.CountEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	favoriteCount, err := s.entryRepo.CountFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	photoCount, err := s.photoRepo.CountPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	totalWords, err := s.entryRepo.TotalWordCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum word counts: %w", err)
	}
	moodCounts, err := s.entryRepo.MoodCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count moods: %w", err)
	}

	average := decimal.Zero
	if entryCount > 0 {
		average = decimal.NewFromInt(totalWords).DivRound(decimal.NewFromInt(entryCount), 1)
	}

	moods := make(map[string]int64, len(moodCounts))
	for mood, count := range moodCounts {
		moods[string(mood)] = count
	}

	return &dto.JournalStatsResponse{
		EntryCount:           entryCount,
		FavoriteCount:        favoriteCount,
		PhotoCount:           photoCount,
		TotalWordCount:       totalWords,
		AverageWordsPerEntry: average.StringFixed(1),
		MoodCounts:           moods,
	}, nil
}
