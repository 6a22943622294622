package services

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/dto"
)

// StatsSvcFacade aggregates journal-wide statistics.
type StatsSvcFacade interface {
	// GetJournalStats computes counts, totals and the mood distribution.
	GetJournalStats(ctx context.Context) (*dto.JournalStatsResponse, error)
}
