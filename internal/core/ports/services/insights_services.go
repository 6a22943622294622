package services

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// EntryInsights bundles the analysis results for one entry.
type EntryInsights struct {
	Sentiment     domain.SentimentResult
	SuggestedMood *domain.Mood
	Keywords      []string
	Entities      []domain.Entity
	Summary       string
}

// InsightsSvcFacade analyzes entry text for sentiment, keywords and summaries.
type InsightsSvcFacade interface {
	// AnalyzeEntry runs the full analysis over a stored entry.
	AnalyzeEntry(ctx context.Context, entryID string) (*EntryInsights, error)

	// AnalyzeText runs the analysis over arbitrary text without storing it.
	AnalyzeText(ctx context.Context, text string) (*EntryInsights, error)
}
