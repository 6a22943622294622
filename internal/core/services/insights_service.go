package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
)

// sentimentLexicon scores affect words in [-1, 1]. Tokens absent from the
// lexicon are treated as neutral and excluded from the paragraph mean.
var sentimentLexicon = map[string]float64{
	"amazing":     0.9,
	"wonderful":   0.9,
	"fantastic":   0.9,
	"excellent":   0.8,
	"great":       0.7,
	"joy":         0.8,
	"joyful":      0.8,
	"love":        0.8,
	"loved":       0.8,
	"happy":       0.7,
	"happiness":   0.7,
	"grateful":    0.7,
	"beautiful":   0.6,
	"excited":     0.6,
	"fun":         0.6,
	"good":        0.5,
	"nice":        0.4,
	"calm":        0.4,
	"peaceful":    0.5,
	"relaxed":     0.4,
	"hopeful":     0.4,
	"okay":        0.1,
	"fine":        0.1,
	"tired":       -0.3,
	"bored":       -0.3,
	"worried":     -0.4,
	"anxious":     -0.5,
	"stressed":    -0.5,
	"annoyed":     -0.4,
	"angry":       -0.7,
	"bad":         -0.5,
	"sad":         -0.6,
	"unhappy":     -0.6,
	"lonely":      -0.6,
	"awful":       -0.8,
	"terrible":    -0.8,
	"horrible":    -0.9,
	"miserable":   -0.9,
	"devastated":  -1.0,
	"heartbroken": -1.0,
}

// stopWords are excluded from keyword extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "have": true, "were": true, "they": true, "been": true,
	"would": true, "could": true, "should": true, "about": true, "there": true,
	"their": true, "which": true, "while": true, "where": true, "when": true,
	"what": true, "them": true, "then": true, "than": true, "some": true,
	"into": true, "just": true, "very": true, "really": true, "today": true,
	"because": true, "after": true, "before": true, "being": true, "over": true,
}

// placeIndicators are prepositions that mark the following name as a location.
var placeIndicators = map[string]bool{
	"in": true, "at": true, "near": true, "to": true, "from": true,
}

const (
	maxKeywords        = 10
	maxEntities        = 10
	minKeywordLen      = 4
	summarySentences   = 3
	moodConfidenceGate = 0.2
)

type InsightsService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

func NewInsightsService(entryRepo portsrepo.EntryRepositoryFacade) *InsightsService {
	return &InsightsService{entryRepo: entryRepo}
}

func (s *InsightsService) AnalyzeEntry(ctx context.Context, entryID string) (*portssvc.EntryInsights, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry %s for analysis: %w", entryID, err)
	}
	return s.AnalyzeText(ctx, entry.Content)
}

func (s *InsightsService) AnalyzeText(_ context.Context, text string) (*portssvc.EntryInsights, error) {
	sentiment := analyzeSentiment(text)

	insights := &portssvc.EntryInsights{
		Sentiment: sentiment,
		Keywords:  extractKeywords(text),
		Entities:  extractEntities(text),
		Summary:   summarize(text),
	}
	if sentiment.Confidence > moodConfidenceGate {
		mood := sentiment.Mood
		insights.SuggestedMood = &mood
	}
	return insights, nil
}

// tokenize lowercases the text and splits it on anything that is not a letter
// or an apostrophe.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// analyzeSentiment scores each paragraph as the mean lexicon score of its
// matched tokens, then averages the paragraph scores. The result maps onto a
// mood by fixed thresholds; confidence is the magnitude of the score.
func analyzeSentiment(text string) domain.SentimentResult {
	var paragraphScores []float64
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		var sum float64
		var matched int
		for _, token := range tokenize(paragraph) {
			if score, ok := sentimentLexicon[token]; ok {
				sum += score
				matched++
			}
		}
		if matched == 0 {
			paragraphScores = append(paragraphScores, 0)
			continue
		}
		paragraphScores = append(paragraphScores, sum/float64(matched))
	}

	var sentiment float64
	if len(paragraphScores) > 0 {
		var total float64
		for _, score := range paragraphScores {
			total += score
		}
		sentiment = total / float64(len(paragraphScores))
	}

	confidence := sentiment
	if confidence < 0 {
		confidence = -confidence
	}

	return domain.SentimentResult{
		Mood:       moodForSentiment(sentiment),
		Confidence: confidence,
		Sentiment:  sentiment,
	}
}

func moodForSentiment(sentiment float64) domain.Mood {
	switch {
	case sentiment >= 0.5:
		return domain.MoodVeryHappy
	case sentiment >= 0.2:
		return domain.MoodHappy
	case sentiment >= -0.2:
		return domain.MoodNeutral
	case sentiment >= -0.5:
		return domain.MoodSad
	default:
		return domain.MoodVerySad
	}
}

// extractKeywords returns the most frequent non-stop-words, ties broken
// alphabetically so the result is stable.
func extractKeywords(text string) []string {
	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if len([]rune(token)) < minKeywordLen || stopWords[token] {
			continue
		}
		counts[token]++
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// extractEntities finds capitalized names in the text. Sentence-initial words
// are skipped, consecutive capitalized words merge into one name, and the word
// just before the name decides its type: a place indicator makes it a place,
// a multi-word name without one is assumed to be a person.
func extractEntities(text string) []domain.Entity {
	var entities []domain.Entity
	seen := make(map[string]bool)

	for _, sentence := range splitSentences(text) {
		words := strings.Fields(sentence)
		var name []string
		prev := ""
		for i, raw := range words {
			word := trimWord(raw)
			if i > 0 && isNameWord(word) {
				name = append(name, word)
				continue
			}
			if len(name) > 0 {
				entities = appendEntity(entities, seen, name, prev)
				name = nil
			}
			prev = strings.ToLower(word)
		}
		if len(name) > 0 {
			entities = appendEntity(entities, seen, name, prev)
		}
		if len(entities) >= maxEntities {
			return entities[:maxEntities]
		}
	}
	return entities
}

func appendEntity(entities []domain.Entity, seen map[string]bool, nameWords []string, indicator string) []domain.Entity {
	name := strings.Join(nameWords, " ")
	if seen[name] {
		return entities
	}
	seen[name] = true

	entityType := domain.EntityOther
	switch {
	case placeIndicators[indicator]:
		entityType = domain.EntityPlace
	case len(nameWords) > 1:
		entityType = domain.EntityPerson
	}
	return append(entities, domain.Entity{Name: name, Type: entityType})
}

// trimWord strips surrounding punctuation, keeping letters and apostrophes.
func trimWord(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// isNameWord reports whether the word looks like part of a proper name.
// "I" and its contractions are capitalized but never names.
func isNameWord(word string) bool {
	if word == "" || word == "I" || strings.HasPrefix(word, "I'") {
		return false
	}
	return unicode.IsUpper([]rune(word)[0])
}

// splitSentences breaks the text on sentence punctuation and line breaks.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// summarize returns the first few sentences of the text.
func summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	var sentences []string
	var current strings.Builder
	for _, r := range trimmed {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			sentence := strings.TrimSpace(current.String())
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
			if len(sentences) == summarySentences {
				return strings.Join(sentences, " ")
			}
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}
	return strings.Join(sentences, " ")
}
