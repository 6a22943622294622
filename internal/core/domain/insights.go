package domain

import "fmt"

// SentimentResult is the outcome of analyzing an entry's text. Sentiment is
// the mean paragraph score in [-1, 1]; Confidence is its magnitude.
type SentimentResult struct {
	Mood       Mood    `json:"mood"`
	Confidence float64 `json:"confidence"`
	Sentiment  float64 `json:"sentiment"`
}

// Description renders the result for logs and debugging.
func (r SentimentResult) Description() string {
	return fmt.Sprintf("%s (confidence: %.2f)", r.Mood.DisplayName(), r.Confidence)
}

// EntityType classifies a named entity found in entry text.
type EntityType string

const (
	EntityPerson       EntityType = "person"
	EntityPlace        EntityType = "place"
	EntityOrganization EntityType = "organization"
	EntityOther        EntityType = "other"
)

// Entity is a named thing mentioned in an entry.
type Entity struct {
	Name string     `json:"name"`
	Type EntityType `json:"type"`
}
