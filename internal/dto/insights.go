package dto

// EntityResponse is a named thing recognized in entry text.
type EntityResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EntryInsightsResponse defines the analysis results for a single entry.
type EntryInsightsResponse struct {
	Sentiment     float64          `json:"sentiment"`
	Confidence    float64          `json:"confidence"`
	Mood          string           `json:"mood"`
	Description   string           `json:"description"`
	SuggestedMood *string          `json:"suggestedMood"`
	Keywords      []string         `json:"keywords"`
	Entities      []EntityResponse `json:"entities"`
	Summary       string           `json:"summary"`
}
