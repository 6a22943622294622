package dto

// JournalStatsResponse defines the aggregate journal statistics payload.
type JournalStatsResponse struct {
	EntryCount           int64            `json:"entryCount"`
	FavoriteCount        int64            `json:"favoriteCount"`
	PhotoCount           int64            `json:"photoCount"`
	TotalWordCount       int64            `json:"totalWordCount"`
	AverageWordsPerEntry string           `json:"averageWordsPerEntry"`
	MoodCounts           map[string]int64 `json:"moodCounts"`
}
