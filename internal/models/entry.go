package models

import "time"

// JournalEntry is the database shape of an entry: optional mood, location and
// weather are flattened into nullable columns on the journal_entries table.
type JournalEntry struct {
	EntryID    string    `json:"entryID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	IsFavorite bool      `json:"isFavorite"`
	WordCount  int       `json:"wordCount"`

	Mood *string `json:"mood"`

	// Location columns
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PlaceName *string  `json:"placeName"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`

	// Weather columns
	WeatherCondition   *string    `json:"weatherCondition"`
	TemperatureCelsius *float64   `json:"temperatureCelsius"`
	Humidity           *float64   `json:"humidity"`
	WindSpeed          *float64   `json:"windSpeed"`
	WeatherObservedAt  *time.Time `json:"weatherObservedAt"`
}
