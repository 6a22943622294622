package dto

import (
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// LocationPayload carries a location in requests and responses.
type LocationPayload struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	PlaceName *string `json:"placeName"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
}

// WeatherPayload carries weather conditions in requests and responses.
type WeatherPayload struct {
	TemperatureCelsius float64    `json:"temperatureCelsius"`
	Condition          string     `json:"condition" binding:"required"`
	Humidity           *float64   `json:"humidity"`
	WindSpeed          *float64   `json:"windSpeed"`
	ObservedAt         *time.Time `json:"observedAt"`
}

// CreateEntryRequest is the payload for creating a journal entry.
type CreateEntryRequest struct {
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	Mood     *string          `json:"mood"`
	Location *LocationPayload `json:"location"`
	Weather  *WeatherPayload  `json:"weather"`
	TagIDs   []string         `json:"tagIDs"`
}

// UpdateEntryRequest is the payload for updating an entry. Nil fields are
// left unchanged; an empty string in Mood clears the mood.
type UpdateEntryRequest struct {
	Title    *string          `json:"title"`
	Content  *string          `json:"content"`
	Mood     *string          `json:"mood"`
	Location *LocationPayload `json:"location"`
	Weather  *WeatherPayload  `json:"weather"`
}

// ListEntriesParams captures the query parameters of the list endpoint.
type ListEntriesParams struct {
	SortBy    string  `form:"sortBy"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string           `json:"entryID"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	CreatedAt   time.Time        `json:"createdAt"`
	ModifiedAt  time.Time        `json:"modifiedAt"`
	Mood        *string          `json:"mood"`
	MoodEmoji   *string          `json:"moodEmoji"`
	Location    *LocationPayload `json:"location"`
	Weather     *WeatherPayload  `json:"weather"`
	IsFavorite  bool             `json:"isFavorite"`
	WordCount   int              `json:"wordCount"`
	ReadingTime int              `json:"readingTime"`
	Tags        []TagResponse    `json:"tags"`
	Photos      []PhotoResponse  `json:"photos"`
}

// ListEntriesResponse is the paginated list payload.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken"`
}

// ToEntryResponse converts a domain entry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		Title:       e.Title,
		Content:     e.Content,
		CreatedAt:   e.CreatedAt,
		ModifiedAt:  e.ModifiedAt,
		IsFavorite:  e.IsFavorite,
		WordCount:   e.WordCount,
		ReadingTime: e.ReadingTime(),
		Tags:        make([]TagResponse, 0, len(e.Tags)),
		Photos:      make([]PhotoResponse, 0, len(e.Photos)),
	}

	if e.Mood != nil {
		mood := string(*e.Mood)
		emoji := e.Mood.Emoji()
		resp.Mood = &mood
		resp.MoodEmoji = &emoji
	}
	if e.Location != nil {
		resp.Location = &LocationPayload{
			Latitude:  e.Location.Latitude,
			Longitude: e.Location.Longitude,
			PlaceName: e.Location.PlaceName,
			City:      e.Location.City,
			Country:   e.Location.Country,
		}
	}
	if e.Weather != nil {
		observed := e.Weather.ObservedAt
		resp.Weather = &WeatherPayload{
			TemperatureCelsius: e.Weather.TemperatureCelsius,
			Condition:          string(e.Weather.Condition),
			Humidity:           e.Weather.Humidity,
			WindSpeed:          e.Weather.WindSpeed,
			ObservedAt:         &observed,
		}
	}
	for _, tag := range e.Tags {
		resp.Tags = append(resp.Tags, ToTagResponse(&tag))
	}
	for _, photo := range e.Photos {
		resp.Photos = append(resp.Photos, ToPhotoResponse(&photo))
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
