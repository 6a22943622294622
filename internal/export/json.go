package export

import (
	"encoding/json"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
)

// jsonDocument is the public JSON export shape. Field order here is the key
// order in the output, so changing it changes the wire format. Optional fields
// are pointers: the key is always present and encodes as null when absent.
type jsonDocument struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	CreatedAt  string        `json:"createdAt"`
	ModifiedAt string        `json:"modifiedAt"`
	Mood       *string       `json:"mood"`
	MoodEmoji  *string       `json:"moodEmoji"`
	Location   *jsonLocation `json:"location"`
	Weather    *jsonWeather  `json:"weather"`
	IsFavorite bool          `json:"isFavorite"`
	WordCount  int           `json:"wordCount"`
	Tags       []string      `json:"tags"`
	Photos     []jsonPhoto   `json:"photos"`
}

type jsonLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PlaceName   *string `json:"placeName"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	DisplayName string  `json:"displayName"`
}

type jsonWeather struct {
	TemperatureCelsius float64  `json:"temperatureCelsius"`
	Condition          string   `json:"condition"`
	ConditionDisplay   string   `json:"conditionDisplay"`
	ConditionEmoji     string   `json:"conditionEmoji"`
	Humidity           *float64 `json:"humidity"`
	WindSpeed          *float64 `json:"windSpeed"`
	Timestamp          string   `json:"timestamp"`
}

type jsonPhoto struct {
	ID       string  `json:"id"`
	Caption  *string `json:"caption"`
	TakenAt  string  `json:"takenAt"`
	FileSize int64   `json:"fileSize"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// encodeJSON serializes the projection to an indented JSON document.
// Output is deterministic: the same projection always produces byte-identical
// bytes because key order follows the struct definition.
func encodeJSON(p Projection) ([]byte, error) {
	doc := jsonDocument{
		ID:         p.EntryID,
		Title:      p.ResolvedTitle,
		Content:    p.Content,
		CreatedAt:  textfmt.ISOTimestamp(p.CreatedAt),
		ModifiedAt: textfmt.ISOTimestamp(p.ModifiedAt),
		IsFavorite: p.IsFavorite,
		WordCount:  p.WordCount,
		Tags:       p.Tags,
		Photos:     make([]jsonPhoto, 0, len(p.Photos)),
	}

	if p.Mood != nil {
		doc.Mood = &p.Mood.Code
		doc.MoodEmoji = &p.Mood.Symbol
	}

	if p.Location != nil {
		doc.Location = &jsonLocation{
			Latitude:    p.Location.Lat,
			Longitude:   p.Location.Lon,
			PlaceName:   p.Location.PlaceName,
			City:        p.Location.City,
			Country:     p.Location.Country,
			DisplayName: p.Location.DisplayName,
		}
	}

	if p.Weather != nil {
		doc.Weather = &jsonWeather{
			TemperatureCelsius: p.Weather.TempC,
			Condition:          p.Weather.ConditionCode,
			ConditionDisplay:   p.Weather.ConditionLabel,
			ConditionEmoji:     p.Weather.ConditionSymbol,
			Humidity:           p.Weather.Humidity,
			WindSpeed:          p.Weather.WindSpeed,
			Timestamp:          textfmt.ISOTimestamp(p.Weather.ObservedAt),
		}
	}

	for _, photo := range p.Photos {
		doc.Photos = append(doc.Photos, jsonPhoto{
			ID:       photo.PhotoID,
			Caption:  photo.Caption,
			TakenAt:  textfmt.ISOTimestamp(photo.TakenAt),
			FileSize: photo.FileSize,
			Width:    photo.Width,
			Height:   photo.Height,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}
