package export

import (
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// Projection is the flat, format-agnostic snapshot of a journal entry that the
// encoders consume. It is built fresh at the start of every export call, never
// persisted, and never shared between calls. All optional domain fields are
// resolved into display-ready values here so the encoders stay pure
// serializers.
type Projection struct {
	EntryID       string
	ResolvedTitle string
	Content       string
	CreatedAt     time.Time
	ModifiedAt    time.Time
	Mood          *MoodView
	Weather       *WeatherView
	Location      *LocationView
	IsFavorite    bool
	WordCount     int
	Tags          []string
	Photos        []PhotoView
}

// MoodView carries the mood resolved into primitives.
type MoodView struct {
	Code   string
	Label  string
	Symbol string
}

// WeatherView carries the weather resolved into primitives.
type WeatherView struct {
	TempC           float64
	ConditionCode   string
	ConditionLabel  string
	ConditionSymbol string
	Humidity        *float64
	WindSpeed       *float64
	ObservedAt      time.Time
}

// LocationView carries the location with its display name pre-resolved.
type LocationView struct {
	Lat         float64
	Lon         float64
	PlaceName   *string
	City        *string
	Country     *string
	DisplayName string
}

// PhotoView is the per-photo projection. ImageData and ThumbnailData are
// rendering input for the PDF encoder only; the text encoders never touch
// image bytes.
type PhotoView struct {
	PhotoID       string
	Caption       *string
	TakenAt       time.Time
	FileSize      int64
	Width         int
	Height        int
	ImageData     []byte
	ThumbnailData []byte
}

// BuildProjection flattens a journal entry into an exportable projection.
// It is a pure function: it performs no I/O, never mutates the entry, and
// never fails for a well-formed entry. Empty tag and photo collections come
// back as empty slices, never nil.
func BuildProjection(entry domain.JournalEntry) Projection {
	p := Projection{
		EntryID:       entry.EntryID,
		ResolvedTitle: entry.DisplayTitle(),
		Content:       entry.Content,
		CreatedAt:     entry.CreatedAt,
		ModifiedAt:    entry.ModifiedAt,
		IsFavorite:    entry.IsFavorite,
		WordCount:     entry.WordCount,
		Tags:          make([]string, 0, len(entry.Tags)),
		Photos:        make([]PhotoView, 0, len(entry.Photos)),
	}

	if entry.Mood != nil {
		p.Mood = &MoodView{
			Code:   string(*entry.Mood),
			Label:  entry.Mood.DisplayName(),
			Symbol: entry.Mood.Emoji(),
		}
	}

	if entry.Weather != nil {
		p.Weather = &WeatherView{
			TempC:           entry.Weather.TemperatureCelsius,
			ConditionCode:   string(entry.Weather.Condition),
			ConditionLabel:  entry.Weather.Condition.DisplayName(),
			ConditionSymbol: entry.Weather.Condition.Emoji(),
			Humidity:        entry.Weather.Humidity,
			WindSpeed:       entry.Weather.WindSpeed,
			ObservedAt:      entry.Weather.ObservedAt,
		}
	}

	if entry.Location != nil {
		p.Location = &LocationView{
			Lat:         entry.Location.Latitude,
			Lon:         entry.Location.Longitude,
			PlaceName:   entry.Location.PlaceName,
			City:        entry.Location.City,
			Country:     entry.Location.Country,
			DisplayName: entry.Location.DisplayName(),
		}
	}

	for _, tag := range entry.Tags {
		p.Tags = append(p.Tags, tag.Name)
	}

	for _, photo := range entry.Photos {
		p.Photos = append(p.Photos, PhotoView{
			PhotoID:       photo.PhotoID,
			Caption:       photo.Caption,
			TakenAt:       photo.TakenAt,
			FileSize:      photo.FileSize,
			Width:         photo.Width,
			Height:        photo.Height,
			ImageData:     photo.ImageData,
			ThumbnailData: photo.ThumbnailData,
		})
	}

	return p
}
