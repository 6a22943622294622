package mapping

import (
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/models"
)

// ToModelEntry converts a domain JournalEntry to its flattened database model.
// Tags and photos are persisted separately and not carried here.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:    d.EntryID,
		Title:      d.Title,
		Content:    d.Content,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
		IsFavorite: d.IsFavorite,
		WordCount:  d.WordCount,
	}

	if d.Mood != nil {
		mood := string(*d.Mood)
		m.Mood = &mood
	}

	if d.Location != nil {
		lat, lon := d.Location.Latitude, d.Location.Longitude
		m.Latitude = &lat
		m.Longitude = &lon
		m.PlaceName = d.Location.PlaceName
		m.City = d.Location.City
		m.Country = d.Location.Country
	}

	if d.Weather != nil {
		condition := string(d.Weather.Condition)
		temp := d.Weather.TemperatureCelsius
		observed := d.Weather.ObservedAt
		m.WeatherCondition = &condition
		m.TemperatureCelsius = &temp
		m.Humidity = d.Weather.Humidity
		m.WindSpeed = d.Weather.WindSpeed
		m.WeatherObservedAt = &observed
	}

	return m
}

// ToDomainEntry converts a database model back to a domain JournalEntry.
// Mood, location and weather are reconstructed from their nullable columns;
// tags and photos are left empty for the repository to attach.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:    m.EntryID,
		Title:      m.Title,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		ModifiedAt: m.ModifiedAt,
		IsFavorite: m.IsFavorite,
		WordCount:  m.WordCount,
		Tags:       []domain.Tag{},
		Photos:     []domain.Photo{},
	}

	if m.Mood != nil {
		mood := domain.Mood(*m.Mood)
		d.Mood = &mood
	}

	if m.Latitude != nil && m.Longitude != nil {
		d.Location = &domain.Location{
			Latitude:  *m.Latitude,
			Longitude: *m.Longitude,
			PlaceName: m.PlaceName,
			City:      m.City,
			Country:   m.Country,
		}
	}

	if m.WeatherCondition != nil && m.TemperatureCelsius != nil {
		w := domain.Weather{
			TemperatureCelsius: *m.TemperatureCelsius,
			Condition:          domain.WeatherCondition(*m.WeatherCondition),
			Humidity:           m.Humidity,
			WindSpeed:          m.WindSpeed,
		}
		if m.WeatherObservedAt != nil {
			w.ObservedAt = *m.WeatherObservedAt
		}
		d.Weather = &w
	}

	return d
}
