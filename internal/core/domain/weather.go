package domain

import (
	"fmt"
	"time"
)

// WeatherCondition is the enumerated sky condition recorded with an entry.
type WeatherCondition string

const (
	Clear        WeatherCondition = "clear"
	Cloudy       WeatherCondition = "cloudy"
	PartlyCloudy WeatherCondition = "partly_cloudy"
	Rainy        WeatherCondition = "rainy"
	Stormy       WeatherCondition = "stormy"
	Snowy        WeatherCondition = "snowy"
	Foggy        WeatherCondition = "foggy"
	Windy        WeatherCondition = "windy"
)

// AllWeatherConditions lists the eight known conditions.
var AllWeatherConditions = []WeatherCondition{
	Clear, Cloudy, PartlyCloudy, Rainy, Stormy, Snowy, Foggy, Windy,
}

// IsValid reports whether c is one of the known conditions.
func (c WeatherCondition) IsValid() bool {
	for _, known := range AllWeatherConditions {
		if c == known {
			return true
		}
	}
	return false
}

// Emoji returns the symbol for the condition.
func (c WeatherCondition) Emoji() string {
	switch c {
	case Clear:
		return "☀️"
	case Cloudy:
		return "☁️"
	case PartlyCloudy:
		return "⛅️"
	case Rainy:
		return "🌧️"
	case Stormy:
		return "⛈️"
	case Snowy:
		return "❄️"
	case Foggy:
		return "🌫️"
	case Windy:
		return "💨"
	}
	return ""
}

// DisplayName returns the human-readable condition label.
func (c WeatherCondition) DisplayName() string {
	switch c {
	case Clear:
		return "Clear"
	case Cloudy:
		return "Cloudy"
	case PartlyCloudy:
		return "Partly Cloudy"
	case Rainy:
		return "Rainy"
	case Stormy:
		return "Stormy"
	case Snowy:
		return "Snowy"
	case Foggy:
		return "Foggy"
	case Windy:
		return "Windy"
	}
	return ""
}

// Weather captures the conditions observed when an entry was written.
type Weather struct {
	TemperatureCelsius float64          `json:"temperatureCelsius"`
	Condition          WeatherCondition `json:"condition"`
	Humidity           *float64         `json:"humidity"`  // percent, optional
	WindSpeed          *float64         `json:"windSpeed"` // km/h, optional
	ObservedAt         time.Time        `json:"observedAt"`
}

// TemperatureFahrenheit converts the stored Celsius reading.
func (w Weather) TemperatureFahrenheit() float64 {
	return (w.TemperatureCelsius * 9 / 5) + 32
}

// DisplayTemperature renders the temperature with one decimal, e.g. "18.5°C".
func (w Weather) DisplayTemperature() string {
	return fmt.Sprintf("%.1f°C", w.TemperatureCelsius)
}
