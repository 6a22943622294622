package domain

import "fmt"

// Location is the geographic point attached to a journal entry.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName *string `json:"placeName"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
}

// DisplayName resolves the best human-readable name for the location:
// place name, then city, then country, then formatted coordinates.
func (l Location) DisplayName() string {
	if l.PlaceName != nil && *l.PlaceName != "" {
		return *l.PlaceName
	}
	if l.City != nil && *l.City != "" {
		return *l.City
	}
	if l.Country != nil && *l.Country != "" {
		return *l.Country
	}
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}
