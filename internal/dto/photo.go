package dto

import (
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// UpdateCaptionRequest is the payload for changing a photo caption.
// A nil caption removes it.
type UpdateCaptionRequest struct {
	Caption *string `json:"caption"`
}

// PhotoResponse defines the metadata returned for a photo. Image bytes are
// served by the dedicated image endpoints.
type PhotoResponse struct {
	PhotoID  string    `json:"photoID"`
	Caption  *string   `json:"caption"`
	TakenAt  time.Time `json:"takenAt"`
	FileSize int64     `json:"fileSize"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
}

// ToPhotoResponse converts a domain photo to its response DTO.
func ToPhotoResponse(p *domain.Photo) PhotoResponse {
	return PhotoResponse{
		PhotoID:  p.PhotoID,
		Caption:  p.Caption,
		TakenAt:  p.TakenAt,
		FileSize: p.FileSize,
		Width:    p.Width,
		Height:   p.Height,
	}
}

// ToPhotoResponses converts a slice of domain photos.
func ToPhotoResponses(photos []domain.Photo) []PhotoResponse {
	responses := make([]PhotoResponse, len(photos))
	for i := range photos {
		responses[i] = ToPhotoResponse(&photos[i])
	}
	return responses
}
