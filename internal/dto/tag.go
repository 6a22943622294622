package dto

import "github.com/mindfulhq/mindful_journal_app/internal/core/domain"

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// TagResponse defines the data returned for a tag.
type TagResponse struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ToTagResponse converts a domain tag to its response DTO.
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID: t.TagID,
		Name:  t.Name,
		Color: t.Color,
	}
}

// ToTagResponses converts a slice of domain tags.
func ToTagResponses(tags []domain.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = ToTagResponse(&tags[i])
	}
	return responses
}
