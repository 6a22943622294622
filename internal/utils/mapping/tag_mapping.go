package mapping

import (
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/models"
)

// ToModelTag converts a domain Tag to its database model.
func ToModelTag(d domain.Tag) models.Tag {
	return models.Tag{
		TagID: d.TagID,
		Name:  d.Name,
		Color: d.Color,
	}
}

// ToDomainTag converts a database model to a domain Tag.
func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID: m.TagID,
		Name:  m.Name,
		Color: m.Color,
	}
}

// ToDomainTags converts a slice of tag models.
func ToDomainTags(ms []models.Tag) []domain.Tag {
	tags := make([]domain.Tag, len(ms))
	for i, m := range ms {
		tags[i] = ToDomainTag(m)
	}
	return tags
}
