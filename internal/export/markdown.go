package export

import (
	"fmt"
	"strings"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
)

// encodeMarkdown serializes the projection as a human-readable document.
// Line order is fixed; metadata bullets for optional fields appear only when
// the field is set. Body content is inserted verbatim, no HTML escaping.
func encodeMarkdown(p Projection) []byte {
	var lines []string

	lines = append(lines, "# "+p.ResolvedTitle)
	lines = append(lines, "")
	lines = append(lines, "- Created: "+textfmt.ISOTimestamp(p.CreatedAt))
	lines = append(lines, "- Modified: "+textfmt.ISOTimestamp(p.ModifiedAt))
	if p.Mood != nil {
		lines = append(lines, fmt.Sprintf("- Mood: %s %s", p.Mood.Label, p.Mood.Symbol))
	}
	if p.Weather != nil {
		lines = append(lines, fmt.Sprintf("- Weather: %s %s, %s°C",
			p.Weather.ConditionLabel, p.Weather.ConditionSymbol, textfmt.Decimal1(p.Weather.TempC)))
	}
	if p.Location != nil {
		lines = append(lines, fmt.Sprintf("- Location: %s (%.4f, %.4f)",
			p.Location.DisplayName, p.Location.Lat, p.Location.Lon))
	}
	if len(p.Tags) > 0 {
		lines = append(lines, "- Tags: "+strings.Join(p.Tags, ", "))
	}
	favorite := "No"
	if p.IsFavorite {
		favorite = "Yes"
	}
	lines = append(lines, "- Favorite: "+favorite)
	lines = append(lines, fmt.Sprintf("- Word Count: %d", p.WordCount))
	lines = append(lines, "")
	lines = append(lines, "---")
	lines = append(lines, "")
	lines = append(lines, p.Content)
	lines = append(lines, "")
	if len(p.Photos) > 0 {
		lines = append(lines, "## Photos")
		for i, photo := range p.Photos {
			caption := fmt.Sprintf("Photo %d", i+1)
			if photo.Caption != nil {
				caption = *photo.Caption
			}
			lines = append(lines, fmt.Sprintf("- %s • %s • %dx%d",
				caption, textfmt.HumanBytes(photo.FileSize), photo.Width, photo.Height))
		}
		lines = append(lines, "")
	}

	return []byte(strings.Join(lines, "\n"))
}
