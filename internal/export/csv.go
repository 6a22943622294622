package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
)

// csvHeader is the fixed 13-column header. The sequence is part of the public
// contract and never varies with entry content.
var csvHeader = []string{
	"id",
	"title",
	"content",
	"createdAt",
	"modifiedAt",
	"mood",
	"moodEmoji",
	"location",
	"weather",
	"isFavorite",
	"wordCount",
	"tags",
	"photosCount",
}

// encodeCSV serializes the projection as a two-row CSV table: the fixed header
// and one data row. Composite fields are flattened to single display strings
// before escaping; photo detail is intentionally reduced to a count.
func encodeCSV(p Projection) []byte {
	var mood, moodEmoji string
	if p.Mood != nil {
		mood = p.Mood.Code
		moodEmoji = p.Mood.Symbol
	}

	var location string
	if p.Location != nil {
		location = fmt.Sprintf("%s (%s,%s)",
			p.Location.DisplayName,
			strconv.FormatFloat(p.Location.Lat, 'f', -1, 64),
			strconv.FormatFloat(p.Location.Lon, 'f', -1, 64),
		)
	}

	var weather string
	if p.Weather != nil {
		weather = fmt.Sprintf("%s %s %s°C",
			p.Weather.ConditionLabel,
			p.Weather.ConditionSymbol,
			textfmt.Decimal1(p.Weather.TempC),
		)
	}

	row := []string{
		p.EntryID,
		p.ResolvedTitle,
		p.Content,
		textfmt.ISOTimestamp(p.CreatedAt),
		textfmt.ISOTimestamp(p.ModifiedAt),
		mood,
		moodEmoji,
		location,
		weather,
		strconv.FormatBool(p.IsFavorite),
		strconv.Itoa(p.WordCount),
		strings.Join(p.Tags, ";"),
		strconv.Itoa(len(p.Photos)),
	}

	// Every field goes through CSVEscape, safe-looking ones included.
	escaped := make([]string, len(row))
	for i, field := range row {
		escaped[i] = textfmt.CSVEscape(field)
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')
	b.WriteString(strings.Join(escaped, ","))
	b.WriteByte('\n')
	return []byte(b.String())
}
