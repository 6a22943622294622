package export_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]export.Format{
		"json":     export.FormatJSON,
		"CSV":      export.FormatCSV,
		"markdown": export.FormatMarkdown,
		"md":       export.FormatMarkdown,
		" pdf ":    export.FormatPDF,
	} {
		got, err := export.ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := export.ParseFormat("docx")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := export.NewExporter().Export(context.Background(), sampleEntry(), export.Format("xml"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExportJSONDeterminism(t *testing.T) {
	exp := export.NewExporter()
	entry := sampleEntry()

	first, err := exp.Export(context.Background(), entry, export.FormatJSON)
	require.NoError(t, err)
	second, err := exp.Export(context.Background(), entry, export.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes, second.Bytes, "same entry must yield byte-identical JSON")
}

func TestExportJSONShape(t *testing.T) {
	res, err := export.NewExporter().Export(context.Background(), sampleEntry(), export.FormatJSON)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(res.Bytes, &doc))

	for _, key := range []string{
		"id", "title", "content", "createdAt", "modifiedAt", "mood", "moodEmoji",
		"location", "weather", "isFavorite", "wordCount", "tags", "photos",
	} {
		assert.Contains(t, doc, key)
	}

	assert.JSONEq(t, `"happy"`, string(doc["mood"]))
	assert.JSONEq(t, `"🙂"`, string(doc["moodEmoji"]))
	assert.JSONEq(t, `"Short note."`, string(doc["title"]), "resolved title falls back to content")
	assert.JSONEq(t, `"2024-03-02T14:05:09.123Z"`, string(doc["createdAt"]))
	assert.JSONEq(t, `["Nature"]`, string(doc["tags"]))
	assert.JSONEq(t, `[]`, string(doc["photos"]))
}

func TestExportJSONNullKeysPresent(t *testing.T) {
	res, err := export.NewExporter().Export(context.Background(), domain.JournalEntry{EntryID: "x"}, export.FormatJSON)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(res.Bytes, &doc))

	for _, key := range []string{"mood", "moodEmoji", "location", "weather"} {
		require.Contains(t, doc, key)
		assert.Equal(t, "null", string(doc[key]), "optional field %q must encode as explicit null", key)
	}
}

func TestExportCSVHeaderStability(t *testing.T) {
	wantHeader := []string{
		"id", "title", "content", "createdAt", "modifiedAt", "mood", "moodEmoji",
		"location", "weather", "isFavorite", "wordCount", "tags", "photosCount",
	}

	for name, entry := range map[string]domain.JournalEntry{
		"rich":  sampleEntry(),
		"empty": {EntryID: "e"},
	} {
		res, err := export.NewExporter().Export(context.Background(), entry, export.FormatCSV)
		require.NoError(t, err, name)

		records, err := csv.NewReader(strings.NewReader(string(res.Bytes))).ReadAll()
		require.NoError(t, err, name)
		require.Len(t, records, 2, "header plus exactly one data row")
		assert.Equal(t, wantHeader, records[0])
		assert.Len(t, records[1], 13)
	}
}

func TestExportCSVRoundTripsHostileContent(t *testing.T) {
	entry := sampleEntry()
	entry.Title = `A "quoted", multi` + "\nline title"
	entry.Content = "col,umns and \"quotes\"\r\nand breaks"
	entry.UpdateWordCount()

	res, err := export.NewExporter().Export(context.Background(), entry, export.FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(res.Bytes))).ReadAll()
	require.NoError(t, err, "standard CSV parser must accept the output")
	require.Len(t, records, 2)
	assert.Equal(t, entry.Title, records[1][1])
}

func TestExportCSVFlattening(t *testing.T) {
	res, err := export.NewExporter().Export(context.Background(), sampleEntry(), export.FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(res.Bytes))).ReadAll()
	require.NoError(t, err)
	row := records[1]

	assert.Equal(t, "Golden Gate Park (37.7749,-122.4194)", row[7])
	assert.Equal(t, "Clear ☀️ 18.5°C", row[8])
	assert.Equal(t, "false", row[9])
	assert.Equal(t, "2", row[10])
	assert.Equal(t, "Nature", row[11])
	assert.Equal(t, "0", row[12])
}

func TestExportMarkdownScenario(t *testing.T) {
	res, err := export.NewExporter().Export(context.Background(), sampleEntry(), export.FormatMarkdown)
	require.NoError(t, err)
	md := string(res.Bytes)

	assert.True(t, strings.HasPrefix(md, "# Short note.\n"), "document must open with the resolved title")
	for _, line := range []string{
		"- Mood: Happy 🙂",
		"- Weather: Clear ☀️, 18.5°C",
		"- Location: Golden Gate Park (37.7749, -122.4194)",
		"- Tags: Nature",
		"- Favorite: No",
		"- Word Count: 2",
	} {
		assert.Contains(t, md, line+"\n")
	}
	assert.Contains(t, md, "\n---\n\nShort note.\n")
	assert.NotContains(t, md, "## Photos", "no photo section for an entry without photos")
}

func TestExportMarkdownOmitsEmptyOptionalSections(t *testing.T) {
	entry := domain.JournalEntry{EntryID: "x", Title: "Plain", Content: "Just text."}
	entry.UpdateWordCount()

	res, err := export.NewExporter().Export(context.Background(), entry, export.FormatMarkdown)
	require.NoError(t, err)
	md := string(res.Bytes)

	for _, absent := range []string{"- Mood:", "- Weather:", "- Location:", "- Tags:"} {
		assert.NotContains(t, md, absent)
	}
	assert.Contains(t, md, "- Favorite: No")
	assert.Contains(t, md, "- Word Count: 2")
	assert.Contains(t, md, "- Created: ")
	assert.Contains(t, md, "- Modified: ")
}

func TestExportMarkdownPhotoBullets(t *testing.T) {
	entry := sampleEntry()
	entry.Photos = []domain.Photo{
		{PhotoID: "p1", Caption: strPtr("Sunset"), FileSize: 153_600, Width: 1024, Height: 768},
		{PhotoID: "p2", FileSize: 2_450_000, Width: 4032, Height: 3024},
	}

	res, err := export.NewExporter().Export(context.Background(), entry, export.FormatMarkdown)
	require.NoError(t, err)
	md := string(res.Bytes)

	assert.Contains(t, md, "## Photos\n")
	assert.Contains(t, md, "- Sunset • 153.6 KB • 1024x768")
	assert.Contains(t, md, "- Photo 2 • 2.5 MB • 4032x3024", "uncaptioned photos use a 1-indexed placeholder")
}

func TestExportErrorIsNotPartial(t *testing.T) {
	res, err := export.NewExporter().Export(context.Background(), sampleEntry(), export.Format("bogus"))
	assert.Nil(t, res, "failed exports must not return partial results")
	assert.Error(t, err)
}

func TestRenderErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &export.RenderError{Stage: export.StageSetup, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "setup")
}
