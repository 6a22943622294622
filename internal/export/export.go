// Package export turns a journal entry into one of four serialized
// representations: JSON, CSV, Markdown, or PDF. Each encoder is a pure
// transformation over a projection built fresh per call, so exports are safe
// to run concurrently, including for the same entry.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// ParseFormat maps a caller-supplied string onto a Format. "md" is accepted
// as an alias for markdown. Unknown values return ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type for HTTP responses carrying this format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// FileExtension returns the filename extension for download headers.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	case FormatPDF:
		return "pdf"
	}
	return "bin"
}

// Result is a completed export: the bytes, the MIME type to serve them with,
// and any non-fatal warnings (only the PDF encoder produces warnings, for
// photos it had to skip).
type Result struct {
	Bytes       []byte
	ContentType string
	Warnings    []string
}

// Exporter is the single entry point for exports. It holds no per-call state;
// one instance serves any number of concurrent calls.
type Exporter struct {
	Page PageConfig
}

// NewExporter returns an exporter with the default page geometry.
func NewExporter() *Exporter {
	return &Exporter{Page: DefaultPageConfig()}
}

// Export builds the projection once and dispatches to the encoder for the
// requested format. Text formats return complete UTF-8 buffers or fail
// wholesale; the PDF path may additionally carry warnings for skipped photos.
// The context is honored only by the PDF encoder, between block boundaries.
func (e *Exporter) Export(ctx context.Context, entry domain.JournalEntry, format Format) (*Result, error) {
	projection := BuildProjection(entry)

	switch format {
	case FormatJSON:
		b, err := encodeJSON(projection)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrEncodingFailed, err)
		}
		return &Result{Bytes: b, ContentType: format.ContentType()}, nil
	case FormatCSV:
		return &Result{Bytes: encodeCSV(projection), ContentType: format.ContentType()}, nil
	case FormatMarkdown:
		return &Result{Bytes: encodeMarkdown(projection), ContentType: format.ContentType()}, nil
	case FormatPDF:
		b, warnings, err := encodePDF(ctx, projection, e.Page)
		if err != nil {
			return nil, err
		}
		return &Result{Bytes: b, ContentType: format.ContentType(), Warnings: warnings}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
