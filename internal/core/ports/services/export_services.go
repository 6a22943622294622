package services

import (
	"context"

	"github.com/mindfulhq/mindful_journal_app/internal/export"
)

// ExportSvcFacade renders stored entries into downloadable documents.
type ExportSvcFacade interface {
	// ExportEntry loads the entry with its photos and renders it in the
	// requested format.
	ExportEntry(ctx context.Context, entryID string, format export.Format) (*export.Result, error)
}
