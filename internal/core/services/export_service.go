package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

type ExportService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	photoRepo portsrepo.PhotoRepositoryFacade
	exporter  *export.Exporter
}

func NewExportService(entryRepo portsrepo.EntryRepositoryFacade, photoRepo portsrepo.PhotoRepositoryFacade, page export.PageConfig) *ExportService {
	return &ExportService{
		entryRepo: entryRepo,
		photoRepo: photoRepo,
		exporter:  &export.Exporter{Page: page},
	}
}

func (s *ExportService) ExportEntry(ctx context.Context, entryID string, format export.Format) (*export.Result, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry %s for export: %w", entryID, err)
	}

	// Only the PDF renderer embeds images; the text formats need just the
	// photo metadata the entry already carries.
	if format == export.FormatPDF && len(entry.Photos) > 0 {
		photos, err := s.photoRepo.FindPhotosByEntryID(ctx, entryID, true)
		if err != nil {
			return nil, fmt.Errorf("failed to load photo data for entry %s: %w", entryID, err)
		}
		entry.Photos = photos
	}

	result, err := s.exporter.Export(ctx, *entry, format)
	if err != nil {
		logger.Error("Export failed",
			slog.String("entry_id", entryID),
			slog.String("format", string(format)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Entry exported",
		slog.String("entry_id", entryID),
		slog.String("format", string(format)),
		slog.Int("bytes", len(result.Bytes)),
		slog.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}
