package services

import (
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/mindfulhq/mindful_journal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	page := export.PageConfig{
		Width:        cfg.PDFPageWidth,
		Height:       cfg.PDFPageHeight,
		MarginTop:    cfg.PDFPageMargin,
		MarginLeft:   cfg.PDFPageMargin,
		MarginBottom: cfg.PDFPageMargin,
		MarginRight:  cfg.PDFPageMargin,
	}

	container.Entry = NewEntryService(repos.EntryRepo, repos.TagRepo)
	container.Tag = NewTagService(repos.TagRepo)
	container.Photo = NewPhotoService(repos.PhotoRepo, repos.EntryRepo)
	container.Export = NewExportService(repos.EntryRepo, repos.PhotoRepo, page)
	container.Insights = NewInsightsService(repos.EntryRepo)
	container.Stats = NewStatsService(repos.EntryRepo, repos.PhotoRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EntrySvcFacade    = (*EntryService)(nil)
	_ portssvc.TagSvcFacade      = (*TagService)(nil)
	_ portssvc.PhotoSvcFacade    = (*PhotoService)(nil)
	_ portssvc.ExportSvcFacade   = (*ExportService)(nil)
	_ portssvc.InsightsSvcFacade = (*InsightsService)(nil)
	_ portssvc.StatsSvcFacade    = (*StatsService)(nil)
)
