package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// exportHandler serves entry downloads in the supported export formats.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// RegisterExportRoutes registers the export download route under /entries.
func RegisterExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)
	rg.GET("/entries/:entryID/export", h.exportEntry)
}

// exportEntry godoc
// @Summary Download an entry as a document
// @Description Renders the entry as JSON, CSV, Markdown or PDF and serves it as an attachment. Non-fatal render warnings are reported in the X-Export-Warning header.
// @Tags export
// @Produce json
// @Produce text/csv
// @Produce text/markdown
// @Produce application/pdf
// @Param entryID path string true "Entry ID"
// @Param format query string true "Export format" Enums(json, csv, markdown, md, pdf)
// @Success 200 {file} file "The rendered document"
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Render failure"
// @Security BearerAuth
// @Router /entries/{entryID}/export [get]
func (h *exportHandler) exportEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.exportService.ExportEntry(c.Request.Context(), entryID, format)
	if err != nil {
		var renderErr *export.RenderError
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.As(err, &renderErr):
			logger.Error("PDF render failed",
				slog.String("entry_id", entryID),
				slog.String("stage", string(renderErr.Stage)),
				slog.String("error", renderErr.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		case errors.Is(err, export.ErrEncodingFailed):
			logger.Error("Export encoding failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode document"})
		default:
			logger.Error("Export failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entry"})
		}
		return
	}

	filename := fmt.Sprintf("entry-%s.%s", entryID, format.FileExtension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if len(result.Warnings) > 0 {
		c.Header("X-Export-Warning", strings.Join(result.Warnings, "; "))
	}

	c.Data(http.StatusOK, result.ContentType, result.Bytes)
}
