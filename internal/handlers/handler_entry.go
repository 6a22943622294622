package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers routes related to journal entries.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/search", h.searchEntries)
		entries.GET("/favorites", h.listFavorites)
		entries.GET("/by-mood/:mood", h.listByMood)
		entries.GET("/by-date", h.listByDateRange)
		entries.GET("/:entryID", h.getEntry)
		entries.PATCH("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.PUT("/:entryID/favorite", h.setFavorite)
		entries.POST("/:entryID/tags/:tagID", h.addTag)
		entries.DELETE("/:entryID/tags/:tagID", h.removeTag)
	}
}

func parseSortOrder(raw string) (domain.EntrySortOrder, bool) {
	switch raw {
	case "", string(domain.SortDateDescending):
		return domain.SortDateDescending, true
	case string(domain.SortDateAscending):
		return domain.SortDateAscending, true
	case string(domain.SortTitleAscending):
		return domain.SortTitleAscending, true
	case string(domain.SortModifiedDate):
		return domain.SortModifiedDate, true
	}
	return "", false
}

// respondEntryError translates service errors into HTTP responses.
func respondEntryError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates an entry with optional mood, location, weather and tags
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondEntryError(c, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns a token-paginated page of entries
// @Tags entries
// @Produce json
// @Param sortBy query string false "Sort order" Enums(date_desc, date_asc, title_asc, modified_desc)
// @Param limit query int false "Page size"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	sortBy, ok := parseSortOrder(params.SortBy)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort order: " + params.SortBy})
		return
	}

	entries, nextToken, err := h.entryService.ListEntries(c.Request.Context(), sortBy, params.Limit, params.NextToken)
	if err != nil {
		respondEntryError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	})
}

// searchEntries godoc
// @Summary Search journal entries
// @Description Returns entries whose title or content match the query, newest first
// @Tags entries
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /entries/search [get]
func (h *entryHandler) searchEntries(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.entryService.SearchEntries(c.Request.Context(), query, limit)
	if err != nil {
		respondEntryError(c, err, "Failed to search entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listFavorites godoc
// @Summary List favorite entries
// @Tags entries
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Security BearerAuth
// @Router /entries/favorites [get]
func (h *entryHandler) listFavorites(c *gin.Context) {
	entries, err := h.entryService.GetFavoriteEntries(c.Request.Context())
	if err != nil {
		respondEntryError(c, err, "Failed to list favorite entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listByMood godoc
// @Summary List entries by mood
// @Tags entries
// @Produce json
// @Param mood path string true "Mood" Enums(very_happy, happy, neutral, sad, very_sad)
// @Param limit query int false "Maximum results"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Unknown mood"
// @Security BearerAuth
// @Router /entries/by-mood/{mood} [get]
func (h *entryHandler) listByMood(c *gin.Context) {
	mood := domain.Mood(c.Param("mood"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.entryService.GetEntriesByMood(c.Request.Context(), mood, limit)
	if err != nil {
		respondEntryError(c, err, "Failed to list entries by mood")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listByDateRange godoc
// @Summary List entries in a date range
// @Tags entries
// @Produce json
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /entries/by-date [get]
func (h *entryHandler) listByDateRange(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp: " + err.Error()})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp: " + err.Error()})
		return
	}

	entries, err := h.entryService.GetEntriesByDateRange(c.Request.Context(), from, to)
	if err != nil {
		respondEntryError(c, err, "Failed to list entries by date range")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondEntryError(c, err, "Failed to get entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Applies the non-null fields of the request to the entry
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [patch]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("entryID"), req)
	if err != nil {
		respondEntryError(c, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("entryID")); err != nil {
		respondEntryError(c, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// setFavorite godoc
// @Summary Mark or unmark an entry as favorite
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param favorite body object{favorite=bool} true "Favorite flag"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID}/favorite [put]
func (h *entryHandler) setFavorite(c *gin.Context) {
	var req struct {
		Favorite bool `json:"favorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.SetFavorite(c.Request.Context(), c.Param("entryID"), req.Favorite)
	if err != nil {
		respondEntryError(c, err, "Failed to set favorite")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// addTag godoc
// @Summary Link a tag to an entry
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Param tagID path string true "Tag ID"
// @Success 204 "Linked"
// @Failure 404 {object} map[string]string "Entry or tag not found"
// @Security BearerAuth
// @Router /entries/{entryID}/tags/{tagID} [post]
func (h *entryHandler) addTag(c *gin.Context) {
	if err := h.entryService.AddTag(c.Request.Context(), c.Param("entryID"), c.Param("tagID")); err != nil {
		respondEntryError(c, err, "Failed to tag entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeTag godoc
// @Summary Unlink a tag from an entry
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Param tagID path string true "Tag ID"
// @Success 204 "Unlinked"
// @Failure 404 {object} map[string]string "Link not found"
// @Security BearerAuth
// @Router /entries/{entryID}/tags/{tagID} [delete]
func (h *entryHandler) removeTag(c *gin.Context) {
	if err := h.entryService.RemoveTag(c.Request.Context(), c.Param("entryID"), c.Param("tagID")); err != nil {
		respondEntryError(c, err, "Failed to untag entry")
		return
	}

	c.Status(http.StatusNoContent)
}
