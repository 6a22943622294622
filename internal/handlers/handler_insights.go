package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// insightsHandler serves sentiment and keyword analysis of entry text.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{insightsService: is}
}

// registerInsightsRoutes registers analysis routes.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)

	rg.GET("/entries/:entryID/insights", h.getEntryInsights)
	rg.POST("/insights/analyze", h.analyzeText)
}

func toInsightsResponse(insights *portssvc.EntryInsights) dto.EntryInsightsResponse {
	resp := dto.EntryInsightsResponse{
		Sentiment:   insights.Sentiment.Sentiment,
		Confidence:  insights.Sentiment.Confidence,
		Mood:        string(insights.Sentiment.Mood),
		Description: insights.Sentiment.Description(),
		Keywords:    insights.Keywords,
		Summary:     insights.Summary,
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	resp.Entities = make([]dto.EntityResponse, 0, len(insights.Entities))
	for _, entity := range insights.Entities {
		resp.Entities = append(resp.Entities, dto.EntityResponse{
			Name: entity.Name,
			Type: string(entity.Type),
		})
	}
	if insights.SuggestedMood != nil {
		mood := string(*insights.SuggestedMood)
		resp.SuggestedMood = &mood
	}
	return resp
}

// getEntryInsights godoc
// @Summary Analyze a stored entry
// @Description Runs sentiment scoring, keyword extraction and summarization over the entry's content
// @Tags insights
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryInsightsResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID}/insights [get]
func (h *insightsHandler) getEntryInsights(c *gin.Context) {
	insights, err := h.insightsService.AnalyzeEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to analyze entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze entry"})
		return
	}

	c.JSON(http.StatusOK, toInsightsResponse(insights))
}

// analyzeText godoc
// @Summary Analyze arbitrary text
// @Description Runs the same analysis as the entry endpoint over text supplied in the request, without storing anything
// @Tags insights
// @Accept json
// @Produce json
// @Param text body object{text=string} true "Text to analyze"
// @Success 200 {object} dto.EntryInsightsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /insights/analyze [post]
func (h *insightsHandler) analyzeText(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	insights, err := h.insightsService.AnalyzeText(c.Request.Context(), req.Text)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to analyze text", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze text"})
		return
	}

	c.JSON(http.StatusOK, toInsightsResponse(insights))
}
