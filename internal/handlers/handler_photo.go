package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// photoHandler handles HTTP requests related to entry photos.
type photoHandler struct {
	photoService portssvc.PhotoSvcFacade
}

func newPhotoHandler(ps portssvc.PhotoSvcFacade) *photoHandler {
	return &photoHandler{photoService: ps}
}

// registerPhotoRoutes registers photo routes: uploads live under the owning
// entry, everything else under /photos.
func registerPhotoRoutes(rg *gin.RouterGroup, photoService portssvc.PhotoSvcFacade) {
	h := newPhotoHandler(photoService)

	rg.POST("/entries/:entryID/photos", h.attachPhoto)
	rg.GET("/entries/:entryID/photos", h.listEntryPhotos)

	photos := rg.Group("/photos")
	{
		photos.GET("/:photoID", h.getPhoto)
		photos.GET("/:photoID/image", h.getImage)
		photos.GET("/:photoID/thumbnail", h.getThumbnail)
		photos.PATCH("/:photoID/caption", h.updateCaption)
		photos.DELETE("/:photoID", h.deletePhoto)
	}
}

func respondPhotoError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// attachPhoto godoc
// @Summary Attach a photo to an entry
// @Description Uploads an image (multipart field "image"), processes it and stores it on the entry
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param image formData file true "Image file"
// @Param caption formData string false "Caption"
// @Param takenAt formData string false "When the photo was taken (RFC3339)"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID}/photos [post]
func (h *photoHandler) attachPhoto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'image' form file: " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	var caption *string
	if value := c.PostForm("caption"); value != "" {
		caption = &value
	}

	var takenAt time.Time
	if raw := c.PostForm("takenAt"); raw != "" {
		takenAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'takenAt' timestamp: " + err.Error()})
			return
		}
	}

	photo, err := h.photoService.AttachPhoto(c.Request.Context(), c.Param("entryID"), imageData, caption, takenAt)
	if err != nil {
		respondPhotoError(c, err, "Failed to attach photo")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPhotoResponse(photo))
}

// listEntryPhotos godoc
// @Summary List an entry's photos
// @Tags photos
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {array} dto.PhotoResponse
// @Security BearerAuth
// @Router /entries/{entryID}/photos [get]
func (h *photoHandler) listEntryPhotos(c *gin.Context) {
	photos, err := h.photoService.GetPhotosByEntryID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondPhotoError(c, err, "Failed to list photos")
		return
	}

	c.JSON(http.StatusOK, dto.ToPhotoResponses(photos))
}

// getPhoto godoc
// @Summary Get photo metadata
// @Tags photos
// @Produce json
// @Param photoID path string true "Photo ID"
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 {object} map[string]string "Photo not found"
// @Security BearerAuth
// @Router /photos/{photoID} [get]
func (h *photoHandler) getPhoto(c *gin.Context) {
	photo, err := h.photoService.GetPhotoByID(c.Request.Context(), c.Param("photoID"))
	if err != nil {
		respondPhotoError(c, err, "Failed to get photo")
		return
	}

	c.JSON(http.StatusOK, dto.ToPhotoResponse(photo))
}

// getImage godoc
// @Summary Download the full-size image
// @Tags photos
// @Produce image/jpeg
// @Param photoID path string true "Photo ID"
// @Success 200 {file} file "JPEG bytes"
// @Failure 404 {object} map[string]string "Photo not found"
// @Security BearerAuth
// @Router /photos/{photoID}/image [get]
func (h *photoHandler) getImage(c *gin.Context) {
	data, err := h.photoService.GetImage(c.Request.Context(), c.Param("photoID"))
	if err != nil {
		respondPhotoError(c, err, "Failed to get image")
		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}

// getThumbnail godoc
// @Summary Download the thumbnail
// @Tags photos
// @Produce image/jpeg
// @Param photoID path string true "Photo ID"
// @Success 200 {file} file "JPEG bytes"
// @Failure 404 {object} map[string]string "Photo not found"
// @Security BearerAuth
// @Router /photos/{photoID}/thumbnail [get]
func (h *photoHandler) getThumbnail(c *gin.Context) {
	data, err := h.photoService.GetThumbnail(c.Request.Context(), c.Param("photoID"))
	if err != nil {
		respondPhotoError(c, err, "Failed to get thumbnail")
		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}

// updateCaption godoc
// @Summary Change or clear a photo caption
// @Tags photos
// @Accept json
// @Produce json
// @Param photoID path string true "Photo ID"
// @Param caption body dto.UpdateCaptionRequest true "New caption (null clears it)"
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 {object} map[string]string "Photo not found"
// @Security BearerAuth
// @Router /photos/{photoID}/caption [patch]
func (h *photoHandler) updateCaption(c *gin.Context) {
	var req dto.UpdateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	photo, err := h.photoService.UpdateCaption(c.Request.Context(), c.Param("photoID"), req.Caption)
	if err != nil {
		respondPhotoError(c, err, "Failed to update caption")
		return
	}

	c.JSON(http.StatusOK, dto.ToPhotoResponse(photo))
}

// deletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Param photoID path string true "Photo ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Photo not found"
// @Security BearerAuth
// @Router /photos/{photoID} [delete]
func (h *photoHandler) deletePhoto(c *gin.Context) {
	if err := h.photoService.DeletePhoto(c.Request.Context(), c.Param("photoID")); err != nil {
		respondPhotoError(c, err, "Failed to delete photo")
		return
	}

	c.Status(http.StatusNoContent)
}
