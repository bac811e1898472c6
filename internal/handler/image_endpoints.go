package handler

import (
	"fmt"
	"net/http"

	"travel-journal-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *StoryHandler) uploadImage(c *gin.Context) {
	if _, ok := getUserIDFromContext(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.logger.Warn("No image in upload request", zap.Error(err))
		handleServiceError(c, fmt.Errorf("%w: no image uploaded", models.ErrBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded image", zap.Error(err))
		handleServiceError(c, err)
		return
	}
	defer file.Close()

	imageURL, err := h.images.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	imageUploadsTotal.Inc()

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

func (h *StoryHandler) deleteImage(c *gin.Context) {
	if _, ok := getUserIDFromContext(c); !ok {
		return
	}

	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		handleServiceError(c, fmt.Errorf("%w: imageUrl parameter is required", models.ErrInvalidInput))
		return
	}

	if err := h.images.Remove(c.Request.Context(), imageURL); err != nil {
		h.logger.Warn("Failed to delete image", zap.String("imageUrl", imageURL), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
