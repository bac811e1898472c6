package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"travel-journal-server/internal/models"
	"travel-journal-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *StoryHandler) createStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body for createStory", zap.Stringer("userID", userID), zap.Error(err))
		handleServiceError(c, models.ErrBadRequest)
		return
	}
	if req.VisitedLocations == nil {
		// The field must be present; an empty list is allowed.
		handleServiceError(c, service.ErrMissingFields)
		return
	}

	story, err := h.storyService.Create(c.Request.Context(), userID, service.CreateStoryInput{
		Title:             req.Title,
		Story:             req.Story,
		VisitedLocations:  *req.VisitedLocations,
		ImageURL:          req.ImageURL,
		VisitedDateMillis: req.VisitedDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	storiesCreatedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{"story": story})
}

func (h *StoryHandler) listStories(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	stories, err := h.storyService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *StoryHandler) searchStories(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	stories, err := h.storyService.Search(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *StoryHandler) filterStories(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		handleServiceError(c, service.ErrMissingDateBounds)
		return
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		handleServiceError(c, fmt.Errorf("%w: invalid startDate", models.ErrInvalidInput))
		return
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		handleServiceError(c, fmt.Errorf("%w: invalid endDate", models.ErrInvalidInput))
		return
	}

	stories, err := h.storyService.FilterByDateRange(c.Request.Context(), userID, start, end)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *StoryHandler) updateStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body for updateStory", zap.Stringer("userID", userID), zap.Error(err))
		handleServiceError(c, models.ErrBadRequest)
		return
	}
	if req.VisitedLocations == nil {
		handleServiceError(c, service.ErrMissingFields)
		return
	}

	story, err := h.storyService.Update(c.Request.Context(), userID, storyID, service.UpdateStoryInput{
		Title:             req.Title,
		Story:             req.Story,
		VisitedLocations:  *req.VisitedLocations,
		ImageURL:          req.ImageURL,
		VisitedDateMillis: req.VisitedDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

func (h *StoryHandler) updateFavourite(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	var req favouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsFavourite == nil {
		h.logger.Warn("Invalid request body for updateFavourite", zap.Stringer("userID", userID))
		handleServiceError(c, fmt.Errorf("%w: isFavourite is required", models.ErrInvalidInput))
		return
	}

	story, err := h.storyService.SetFavourite(c.Request.Context(), userID, storyID, *req.IsFavourite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

func (h *StoryHandler) deleteStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	if err := h.storyService.Delete(c.Request.Context(), userID, storyID); err != nil {
		handleServiceError(c, err)
		return
	}

	storiesDeletedTotal.Inc()

	c.JSON(http.StatusOK, gin.H{"message": "Travel story deleted successfully"})
}

func parseStoryID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zap.L().Warn("Invalid story ID format", zap.String("id", idStr), zap.Error(err))
		handleServiceError(c, fmt.Errorf("%w: invalid story ID format", models.ErrBadRequest))
		return uuid.Nil, false
	}
	return id, true
}
