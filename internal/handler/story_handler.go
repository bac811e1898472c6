package handler

import (
	"travel-journal-server/internal/imagestore"
	"travel-journal-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StoryHandler serves the travel-story and image endpoints. Every route is
// owner-scoped: the authenticated user id from the context is passed to the
// service on each call.
type StoryHandler struct {
	storyService service.StoryService
	images       imagestore.Store
	logger       *zap.Logger
}

func NewStoryHandler(storyService service.StoryService, images imagestore.Store, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		images:       images,
		logger:       logger.Named("StoryHandler"),
	}
}

// RegisterRoutes wires the story and image endpoints behind the given auth
// middleware.
func (h *StoryHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	storiesGroup := router.Group("/api/stories", authMiddleware)
	{
		storiesGroup.POST("", h.createStory)
		storiesGroup.GET("", h.listStories)
		storiesGroup.GET("/search", h.searchStories)
		storiesGroup.GET("/filter", h.filterStories)
		storiesGroup.PUT("/:id", h.updateStory)
		storiesGroup.PUT("/:id/favourite", h.updateFavourite)
		storiesGroup.DELETE("/:id", h.deleteStory)
	}

	imagesGroup := router.Group("/api/images", authMiddleware)
	{
		imagesGroup.POST("", h.uploadImage)
		imagesGroup.DELETE("", h.deleteImage)
	}
}
