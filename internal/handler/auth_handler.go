package handler

import (
	"net/http"

	"travel-journal-server/internal/models"
	"travel-journal-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the registration, login and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.Named("AuthHandler"),
	}
}

// RegisterRoutes wires the auth endpoints. rateLimit is applied to the
// unauthenticated credential endpoints only.
func (h *AuthHandler) RegisterRoutes(router *gin.Engine, rateLimit gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	if rateLimit != nil {
		authGroup.Use(rateLimit)
	}
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
	}

	protected := router.Group("/api")
	protected.Use(AuthMiddleware(h.authService))
	{
		protected.GET("/me", h.getMe)
	}
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body for register", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request body: " + err.Error()})
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"user":        user,
		"accessToken": tokens.AccessToken,
		"expiresAt":   tokens.ExpiresAt,
	})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body for login", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request body: " + err.Error()})
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	loginsTotal.Inc()

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"accessToken": tokens.AccessToken,
		"expiresAt":   tokens.ExpiresAt,
	})
}

func (h *AuthHandler) getMe(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
