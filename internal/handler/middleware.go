package handler

import (
	"strings"

	"travel-journal-server/internal/models"
	"travel-journal-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the bearer access token and stores the caller's
// user id in the Gin context under "user_id".
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			zap.L().Warn("Authorization header missing")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			zap.L().Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		claims, err := authService.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			zap.L().Warn("Access token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// getUserIDFromContext returns the authenticated user's id or aborts with an
// internal error when the middleware did not run.
func getUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		zap.L().Error("user_id missing from request context")
		handleServiceError(c, models.ErrInternalServer)
		return uuid.Nil, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		zap.L().Error("user_id in request context has unexpected type or is nil")
		handleServiceError(c, models.ErrInternalServer)
		return uuid.Nil, false
	}
	return userID, true
}
