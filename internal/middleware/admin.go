package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homevista/homevista_backend/internal/core/ports/services"
)

// AdminRequired creates a Gin middleware handler that allows only admin users
// through. It must run after AuthMiddleware so the user ID is in the context.
func AdminRequired(userSvc services.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Warn("Admin check without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for admin check", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		if !user.IsAdmin {
			logger.Warn("Non-admin user attempted admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
