package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/models/user_models"
	"github.com/hallbook/hallbook/utils"
)

// AuthMiddleware validates the bearer session token and loads the portal
// session it points at. Handlers downstream read the session through
// utils.GetSessionFromContext and never touch storage keys directly.
func AuthMiddleware(store *session_models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "NO_TOKEN", "error": "No authorization token provided."})
			return
		}

		var tokenString string
		if len(authHeader) > 7 && strings.ToLower(authHeader[:7]) == "bearer " {
			tokenString = authHeader[7:]
		} else {
			logger.ErrorLogger.Error("Invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "INVALID_AUTH_FORMAT", "error": "Invalid authorization format."})
			return
		}

		sessionID, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to parse session token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "INVALID_TOKEN", "error": "Invalid token"})
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			if err == session_models.ErrSessionNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "SESSION_EXPIRED", "error": "Session expired. Please login again."})
				return
			}
			logger.ErrorLogger.Errorf("Failed to load session %s: %v", sessionID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}

		c.Set(utils.SessionContextKey, sess)
		if sess.User != nil {
			c.Set("sub", sess.User.ID)
			c.Set("role", sess.User.Role)
		}
		c.Next()
	}
}

// AdminOnly rejects requests whose session user does not hold the admin
// role. It must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := utils.GetSessionFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if sess.User == nil || sess.User.Role != user_models.RoleAdmin {
			logger.WarnLogger.Warnf("Non-admin session %s hit an admin route", sess.ID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
