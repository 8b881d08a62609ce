// utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/session_models"
)

// SessionContextKey is where the auth middleware parks the loaded session.
const SessionContextKey = "portal_session"

// GetSessionFromContext extracts the portal session set by the auth
// middleware.
func GetSessionFromContext(c *gin.Context) (*session_models.PortalSession, error) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		logger.ErrorLogger.Error("Session not found in context.")
		return nil, ErrSessionNotFound
	}
	sess, ok := value.(*session_models.PortalSession)
	if !ok {
		logger.ErrorLogger.Errorf("Session in context has unexpected type: %T", value)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
