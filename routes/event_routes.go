package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/controllers/event_controller"
	middleware "github.com/hallbook/hallbook/middlewares"
	"github.com/hallbook/hallbook/middlewares/auth"
	"github.com/hallbook/hallbook/models/session_models"
)

// RegisterEventRoutes registers the upcoming-events routes.
func RegisterEventRoutes(router *gin.Engine, store *session_models.Store) {
	eventController := event_controller.NewEventController()

	events := router.Group("/api/events")
	events.Use(auth.AuthMiddleware(store))
	{
		events.GET("/",
			middleware.NewRateLimiter("30-1m", "list-events"),
			eventController.ListEvents)
	}
}
