package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/controllers/venue_controller"
	middleware "github.com/hallbook/hallbook/middlewares"
	"github.com/hallbook/hallbook/middlewares/auth"
	"github.com/hallbook/hallbook/models/session_models"
)

// RegisterVenueRoutes registers the venue catalog and selection routes.
func RegisterVenueRoutes(router *gin.Engine, store *session_models.Store, api clients.BookingAPI) {
	venueController := venue_controller.NewVenueController(store, api)

	venues := router.Group("/api/venues")
	venues.Use(auth.AuthMiddleware(store))
	{
		venues.GET("/",
			middleware.NewRateLimiter("30-1m", "list-venues"),
			venueController.ListVenues)
		venues.POST("/select",
			middleware.NewRateLimiter("30-1m", "select-venue"),
			venueController.SelectVenue)
		venues.GET("/names",
			middleware.NewRateLimiter("30-1m", "venue-names"),
			venueController.VenueNames)

		// Admin-only venue management.
		venues.POST("/",
			auth.AdminOnly(),
			middleware.CombinedRateLimiter("add-venue", "5-1m", "20-10m"),
			venueController.AddVenue)
	}
}
