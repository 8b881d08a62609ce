package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/controllers/booking_controller"
	middleware "github.com/hallbook/hallbook/middlewares"
	"github.com/hallbook/hallbook/middlewares/auth"
	"github.com/hallbook/hallbook/models/session_models"
)

// RegisterBookingRoutes registers the booking-flow and bookings-list routes.
func RegisterBookingRoutes(router *gin.Engine, store *session_models.Store, api clients.BookingAPI, lookup booking_controller.LookupFactory) {
	bookingController := booking_controller.NewBookingController(store, api, lookup)

	flow := router.Group("/api/booking-flow")
	flow.Use(auth.AuthMiddleware(store))
	{
		flow.GET("/calendar", bookingController.GetCalendar)
		flow.POST("/calendar/prev", bookingController.PrevMonth)
		flow.POST("/calendar/next", bookingController.NextMonth)
		flow.POST("/date", bookingController.SelectDate)
		flow.POST("/session", bookingController.SelectSession)
		flow.POST("/details", bookingController.UpdateDetails)
		flow.POST("/submit",
			middleware.CombinedRateLimiter("submit-booking", "10-1m", "30-10m"),
			bookingController.Submit)
		flow.POST("/cancel", bookingController.Cancel)
	}

	bookings := router.Group("/api/bookings")
	bookings.Use(auth.AuthMiddleware(store), auth.AdminOnly())
	{
		bookings.GET("/",
			middleware.NewRateLimiter("30-1m", "list-bookings"),
			bookingController.ListBookings)
	}
}
