package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/controllers/contact_controller"
	middleware "github.com/hallbook/hallbook/middlewares"
)

// RegisterContactRoutes registers the public contact-form route.
func RegisterContactRoutes(router *gin.Engine) {
	contactController := contact_controller.NewContactController()

	router.POST("/api/contact",
		middleware.CombinedRateLimiter("contact", "3-1m", "10-10m"),
		contactController.SubmitMessage)
}
