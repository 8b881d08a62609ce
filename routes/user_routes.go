package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/controllers/user_controller"
	middleware "github.com/hallbook/hallbook/middlewares"
	"github.com/hallbook/hallbook/middlewares/auth"
	"github.com/hallbook/hallbook/models/session_models"
)

// RegisterUserRoutes registers authentication and session routes.
func RegisterUserRoutes(router *gin.Engine, store *session_models.Store, api clients.BookingAPI, tokenTTL time.Duration) {
	userController := user_controller.NewUserController(store, api, tokenTTL)

	// Public routes; login gets tighter limits than the rest.
	router.POST("/api/auth/login",
		middleware.CombinedRateLimiter("login", "5-1m", "20-10m"),
		userController.Login)
	router.POST("/api/auth/signup",
		middleware.CombinedRateLimiter("signup", "3-1m", "10-10m"),
		userController.Signup)

	protected := router.Group("/api/auth")
	protected.Use(auth.AuthMiddleware(store))
	{
		protected.GET("/me", userController.Me)
		protected.POST("/logout", userController.Logout)
	}
}
