package main

import (
	"context"
	"embed"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/config"
	redisclient "github.com/hallbook/hallbook/config/redis"
	"github.com/hallbook/hallbook/controllers/booking_controller"
	availabilitycron "github.com/hallbook/hallbook/cron"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/middlewares/cors"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/routes"
	"github.com/hallbook/hallbook/utils/mail"
)

//go:embed templates/email/*
var embeddedEmailTemplates embed.FS

const (
	sessionTTL = 24 * time.Hour
	tokenTTL   = 24 * time.Hour
)

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	mail.InitTemplates(embeddedEmailTemplates)
	logger.InfoLogger.Info("Application: Email templates initialized.")

	rdb := redisclient.GetRedisClient()
	defer redisclient.CloseRedis()

	api := clients.NewBookingAPIClient(config.BookingAPIBaseURL())
	store := session_models.NewStore(rdb, sessionTTL)

	// With configured admins the calendar reads the Redis cache the cron
	// job keeps warm from the booking store; without them the portal runs
	// in demo mode on the fixture table.
	refresher := availabilitycron.NewAvailabilityRefresher(api, rdb)
	var lookup booking_controller.LookupFactory
	if len(refresher.AdminIDs) > 0 {
		lookup = func(venueID string) availability_models.Lookup {
			return availability_models.NewRedisLookup(rdb, venueID)
		}
	} else {
		fixture := availability_models.FixtureTable()
		lookup = func(string) availability_models.Lookup { return fixture }
	}
	refresher.Start()
	defer refresher.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware())

	routes.RegisterUserRoutes(r, store, api, tokenTTL)
	routes.RegisterVenueRoutes(r, store, api)
	routes.RegisterBookingRoutes(r, store, api, lookup)
	routes.RegisterEventRoutes(r, store)
	routes.RegisterContactRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok from booking portal"})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.InfoLogger.Infof("Booking portal listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLogger.Errorf("Server failed to listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.InfoLogger.Info("Shutting down booking portal...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.InfoLogger.Info("Booking portal exited gracefully.")
}
