// File: studiobook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiobook/config"
	"studiobook/database"
	bookingRepo "studiobook/database/repository/booking"
	bookoutRepo "studiobook/database/repository/bookout"
	"studiobook/handlers"
	"studiobook/middleware"
	"studiobook/routes"
	"studiobook/services/schedule"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	bookouts := bookoutRepo.NewMongoBookoutRepo()

	// services.
	sourceAdapter := &schedule.SourceAdapter{
		Bookings: bookings,
		Bookouts: bookouts,
		Excluded: config.ExcludedStatuses(),
	}
	scheduleService := &schedule.DefaultScheduleService{
		Source:    sourceAdapter,
		Generator: schedule.NewGenerator(sourceAdapter),
		Cache:     utils.GetCacheClient(),
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(bookings, utils.GetCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Calendar engine endpoints.
		GetCalendarHandler:      scheduleHandler.GetCalendarHandler,
		GetDayHandler:           scheduleHandler.GetDayHandler,
		GetGapsHandler:          scheduleHandler.GetGapsHandler,
		CreateTimeOffHandler:    scheduleHandler.CreateTimeOffHandler,
		UpdateIntervalHandler:   scheduleHandler.UpdateIntervalHandler,
		DeleteIntervalHandler:   scheduleHandler.DeleteIntervalHandler,
		GenerateGhostsHandler:   scheduleHandler.GenerateGhostsHandler,
		ListGhostsHandler:       scheduleHandler.ListGhostsHandler,
		BulkDeleteGhostsHandler: scheduleHandler.BulkDeleteGhostsHandler,

		// Booking intake/lifecycle endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		UpdateBookingHandler:       bookingHandler.UpdateBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,

		// Auth endpoints.
		AdminLoginHandler: handlers.AdminLoginHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
