// File: ashwini/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ashwini/config"
	"ashwini/database"
	opRepoPkg "ashwini/database/repository/op"
	"ashwini/handlers"
	"ashwini/middleware"
	"ashwini/routes"
	"ashwini/services/booking"
	"ashwini/services/dashboard"
	"ashwini/services/notification"
	"ashwini/services/queue"
	"ashwini/services/report"
	"ashwini/utils"
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
	opRepo := opRepoPkg.NewMongoOPRepo()

	// services.
	smsSender := notification.NewTwilioSender()
	sequencer := &booking.Sequencer{
		Repo:          opRepo,
		AllowFallback: config.AppConfig.SequencerAllowFallback,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      opRepo,
		Sequencer: sequencer,
		SMS:       smsSender,
	}
	queueService := &queue.DefaultQueueService{
		Repo: opRepo,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Repo:  opRepo,
		Cache: utils.GetCacheClient(),
	}
	reportService := &report.DefaultReportService{
		Repo: opRepo,
		SMS:  smsSender,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	queueHandler := handlers.NewQueueHandler(queueService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookOP: bookingHandler.BookOP,
		AddOP:  bookingHandler.AddOP,

		CurrentConsulting: queueHandler.CurrentConsulting,
		NextInQueue:       queueHandler.NextInQueue,

		ListBookings:    queueHandler.ListBookings,
		UpdateStatus:    queueHandler.UpdateStatus,
		DashboardCounts: dashboardHandler.DashboardCounts,

		ListReports:        reportHandler.ListReports,
		UpdateReportStatus: reportHandler.UpdateReportStatus,
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

	database.CloseDB()
	logger.Sugar().Info("main: server stopped gracefully")
}
