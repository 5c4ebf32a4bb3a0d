// File: hireflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireflow/config"
	"hireflow/cron"
	"hireflow/database"
	bookingRepo "hireflow/database/repository/booking"
	"hireflow/handlers"
	"hireflow/middleware"
	"hireflow/models"
	"hireflow/routes"
	"hireflow/services/notification"
	"hireflow/services/scheduling"
	"hireflow/services/timezone"
	"hireflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Repositories.
	repo := bookingRepo.NewMongoBookingRepo()
	if err := repo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Notification: submissions enqueue; the worker delivers to the webhook.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	webhookSender := notification.NewWebhookNotificationService(config.AppConfig.NotifyWebhookURL)
	cron.InitNotifyWorker(webhookSender)

	// Services.
	catalog := timezone.DefaultCatalog()
	engine := &scheduling.DefaultSchedulingEngine{
		Repo:     repo,
		Sessions: scheduling.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Catalog:  catalog,
		Notifier: notification.NewQueueNotificationService(asynqClient),
		Hours: models.WorkingHours{
			Start: config.AppConfig.WorkHoursStart,
			End:   config.AppConfig.WorkHoursEnd,
		},
		UnavailableDates: map[string]bool{},
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ClientTimeZoneMiddleware(catalog))

	schedulingHandler := handlers.NewSchedulingHandler(engine, logger)
	timezoneHandler := handlers.NewTimeZoneHandler(catalog)
	adminHandler := handlers.NewAdminHandler(repo, logger)
	routes.RegisterRoutes(router, schedulingHandler, timezoneHandler, adminHandler)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
