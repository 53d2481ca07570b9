package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicdesk/backend"
	"clinicdesk/config"
	"clinicdesk/cron"
	"clinicdesk/database"
	auditRepo "clinicdesk/database/repository/audit"
	"clinicdesk/handlers"
	"clinicdesk/middleware"
	"clinicdesk/routes"
	scheduleSvc "clinicdesk/services/schedule"
	treatmentSvc "clinicdesk/services/treatment"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSnapshotCache()
	utils.InitCoalesceCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream clinic backend client.
	api := backend.NewClient(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutMS)*time.Millisecond,
	)

	// Audit pipeline: enqueue on request path, persist in the background.
	auditRepository := auditRepo.NewMongoAuditRepo()
	recorder := cron.NewAsynqRecorder()
	cron.InitAuditWorker(auditRepository)

	// Services.
	snapshots := scheduleSvc.NewRedisSnapshotStore(
		utils.GetSnapshotClient(),
		time.Duration(config.AppConfig.SnapshotTTLMin)*time.Minute,
	)
	scheduleService := &scheduleSvc.DefaultService{
		API:       api,
		Snapshots: snapshots,
		Audit:     recorder,
	}

	coalesce := treatmentSvc.NewCoalesceCache(
		utils.GetCoalesceClient(),
		time.Duration(config.AppConfig.FilterCoalesceMS)*time.Millisecond,
	)
	treatmentService := &treatmentSvc.DefaultService{
		API:   api,
		Cache: coalesce,
		Audit: recorder,
	}

	// Handlers and routes.
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentService)
	activityHandler := handlers.NewActivityHandler(auditRepository)
	routes.RegisterRoutes(router, scheduleHandler, treatmentHandler, activityHandler)

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
