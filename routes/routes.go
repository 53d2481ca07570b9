package routes

import (
	"net/http"
	"time"

	"clinicdesk/handlers"
	"clinicdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the schedule editing endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("/:email", h.GetScheduleHandler)
		api.POST("/:email", h.SaveScheduleHandler)
		api.POST("/:email/validate", h.ValidateScheduleHandler)
		api.DELETE("/:email/session", h.ResetScheduleSessionHandler)
	}
}

// RegisterTreatmentRoutes registers treatment search and editing endpoints.
func RegisterTreatmentRoutes(r *gin.Engine, h *handlers.TreatmentHandler) {
	api := r.Group("/api/treatments")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.POST("/search", h.SearchTreatmentsHandler)
		api.PATCH("/:id", h.UpdateTreatmentHandler)
		api.PUT("/:id/prescriptions", h.ReplacePrescriptionsHandler)
	}
}

// RegisterActivityRoutes registers the admin activity feed.
func RegisterActivityRoutes(r *gin.Engine, h *handlers.ActivityHandler) {
	api := r.Group("/api/activity")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("", h.RecentActivityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "clinicdesk is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sched *handlers.ScheduleHandler, treat *handlers.TreatmentHandler, activity *handlers.ActivityHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, sched)
	RegisterTreatmentRoutes(r, treat)
	RegisterActivityRoutes(r, activity)
	RegisterHealthRoute(r)
}
