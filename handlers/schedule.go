package handlers

import (
	"net/http"

	"clinicdesk/middleware"
	"clinicdesk/models"
	scheduleSvc "clinicdesk/services/schedule"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes schedule editing over HTTP.
type ScheduleHandler struct {
	Service scheduleSvc.Service
}

func NewScheduleHandler(svc scheduleSvc.Service) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler loads a staff member's schedule. When none exists yet
// the response still carries an editable blank week with exists=false; the
// editor is never blocked on a missing schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing staff email in path"})
		return
	}

	result, err := h.Service.Load(c.Request.Context(), middleware.AuthToken(c), email)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SaveScheduleHandler validates and saves an edited schedule. Validation
// failures come back as 422 with the violating day named, for inline display.
func (h *ScheduleHandler) SaveScheduleHandler(c *gin.Context) {
	email := c.Param("email")

	var sched models.WeeklySchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.GetLogger().Error("Invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	sched.OwnerEmail = email

	result, err := h.Service.Save(c.Request.Context(), middleware.AuthToken(c), middleware.ActorEmail(c), sched)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	if !result.Validation.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": result.Validation.Error})
		return
	}
	if result.NoChanges {
		c.JSON(http.StatusOK, gin.H{"message": "No changes to save", "saved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Schedule saved",
		"saved":         true,
		"changedDays":   result.ChangedDays,
		"isNewSchedule": result.IsNewSchedule,
	})
}

// ValidateScheduleHandler dry-runs validation for inline editor feedback.
// It never touches the backend.
func (h *ScheduleHandler) ValidateScheduleHandler(c *gin.Context) {
	var sched models.WeeklySchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Service.Validate(sched))
}

// ResetScheduleSessionHandler drops the edit-session snapshot. The editor
// calls this when switching to another staff member, so a stale baseline
// never leaks into the next diff.
func (h *ScheduleHandler) ResetScheduleSessionHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.Service.Reset(c.Request.Context(), email); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset schedule session", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
