package handlers

import (
	"net/http"
	"strconv"

	auditRepo "clinicdesk/database/repository/audit"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the admin activity feed.
type ActivityHandler struct {
	Repo auditRepo.Repository
}

func NewActivityHandler(repo auditRepo.Repository) *ActivityHandler {
	return &ActivityHandler{Repo: repo}
}

// RecentActivityHandler lists the newest desk actions, newest first.
func (h *ActivityHandler) RecentActivityHandler(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = parsed
	}

	entries, err := h.Repo.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load activity", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
