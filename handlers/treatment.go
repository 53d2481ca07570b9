package handlers

import (
	"net/http"

	"clinicdesk/middleware"
	"clinicdesk/models"
	treatmentSvc "clinicdesk/services/treatment"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TreatmentHandler exposes treatment search and editing over HTTP.
type TreatmentHandler struct {
	Service treatmentSvc.Service
}

func NewTreatmentHandler(svc treatmentSvc.Service) *TreatmentHandler {
	return &TreatmentHandler{Service: svc}
}

// SearchTreatmentsHandler runs a filtered search and returns reconciled,
// highlighted treatments.
func (h *TreatmentHandler) SearchTreatmentsHandler(c *gin.Context) {
	var filters models.TreatmentFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.GetLogger().Error("Invalid treatment filters", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	treatments, err := h.Service.Search(c.Request.Context(), middleware.AuthToken(c), middleware.ActorEmail(c), filters)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatments": treatments})
}

// UpdateTreatmentHandler patches notes, amountPaid and/or the installment
// period on one treatment.
func (h *TreatmentHandler) UpdateTreatmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing treatment ID in path"})
		return
	}

	var upd models.TreatmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), middleware.AuthToken(c), middleware.ActorEmail(c), id, upd)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatment": updated})
}

// ReplacePrescriptionsHandler swaps a treatment's prescription list as a
// whole; per-item patches are not supported.
func (h *TreatmentHandler) ReplacePrescriptionsHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing treatment ID in path"})
		return
	}

	var req models.ReplacePrescriptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	saved, err := h.Service.ReplacePrescriptions(c.Request.Context(), middleware.AuthToken(c), middleware.ActorEmail(c), id, req.Prescriptions)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": saved})
}
