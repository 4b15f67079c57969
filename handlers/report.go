package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/services/notification"
	"ashwini/services/queue"
	"ashwini/services/report"
)

// ReportHandler exposes the report desk endpoints.
type ReportHandler struct {
	Svc    report.ReportService
	Logger *zap.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc report.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{Svc: svc, Logger: logger}
}

// ListReports handles GET /api/reports/list.
func (h *ReportHandler) ListReports(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListReports: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": entries})
}

// UpdateReportStatus handles POST /api/reports/updateStatus.
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var body struct {
		OPNumber string `json:"opNo" binding:"required"`
		Status   string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "opNo and status are required"})
		return
	}

	status, err := models.ParseStatus(body.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Svc.UpdateStatus(c.Request.Context(), body.OPNumber, status); err != nil {
		if errors.Is(err, opRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		var tErr *queue.InvalidTransitionError
		if errors.As(err, &tErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": tErr.Error()})
			return
		}
		var sendErr *notification.SendError
		if errors.As(err, &sendErr) {
			h.Logger.Error("UpdateReportStatus: sms failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to notify patient"})
			return
		}
		h.Logger.Error("UpdateReportStatus: update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
