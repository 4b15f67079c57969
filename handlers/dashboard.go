package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ashwini/services/dashboard"
)

// DashboardHandler exposes the admin dashboard counts.
type DashboardHandler struct {
	Svc    dashboard.DashboardService
	Logger *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboard.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// DashboardCounts handles GET /api/admin/dashboard-counts.
func (h *DashboardHandler) DashboardCounts(c *gin.Context) {
	counts, err := h.Svc.Counts(c.Request.Context())
	if err != nil {
		h.Logger.Error("DashboardCounts: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard counts"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
