package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/services/queue"
)

// QueueHandler exposes the admin queue endpoints.
type QueueHandler struct {
	Svc    queue.QueueService
	Logger *zap.Logger
}

// NewQueueHandler creates a QueueHandler.
func NewQueueHandler(svc queue.QueueService, logger *zap.Logger) *QueueHandler {
	return &QueueHandler{Svc: svc, Logger: logger}
}

// ListBookings handles GET /api/admin/op-bookings. Today's bookings,
// first-booked first.
func (h *QueueHandler) ListBookings(c *gin.Context) {
	ops, err := h.Svc.ListToday(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListBookings: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today's OP bookings"})
		return
	}
	if ops == nil {
		ops = []models.OPBooking{}
	}
	c.JSON(http.StatusOK, ops)
}

// UpdateStatus handles PUT /api/admin/update-status/:id.
func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	status, err := models.ParseStatus(body.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, opRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		var tErr *queue.InvalidTransitionError
		if errors.As(err, &tErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": tErr.Error()})
			return
		}
		h.Logger.Error("UpdateStatus: update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": string(status) + " updated successfully",
		"updated": updated,
	})
}

// CurrentConsulting handles GET /api/current-consulting. Returns {} when
// the consulting slot is empty, matching the frontend contract.
func (h *QueueHandler) CurrentConsulting(c *gin.Context) {
	op, err := h.Svc.CurrentConsulting(c.Request.Context())
	if err != nil {
		h.Logger.Error("CurrentConsulting: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consulting patient"})
		return
	}
	if op == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, op)
}

// NextInQueue handles GET /api/next-in-queue.
func (h *QueueHandler) NextInQueue(c *gin.Context) {
	op, err := h.Svc.NextInQueue(c.Request.Context())
	if err != nil {
		h.Logger.Error("NextInQueue: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch next queue"})
		return
	}
	if op == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, op)
}
