package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ashwini/models"
	"ashwini/services/booking"
	"ashwini/services/notification"
)

// BookingHandler exposes the patient-facing booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// BookOP handles POST /api/book-op.
func (h *BookingHandler) BookOP(c *gin.Context) {
	var req models.BookOPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("BookOP: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	resp, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
			return
		}
		var sendErr *notification.SendError
		if errors.As(err, &sendErr) {
			h.Logger.Error("BookOP: confirmation sms failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send confirmation SMS"})
			return
		}
		h.Logger.Error("BookOP: booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"opNumber": resp.OPNumber,
		"eta":      resp.ETA,
	})
}

// AddOP handles POST /api/addOP, the admin desk's manual add.
func (h *BookingHandler) AddOP(c *gin.Context) {
	var op models.OPBooking
	if err := c.ShouldBindJSON(&op); err != nil {
		h.Logger.Error("AddOP: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.Svc.Add(c.Request.Context(), op); err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Error()})
			return
		}
		h.Logger.Error("AddOP: save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Save Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OP Added Successfully"})
}
