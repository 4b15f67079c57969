// File: ashwini/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Patient endpoints
	BookOP gin.HandlerFunc
	AddOP  gin.HandlerFunc

	// Queue endpoints
	CurrentConsulting gin.HandlerFunc
	NextInQueue       gin.HandlerFunc

	// Admin endpoints
	ListBookings    gin.HandlerFunc
	UpdateStatus    gin.HandlerFunc
	DashboardCounts gin.HandlerFunc

	// Report desk endpoints
	ListReports        gin.HandlerFunc
	UpdateReportStatus gin.HandlerFunc
}
