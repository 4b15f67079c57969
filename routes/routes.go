package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ashwini/handlers"
	"ashwini/utils"
)

// RegisterBookingRoutes registers the patient-facing endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/book-op", hb.BookOP)
		api.POST("/addOP", hb.AddOP)
		api.GET("/current-consulting", hb.CurrentConsulting)
		api.GET("/next-in-queue", hb.NextInQueue)
	}
}

// RegisterAdminRoutes registers the admin desk endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/op-bookings", hb.ListBookings)
		api.PUT("/update-status/:id", hb.UpdateStatus)
		api.GET("/dashboard-counts", hb.DashboardCounts)
	}
}

// RegisterReportRoutes registers the report desk endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("/list", hb.ListReports)
		api.POST("/updateStatus", hb.UpdateReportStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterReportRoutes(r, hb)
}
