package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studiobook/handlers"
	"studiobook/middleware"
	"studiobook/utils"
)

// RegisterCalendarRoutes registers the scheduling engine endpoints. All
// mutating routes require admin authentication.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("", hb.GetCalendarHandler)
		api.GET("/day/:date", hb.GetDayHandler)
		api.GET("/gaps", hb.GetGapsHandler)
		api.POST("/timeoff", hb.CreateTimeOffHandler)
		api.PUT("/intervals/:id", hb.UpdateIntervalHandler)
		api.DELETE("/intervals/:kind/:id", hb.DeleteIntervalHandler)

		api.GET("/ghosts", hb.ListGhostsHandler)
		api.POST("/ghosts/generate", hb.GenerateGhostsHandler)
		api.POST("/ghosts/bulk-delete", hb.BulkDeleteGhostsHandler)
	}
}

// RegisterBookingRoutes registers booking intake and lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id", hb.UpdateBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterAuthRoutes registers the admin login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLoginHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Route not found", c.Request.URL.Path)
	})
}
