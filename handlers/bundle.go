package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Calendar engine endpoints.
	GetCalendarHandler      gin.HandlerFunc
	GetDayHandler           gin.HandlerFunc
	GetGapsHandler          gin.HandlerFunc
	CreateTimeOffHandler    gin.HandlerFunc
	UpdateIntervalHandler   gin.HandlerFunc
	DeleteIntervalHandler   gin.HandlerFunc
	GenerateGhostsHandler   gin.HandlerFunc
	ListGhostsHandler       gin.HandlerFunc
	BulkDeleteGhostsHandler gin.HandlerFunc

	// Booking intake/lifecycle endpoints.
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Auth endpoints.
	AdminLoginHandler gin.HandlerFunc
}
