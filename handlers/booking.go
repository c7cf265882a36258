package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "studiobook/database/repository/booking"
	"studiobook/models"
	"studiobook/utils"
)

// BookingHandler exposes intake and lifecycle operations for production
// bookings. These flows live outside the scheduling engine; the engine only
// reads bookings through the source adapter.
type BookingHandler struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(repo bookingRepo.BookingRepository, cache *redis.Client) *BookingHandler {
	return &BookingHandler{Repo: repo, Cache: cache}
}

// Booking mutations change the calendar's busy set, so the snapshot must be
// dropped the same way the schedule service drops it.
func (h *BookingHandler) invalidateSnapshot(c *gin.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Del(c.Request.Context(), utils.CalendarCacheKey).Err(); err != nil {
		getLogger(c).Warn("Failed to invalidate calendar snapshot", zap.Error(err))
	}
}

// CreateBookingHandler records a new production booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.Title == "" || req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, start date and end date are required"})
		return
	}
	if _, err := utils.ParseDay(req.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date", "message": err.Error()})
		return
	}
	if _, err := utils.ParseDay(req.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date", "message": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.BookingStatusPending
	}

	if err := h.Repo.Create(c.Request.Context(), &req); err != nil {
		getLogger(c).Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking", "message": err.Error()})
		return
	}
	h.invalidateSnapshot(c)
	c.JSON(http.StatusOK, gin.H{"booking": req})
}

// GetBookingHandler fetches one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListBookingsHandler returns every booking for the archive view.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingHandler replaces a booking's mutable fields.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if err := h.Repo.Update(c.Request.Context(), id, &req); err != nil {
		getLogger(c).Error("Failed to update booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking", "message": err.Error()})
		return
	}
	h.invalidateSnapshot(c)
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// UpdateBookingStatusHandler transitions a booking's lifecycle status.
// Moving a booking to an excluded status (archived, deleted, postponed)
// removes it from the calendar's busy set on the next reload.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status in request body"})
		return
	}
	if err := h.Repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		getLogger(c).Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status", "message": err.Error()})
		return
	}
	h.invalidateSnapshot(c)
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}

// DeleteBookingHandler permanently removes a booking record.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking", "message": err.Error()})
		return
	}
	h.invalidateSnapshot(c)
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
