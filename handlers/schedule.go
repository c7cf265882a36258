package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studiobook/models"
	"studiobook/services/schedule"
	"studiobook/utils"
)

// ScheduleHandler exposes the calendar engine over HTTP.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetCalendarHandler returns the full merged interval set for the grid.
func (h *ScheduleHandler) GetCalendarHandler(c *gin.Context) {
	cal, err := h.Service.LoadCalendar(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to load calendar", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intervals": cal.Intervals()})
}

// GetDayHandler returns every interval touching one calendar day.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	day := c.Param("date")
	intervals, err := h.Service.IntervalsOnDay(c.Request.Context(), day)
	if err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day, "intervals": intervals})
}

// GetGapsHandler lists free gaps within a scan window.
func (h *ScheduleHandler) GetGapsHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}
	gaps, err := h.Service.FreeGaps(c.Request.Context(), from, to, 3)
	if err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute gaps", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}

// CreateTimeOffHandler records an admin-declared personal block.
func (h *ScheduleHandler) CreateTimeOffHandler(c *gin.Context) {
	var req struct {
		Reason    string `json:"reason"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	iv, err := h.Service.CreateTimeOff(c.Request.Context(), req.Reason, req.StartDate, req.EndDate)
	if err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time off", "message": err.Error()})
			return
		}
		getLogger(c).Error("Failed to create time off", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time off", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interval": iv})
}

// UpdateIntervalHandler moves an interval to a new date range via the
// generic edit path.
func (h *ScheduleHandler) UpdateIntervalHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Kind      models.IntervalKind `json:"kind" binding:"required"`
		Title     string              `json:"title"`
		StartDate string              `json:"start_date" binding:"required"`
		EndDate   string              `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	start, err := utils.ParseDay(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date", "message": err.Error()})
		return
	}
	end, err := utils.ParseDay(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date", "message": err.Error()})
		return
	}

	iv := models.Interval{ID: id, Kind: req.Kind, Title: req.Title, Start: start, End: end}
	if err := h.Service.UpdateInterval(c.Request.Context(), iv); err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interval", "message": err.Error()})
			return
		}
		getLogger(c).Error("Failed to update interval", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interval", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interval updated"})
}

// DeleteIntervalHandler deletes one interval from its backing collection.
func (h *ScheduleHandler) DeleteIntervalHandler(c *gin.Context) {
	kind := models.IntervalKind(c.Param("kind"))
	id := c.Param("id")

	if err := h.Service.RemoveInterval(c.Request.Context(), id, kind); err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delete request", "message": err.Error()})
			return
		}
		getLogger(c).Error("Failed to delete interval", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete interval", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interval deleted"})
}

// GenerateGhostsHandler runs one ghost generation pass.
func (h *ScheduleHandler) GenerateGhostsHandler(c *gin.Context) {
	var cfg models.GhostConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ghosts, err := h.Service.GenerateGhosts(c.Request.Context(), cfg)
	if err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ghost configuration", "message": err.Error()})
			return
		}
		getLogger(c).Error("Ghost generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ghost generation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"placed": len(ghosts), "ghosts": ghosts})
}

// ListGhostsHandler returns all stored ghosts for the bulk-manage view.
func (h *ScheduleHandler) ListGhostsHandler(c *gin.Context) {
	ghosts, err := h.Service.ListGhosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ghosts", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ghosts": ghosts})
}

// BulkDeleteGhostsHandler deletes a batch of ghosts by id.
func (h *ScheduleHandler) BulkDeleteGhostsHandler(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	deleted, err := h.Service.BulkDeleteGhosts(c.Request.Context(), req.IDs)
	if err != nil {
		if schedule.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bulk delete", "message": err.Error()})
			return
		}
		getLogger(c).Error("Bulk ghost delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk ghost delete failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
