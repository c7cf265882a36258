package schedule

import (
	"time"

	"studiobook/models"
)

// Calendar is the merged view over everything the source adapter returned.
// It is a pure projection: no caching, recomputed from whatever the last
// LoadAll produced.
type Calendar struct {
	intervals []models.Interval
}

// NewCalendar wraps a loaded interval set.
func NewCalendar(intervals []models.Interval) *Calendar {
	return &Calendar{intervals: intervals}
}

// Intervals returns every interval in source order.
func (c *Calendar) Intervals() []models.Interval {
	return c.intervals
}

// IntervalsOnDay returns every interval whose inclusive range contains day,
// in source order.
func (c *Calendar) IntervalsOnDay(day time.Time) []models.Interval {
	var out []models.Interval
	for _, iv := range c.intervals {
		if iv.ContainsDay(day) {
			out = append(out, iv)
		}
	}
	return out
}

// BusySet returns only bookings and time-off blocks. Ghosts occupy visual
// space without representing real commitments, so they are never busy.
func (c *Calendar) BusySet() []models.Interval {
	var busy []models.Interval
	for _, iv := range c.intervals {
		if iv.Kind == models.KindBooking || iv.Kind == models.KindTimeOff {
			busy = append(busy, iv)
		}
	}
	return busy
}

// Ghosts returns the ghost intervals currently loaded.
func (c *Calendar) Ghosts() []models.Interval {
	var ghosts []models.Interval
	for _, iv := range c.intervals {
		if iv.Kind == models.KindGhost {
			ghosts = append(ghosts, iv)
		}
	}
	return ghosts
}

// GhostIDs returns the ids of the loaded ghosts, for the bulk manager.
func (c *Calendar) GhostIDs() []string {
	var ids []string
	for _, iv := range c.intervals {
		if iv.Kind == models.KindGhost {
			ids = append(ids, iv.ID)
		}
	}
	return ids
}
