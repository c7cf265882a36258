package schedule

import (
	"context"

	"studiobook/models"
)

// ScheduleService is the engine's API boundary. The consistency model is
// mutate-then-reload: every mutating call invalidates the cached calendar,
// and callers re-fetch rather than relying on live consistency.
type ScheduleService interface {
	// LoadCalendar returns the merged view of all intervals.
	LoadCalendar(ctx context.Context) (*Calendar, error)
	// IntervalsOnDay returns every interval containing the given day.
	IntervalsOnDay(ctx context.Context, day string) ([]models.Interval, error)
	// FreeGaps lists the maximal free gaps of at least minDays within the window.
	FreeGaps(ctx context.Context, windowStart, windowEnd string, minDays int) ([]models.Gap, error)

	// CreateTimeOff records an admin-declared personal block.
	CreateTimeOff(ctx context.Context, reason, startDate, endDate string) (models.Interval, error)
	// UpdateInterval writes an interval's date range back to its record.
	UpdateInterval(ctx context.Context, iv models.Interval) error
	// RemoveInterval deletes the record backing an interval.
	RemoveInterval(ctx context.Context, id string, kind models.IntervalKind) error

	// GenerateGhosts runs one ghost generation pass.
	GenerateGhosts(ctx context.Context, cfg models.GhostConfig) ([]models.Interval, error)
	// ListGhosts returns the ghost intervals currently stored.
	ListGhosts(ctx context.Context) ([]models.Interval, error)
	// BulkDeleteGhosts deletes the given ghost ids as one batch.
	BulkDeleteGhosts(ctx context.Context, ids []string) (int64, error)
}
