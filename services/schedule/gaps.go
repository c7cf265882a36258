package schedule

import (
	"sort"
	"time"

	"studiobook/models"
	"studiobook/utils"
)

// AdvanceFunc receives each free gap found by ScanGaps and returns the
// cursor position the scan should continue from. Returning a cursor inside
// the gap lets a caller consume a large gap in several passes.
type AdvanceFunc func(gap models.Gap) time.Time

// ScanGaps walks the window (windowStart exclusive, windowEnd exclusive)
// and reports every free run of days between busy intervals. Overlapping
// and adjacent busy intervals collapse naturally because membership is
// re-checked every iteration.
func ScanGaps(busy []models.Interval, windowStart, windowEnd time.Time, visit AdvanceFunc) {
	if !windowStart.Before(windowEnd) {
		return
	}

	sorted := make([]models.Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	cursor := utils.AddDays(windowStart, 1)
	for cursor.Before(windowEnd) {
		if b, ok := coveringInterval(sorted, cursor); ok {
			cursor = utils.AddDays(b.End, 1)
			continue
		}

		nextStart := windowEnd
		for _, b := range sorted {
			if b.Start.After(cursor) {
				nextStart = b.Start
				break
			}
		}
		if nextStart.After(windowEnd) {
			nextStart = windowEnd
		}

		gap := models.Gap{
			Start: cursor,
			End:   nextStart,
			Days:  utils.DaysBetween(cursor, nextStart),
		}
		next := visit(gap)
		if !next.After(cursor) {
			// the caller must make progress
			next = utils.AddDays(cursor, 1)
		}
		cursor = next
	}
}

// ListGaps returns every maximal gap of at least minDays within the window.
func ListGaps(busy []models.Interval, windowStart, windowEnd time.Time, minDays int) []models.Gap {
	var gaps []models.Gap
	ScanGaps(busy, windowStart, windowEnd, func(gap models.Gap) time.Time {
		if gap.Days >= minDays {
			gaps = append(gaps, gap)
		}
		return gap.End
	})
	return gaps
}

func coveringInterval(sorted []models.Interval, day time.Time) (models.Interval, bool) {
	for _, b := range sorted {
		if b.Start.After(day) {
			break
		}
		if b.ContainsDay(day) {
			return b, true
		}
	}
	return models.Interval{}, false
}
