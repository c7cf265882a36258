package models

import "time"

// IntervalKind discriminates what a calendar interval represents.
type IntervalKind string

const (
	KindBooking IntervalKind = "booking"
	KindTimeOff IntervalKind = "timeoff"
	KindGhost   IntervalKind = "ghost"
)

// SourceCollection names the backing collection an interval is written to.
type SourceCollection string

const (
	SourceBookings SourceCollection = "bookings"
	SourceBookouts SourceCollection = "bookouts"
)

// Interval is the unified calendar entity the scheduling engine works with.
// Start and End are inclusive calendar days, normalized to midnight UTC;
// a single-day interval has Start == End.
type Interval struct {
	ID     string           `json:"id"`
	Kind   IntervalKind     `json:"kind"`
	Title  string           `json:"title"` // book title for bookings, free-text reason otherwise
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status,omitempty"` // bookings only
	Source SourceCollection `json:"source"`
}

// ContainsDay reports whether day falls within [Start, End].
func (iv Interval) ContainsDay(day time.Time) bool {
	return !day.Before(iv.Start) && !day.After(iv.End)
}

// Overlaps reports whether the two inclusive ranges share at least one day.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.Start.After(other.End) && !other.Start.After(iv.End)
}

// Days returns the inclusive length of the interval in days.
func (iv Interval) Days() int {
	return int(iv.End.Sub(iv.Start).Hours()/24) + 1
}

// Gap is a free run of days within a scan window, relative to a busy set.
// The range is half-open: Start is the first free day, End the first day
// not part of the gap, and Days == End - Start.
type Gap struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}
