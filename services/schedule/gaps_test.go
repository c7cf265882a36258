package schedule

import (
	"testing"
	"time"

	"studiobook/models"
	"studiobook/utils"
)

func busyInterval(id, start, end string) models.Interval {
	return models.Interval{
		ID:     id,
		Kind:   models.KindBooking,
		Start:  day(start),
		End:    day(end),
		Source: models.SourceBookings,
	}
}

func TestListGapsSingleBusyInterval(t *testing.T) {
	busy := []models.Interval{busyInterval("b1", "2024-01-10", "2024-01-15")}

	gaps := ListGaps(busy, day("2024-01-01"), day("2024-02-01"), 1)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %+v", len(gaps), gaps)
	}

	first := gaps[0]
	if !first.Start.Equal(day("2024-01-02")) || !first.End.Equal(day("2024-01-10")) {
		t.Errorf("unexpected first gap range: %s..%s",
			utils.FormatDay(first.Start), utils.FormatDay(first.End))
	}
	if first.Days != 8 {
		t.Errorf("expected first gap of 8 days, got %d", first.Days)
	}

	second := gaps[1]
	if !second.Start.Equal(day("2024-01-16")) || !second.End.Equal(day("2024-02-01")) {
		t.Errorf("unexpected second gap range: %s..%s",
			utils.FormatDay(second.Start), utils.FormatDay(second.End))
	}
	if second.Days != 16 {
		t.Errorf("expected second gap of 16 days, got %d", second.Days)
	}
}

func TestListGapsEmptyBusySet(t *testing.T) {
	gaps := ListGaps(nil, day("2024-01-01"), day("2024-01-05"), 1)
	if len(gaps) != 1 {
		t.Fatalf("expected one gap, got %d", len(gaps))
	}
	if gaps[0].Days != 3 {
		t.Errorf("expected a 3 day gap (scan starts the day after the window), got %d", gaps[0].Days)
	}
	if !gaps[0].Start.Equal(day("2024-01-02")) {
		t.Errorf("gap should start the day after windowStart, got %s", utils.FormatDay(gaps[0].Start))
	}
}

func TestListGapsDegenerateWindow(t *testing.T) {
	if gaps := ListGaps(nil, day("2024-01-05"), day("2024-01-05"), 1); len(gaps) != 0 {
		t.Errorf("equal window bounds should yield no gaps, got %d", len(gaps))
	}
	if gaps := ListGaps(nil, day("2024-01-06"), day("2024-01-05"), 1); len(gaps) != 0 {
		t.Errorf("inverted window should yield no gaps, got %d", len(gaps))
	}
}

func TestListGapsCollapsesOverlappingBusyIntervals(t *testing.T) {
	busy := []models.Interval{
		busyInterval("b1", "2024-01-05", "2024-01-10"),
		busyInterval("b2", "2024-01-08", "2024-01-14"), // overlaps b1
		busyInterval("b3", "2024-01-15", "2024-01-16"), // adjacent to b2
	}

	gaps := ListGaps(busy, day("2024-01-01"), day("2024-01-25"), 1)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %+v", len(gaps), gaps)
	}
	if !gaps[0].Start.Equal(day("2024-01-02")) || gaps[0].Days != 3 {
		t.Errorf("unexpected leading gap: start %s days %d",
			utils.FormatDay(gaps[0].Start), gaps[0].Days)
	}
	if !gaps[1].Start.Equal(day("2024-01-17")) || gaps[1].Days != 8 {
		t.Errorf("unexpected trailing gap: start %s days %d",
			utils.FormatDay(gaps[1].Start), gaps[1].Days)
	}
}

func TestListGapsMinDaysFilter(t *testing.T) {
	busy := []models.Interval{
		busyInterval("b1", "2024-01-04", "2024-01-10"),
	}
	// Leading gap is 2 days (01-02..01-03); it must be filtered at minDays 3.
	gaps := ListGaps(busy, day("2024-01-01"), day("2024-01-20"), 3)
	if len(gaps) != 1 {
		t.Fatalf("expected only the trailing gap, got %d: %+v", len(gaps), gaps)
	}
	if !gaps[0].Start.Equal(day("2024-01-11")) {
		t.Errorf("unexpected gap start %s", utils.FormatDay(gaps[0].Start))
	}
}

func TestListGapsBusyStartingBeyondWindowEnd(t *testing.T) {
	busy := []models.Interval{busyInterval("b1", "2024-03-01", "2024-03-05")}
	gaps := ListGaps(busy, day("2024-01-01"), day("2024-01-10"), 1)
	if len(gaps) != 1 {
		t.Fatalf("expected one gap, got %d", len(gaps))
	}
	if !gaps[0].End.Equal(day("2024-01-10")) {
		t.Errorf("gap must be clamped to windowEnd, got %s", utils.FormatDay(gaps[0].End))
	}
}

func TestScanGapsCallerAdvancePolicy(t *testing.T) {
	// Consume the single big gap three days at a time.
	var visits []models.Gap
	ScanGaps(nil, day("2024-01-01"), day("2024-01-11"), func(gap models.Gap) time.Time {
		visits = append(visits, gap)
		return utils.AddDays(gap.Start, 3)
	})

	if len(visits) != 3 {
		t.Fatalf("expected 3 partial visits, got %d", len(visits))
	}
	wantStarts := []string{"2024-01-02", "2024-01-05", "2024-01-08"}
	for i, want := range wantStarts {
		if got := utils.FormatDay(visits[i].Start); got != want {
			t.Errorf("visit %d: start %s, want %s", i, got, want)
		}
	}
	// Each visit still reports the remaining free run up to windowEnd.
	if visits[0].Days != 9 || visits[1].Days != 6 || visits[2].Days != 3 {
		t.Errorf("unexpected remaining-day counts: %d %d %d",
			visits[0].Days, visits[1].Days, visits[2].Days)
	}
}

func TestScanGapsGuaranteesProgress(t *testing.T) {
	count := 0
	ScanGaps(nil, day("2024-01-01"), day("2024-01-08"), func(gap models.Gap) time.Time {
		count++
		return gap.Start // never advances on its own
	})
	if count != 6 {
		t.Errorf("expected forced one-day advances to visit 6 times, got %d", count)
	}
}
