package schedule

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"studiobook/models"
	"studiobook/utils"
)

const (
	// Ghost sizing limits for the gap-aware generator.
	minGhostDays = 3
	maxGhostDays = 10

	// Scatter-mode ghosts are shorter.
	minScatterDays = 2
	maxScatterDays = 7
)

// ghostReason is the opaque label written to generated bookouts. Ghosts
// carry no client-identifying fields.
const ghostReason = "hold"

// roller abstracts the generator's two random draws so tests can pin them.
type roller interface {
	// Roll returns a uniform value in [0, 1).
	Roll() float64
	// IntBetween returns a uniform integer in [lo, hi].
	IntBetween(lo, hi int) int
}

type randRoller struct {
	r *rand.Rand
}

func (rr randRoller) Roll() float64 { return rr.r.Float64() }

func (rr randRoller) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rr.r.Intn(hi-lo+1)
}

// Generator produces synthetic ghost intervals that fill free calendar gaps
// without colliding with real commitments.
type Generator struct {
	Source *SourceAdapter
	Rand   roller
}

// NewGenerator constructs a Generator with a time-seeded random source.
func NewGenerator(source *SourceAdapter) *Generator {
	return &Generator{
		Source: source,
		Rand:   randRoller{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
}

// Generate runs one generation pass: load the busy set, plan ghosts for the
// configured lookahead window, and batch-insert them through the adapter.
// The returned slice holds the planned ghosts; ids are assigned by the store.
func (g *Generator) Generate(ctx context.Context, cfg models.GhostConfig) ([]models.Interval, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}
	logger := utils.GetLogger()

	today := utils.Today()
	windowEnd := utils.AddMonths(today, cfg.LookaheadMonths)

	intervals, err := g.Source.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	busy := busyOverlappingWindow(NewCalendar(intervals).BusySet(), today, windowEnd)

	var ghosts []models.Interval
	switch cfg.Mode {
	case models.ModeScatter:
		ghosts = g.planScatter(today, windowEnd, cfg.ScatterCount)
	default:
		ghosts = g.planGapAware(busy, today, windowEnd, cfg.Density)
	}

	if len(ghosts) == 0 {
		logger.Info("ghost generation placed nothing",
			zap.String("density", string(cfg.Density)),
			zap.Int("lookaheadMonths", cfg.LookaheadMonths))
		return nil, nil
	}

	if _, err := g.Source.CreateGhosts(ctx, ghosts); err != nil {
		return nil, err
	}

	logger.Info("ghost generation complete",
		zap.Int("placed", len(ghosts)),
		zap.String("density", string(cfg.Density)),
		zap.String("mode", string(cfg.Mode)))
	return ghosts, nil
}

// planGapAware walks the free gaps and probabilistically places ghosts,
// leaving the density's gap tolerance after each placement. Placed ghosts
// never overlap the busy set.
func (g *Generator) planGapAware(busy []models.Interval, windowStart, windowEnd time.Time, density models.Density) []models.Interval {
	prob := density.PlaceProbability()
	tolerance := density.GapTolerance()

	var ghosts []models.Interval
	ScanGaps(busy, windowStart, windowEnd, func(gap models.Gap) time.Time {
		if gap.Days < minGhostDays {
			// gap too small to hold a ghost, step past it one day at a time
			return utils.AddDays(gap.Start, 1)
		}
		if g.Rand.Roll() >= prob {
			return utils.AddDays(gap.Start, 1)
		}

		maxDur := gap.Days
		if maxDur > maxGhostDays {
			maxDur = maxGhostDays
		}
		duration := g.Rand.IntBetween(minGhostDays, maxDur)
		ghost := models.Interval{
			Kind:   models.KindGhost,
			Title:  ghostReason,
			Start:  gap.Start,
			End:    utils.AddDays(gap.Start, duration-1),
			Source: models.SourceBookouts,
		}
		ghosts = append(ghosts, ghost)
		return utils.AddDays(ghost.End, tolerance)
	})
	return ghosts
}

// planScatter is the legacy fallback: drop a fixed count of short ghosts at
// random offsets inside the window with no collision check. Kept only for
// callers that explicitly ask for it.
func (g *Generator) planScatter(windowStart, windowEnd time.Time, count int) []models.Interval {
	totalDays := utils.DaysBetween(windowStart, windowEnd)
	if totalDays < 2 {
		return nil
	}

	var ghosts []models.Interval
	for i := 0; i < count; i++ {
		offset := g.Rand.IntBetween(1, totalDays-1)
		duration := g.Rand.IntBetween(minScatterDays, maxScatterDays)
		start := utils.AddDays(windowStart, offset)
		end := utils.AddDays(start, duration-1)
		if end.After(windowEnd) {
			end = windowEnd
		}
		ghosts = append(ghosts, models.Interval{
			Kind:   models.KindGhost,
			Title:  ghostReason,
			Start:  start,
			End:    end,
			Source: models.SourceBookouts,
		})
	}
	return ghosts
}

// busyOverlappingWindow drops busy intervals entirely outside the scan
// window; they cannot affect gap computation.
func busyOverlappingWindow(busy []models.Interval, windowStart, windowEnd time.Time) []models.Interval {
	window := models.Interval{Start: windowStart, End: windowEnd}
	var out []models.Interval
	for _, b := range busy {
		if b.Overlaps(window) {
			out = append(out, b)
		}
	}
	return out
}
