package models

import "fmt"

// Density controls how aggressively the ghost generator fills free gaps.
type Density string

const (
	DensityLow    Density = "low"
	DensityMedium Density = "medium"
	DensityHigh   Density = "high"
)

// PlaceProbability returns the per-attempt chance that an eligible gap
// receives a ghost.
func (d Density) PlaceProbability() float64 {
	switch d {
	case DensityLow:
		return 0.25
	case DensityHigh:
		return 0.75
	default:
		return 0.5
	}
}

// GapTolerance returns the minimum spacing, in days, left after a placed
// ghost before the next placement attempt.
func (d Density) GapTolerance() int {
	switch d {
	case DensityLow:
		return 7
	case DensityHigh:
		return 2
	default:
		return 4
	}
}

// GenerationMode selects the ghost placement strategy.
type GenerationMode string

const (
	// ModeGapAware is the canonical, collision-free strategy.
	ModeGapAware GenerationMode = "gap_aware"
	// ModeScatter is a legacy fallback that drops ghosts at random offsets
	// without checking for collisions.
	ModeScatter GenerationMode = "scatter"
)

// GhostConfig is the configuration for one ghost generator run.
type GhostConfig struct {
	Density         Density        `json:"density"`
	LookaheadMonths int            `json:"lookahead_months"`
	Mode            GenerationMode `json:"mode,omitempty"`
	ScatterCount    int            `json:"scatter_count,omitempty"` // scatter mode only
}

// Validate normalizes defaults and rejects unusable configurations.
func (cfg *GhostConfig) Validate() error {
	switch cfg.Density {
	case DensityLow, DensityMedium, DensityHigh:
	case "":
		cfg.Density = DensityMedium
	default:
		return fmt.Errorf("unknown density %q", cfg.Density)
	}
	switch cfg.Mode {
	case ModeGapAware, ModeScatter:
	case "":
		cfg.Mode = ModeGapAware
	default:
		return fmt.Errorf("unknown generation mode %q", cfg.Mode)
	}
	if cfg.LookaheadMonths <= 0 {
		cfg.LookaheadMonths = 3
	}
	if cfg.LookaheadMonths > 24 {
		return fmt.Errorf("lookahead of %d months exceeds the 24 month limit", cfg.LookaheadMonths)
	}
	if cfg.Mode == ModeScatter && cfg.ScatterCount <= 0 {
		cfg.ScatterCount = 5
	}
	return nil
}
