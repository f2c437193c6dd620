package sequencer

import "time"

const (
	DefaultSearchDelay       = 250 * time.Millisecond
	DefaultPathDelay         = 100 * time.Millisecond
	DefaultPauseDuration     = 2000 * time.Millisecond
	DefaultWipeDuration      = 800 * time.Millisecond
	DefaultRetryDelay        = 500 * time.Millisecond
	DefaultWallDensity       = 0.35
	DefaultPlacementAttempts = 1000
	DefaultMarkerSize        = 2
)

// Config tunes the pacing and the generated layouts.
type Config struct {
	SearchDelay   time.Duration // per revealed exploration cell
	PathDelay     time.Duration // per revealed path cell
	PauseDuration time.Duration
	WipeDuration  time.Duration
	RetryDelay    time.Duration

	// WallDensity is the fraction of non-reserved cells turned into walls.
	WallDensity float64
	// PlacementAttempts bounds resampling of a single wall, marker or endpoint.
	PlacementAttempts int
	// MarkerCount square blocks of MarkerSize cells are laid out before the walls.
	MarkerCount int
	MarkerSize  int

	// Seed for the layout generator; 0 seeds from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		SearchDelay:       DefaultSearchDelay,
		PathDelay:         DefaultPathDelay,
		PauseDuration:     DefaultPauseDuration,
		WipeDuration:      DefaultWipeDuration,
		RetryDelay:        DefaultRetryDelay,
		WallDensity:       DefaultWallDensity,
		PlacementAttempts: DefaultPlacementAttempts,
		MarkerSize:        DefaultMarkerSize,
	}
}

// normalized replaces non-positive durations and out-of-range values with defaults.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.SearchDelay <= 0 {
		c.SearchDelay = d.SearchDelay
	}
	if c.PathDelay <= 0 {
		c.PathDelay = d.PathDelay
	}
	if c.PauseDuration <= 0 {
		c.PauseDuration = d.PauseDuration
	}
	if c.WipeDuration <= 0 {
		c.WipeDuration = d.WipeDuration
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.WallDensity < 0 || c.WallDensity >= 1 {
		c.WallDensity = d.WallDensity
	}
	if c.PlacementAttempts <= 0 {
		c.PlacementAttempts = d.PlacementAttempts
	}
	if c.MarkerCount < 0 {
		c.MarkerCount = 0
	}
	if c.MarkerSize <= 0 {
		c.MarkerSize = d.MarkerSize
	}
	return c
}
