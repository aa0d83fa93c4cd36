package domain

// Default configuration values
const (
	DefaultScanStepMinutes    = 15 // availability scanner step
	DefaultTrackerIntervalSec = 5  // live refresh of timers and unit status
	DefaultOpenMinute         = 10 * 60
	DefaultCloseMinute        = 24 * 60
)

// Business validation constants
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 480 // 8 hours
	MaxQuantity        = 100
	MaxTierPlayers     = 4 // tier table quantity axis is 1..4 players per unit
	MaxNotesLength     = 500

	// EndingSoonThresholdMinutes: a busy unit flips to ending_soon when
	// 0 < remaining <= threshold.
	EndingSoonThresholdMinutes = 15
)

// Derived pricing durations (fallback rules over the 30/60 base tiers)
const (
	TierDurationShort = 30
	TierDurationBase  = 60
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
