package domain

// PricingTier is one entry of the sparse price table, keyed by station
// type, simultaneous players per unit and session duration. Tiers are
// edited by café staff and are read-only to the scheduler.
type PricingTier struct {
	ID              int64
	CafeID          int64
	StationType     StationType
	Players         int // players/controllers per unit, 1..MaxTierPlayers
	DurationMinutes int // base tier durations are 30 and 60
	Price           int // per unit, integer currency units
}

// TierKey identifies a tier inside a TierTable.
type TierKey struct {
	StationType     StationType
	Players         int
	DurationMinutes int
}

// TierTable is the in-memory view of a café's pricing tiers.
type TierTable map[TierKey]int

// NewTierTable builds a lookup table from persisted tiers.
func NewTierTable(tiers []*PricingTier) TierTable {
	table := make(TierTable, len(tiers))
	for _, t := range tiers {
		table[TierKey{StationType: t.StationType, Players: t.Players, DurationMinutes: t.DurationMinutes}] = t.Price
	}
	return table
}

// Lookup returns the exact tier price, if present.
func (t TierTable) Lookup(st StationType, players, durationMinutes int) (int, bool) {
	price, ok := t[TierKey{StationType: st, Players: players, DurationMinutes: durationMinutes}]
	return price, ok
}
