package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

func table(tiers ...*domain.PricingTier) domain.TierTable {
	return domain.NewTierTable(tiers)
}

func tier(st domain.StationType, players, duration, price int) *domain.PricingTier {
	return &domain.PricingTier{StationType: st, Players: players, DurationMinutes: duration, Price: price}
}

func TestResolve_ExactTierWins(t *testing.T) {
	tiers := table(
		tier(domain.StationPS5, 2, 60, 150),
		tier(domain.StationPS5, 2, 30, 90),
		tier(domain.StationPS5, 2, 90, 200), // точная запись важнее производной 150+90
	)

	q := Resolve(tiers, domain.StationPS5, 2, 90)
	assert.Equal(t, 200, q.UnitPrice)
	assert.False(t, q.Undefined)
}

func TestResolve_NinetyMinutesSumsBaseTiers(t *testing.T) {
	tiers := table(
		tier(domain.StationPS5, 1, 60, 100),
		tier(domain.StationPS5, 1, 30, 60),
	)

	q := Resolve(tiers, domain.StationPS5, 1, 90)
	assert.Equal(t, 160, q.UnitPrice)
	assert.False(t, q.Undefined)
}

// Tier table has only (ps5, q=1, 60) = 100: the missing 30-minute
// sub-tier counts as zero.
func TestResolve_NinetyMinutesMissingSubTierIsZero(t *testing.T) {
	tiers := table(tier(domain.StationPS5, 1, 60, 100))

	q := Resolve(tiers, domain.StationPS5, 1, 90)
	assert.Equal(t, 100, q.UnitPrice)
	assert.False(t, q.Undefined)
}

func TestResolve_MultiplesOfBaseTier(t *testing.T) {
	tiers := table(tier(domain.StationPool, 2, 60, 80))

	assert.Equal(t, 160, Resolve(tiers, domain.StationPool, 2, 120).UnitPrice)
	assert.Equal(t, 240, Resolve(tiers, domain.StationPool, 2, 180).UnitPrice)
}

func TestResolve_UndefinedFallsToZeroWithFlag(t *testing.T) {
	tiers := table(tier(domain.StationPS5, 1, 60, 100))

	// Нет ни точной записи, ни правила для 45 минут
	q := Resolve(tiers, domain.StationPS5, 1, 45)
	assert.Zero(t, q.UnitPrice)
	assert.True(t, q.Undefined)

	// Другая ось игроков тоже не настроена
	q = Resolve(tiers, domain.StationPS5, 4, 60)
	assert.Zero(t, q.UnitPrice)
	assert.True(t, q.Undefined)

	// Производная длительность без базового тарифа
	q = Resolve(tiers, domain.StationVR, 1, 120)
	assert.Zero(t, q.UnitPrice)
	assert.True(t, q.Undefined)
}

func TestQuote_TotalScalesByUnits(t *testing.T) {
	tiers := table(tier(domain.StationPS5, 2, 60, 150))

	q := Resolve(tiers, domain.StationPS5, 2, 60)
	assert.Equal(t, 450, q.Total(3))
}

func TestResolve_FallbackProperties(t *testing.T) {
	tiers := table(
		tier(domain.StationXbox, 3, 60, 120),
		tier(domain.StationXbox, 3, 30, 70),
	)

	q60 := Resolve(tiers, domain.StationXbox, 3, 60)
	q30 := Resolve(tiers, domain.StationXbox, 3, 30)
	q90 := Resolve(tiers, domain.StationXbox, 3, 90)
	q120 := Resolve(tiers, domain.StationXbox, 3, 120)

	assert.Equal(t, q60.UnitPrice+q30.UnitPrice, q90.UnitPrice)
	assert.Equal(t, 2*q60.UnitPrice, q120.UnitPrice)
}
