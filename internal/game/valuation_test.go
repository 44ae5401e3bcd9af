package game_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

func TestAppraise_RockyUnmapped(t *testing.T) {
	body := newBody()

	values := game.DefaultTables().Actual(body)

	assert.Equal(t, 500.0, values.Base)
	assert.Equal(t, 0.0, values.Mapped)
	assert.Equal(t, 800.0, values.Bonuses)
	assert.Equal(t, 1300.0, values.TotalValue())
}

func TestAppraise_RockyMappedFirstDiscovery(t *testing.T) {
	body := newBody(mappedByPlayer())

	values := game.DefaultTables().Actual(body)

	assert.Equal(t, 500.0, values.Base)
	assert.Equal(t, 1181.0, math.Round(values.Mapped))
	assert.Equal(t, 2227.0, math.Round(values.Bonuses))
}

func TestAppraise_AlreadyDiscoveredAndMapped(t *testing.T) {
	body := newBody(withHistory(true, true), mappedByPlayer())

	values := game.DefaultTables().Actual(body)

	assert.Equal(t, 1181.0, math.Round(values.Mapped))
	assert.Equal(t, 0.0, values.Bonuses)
}

func TestAppraise_FirstToMapKnownBody(t *testing.T) {
	body := newBody(withHistory(true, false), mappedByPlayer())

	values := game.DefaultTables().Actual(body)

	// Mapped is fss * 3.3333333333; the first-mapping tier pays fss * 8.0956 in total.
	expected := values.Mapped * (8.0956/3.3333333333 - 1)
	assert.InDelta(t, expected, values.Bonuses, 1e-6)
}

func TestAppraise_DiscoveryTakesPrecedenceOverMapping(t *testing.T) {
	// Not discovered and not mapped: the first-discovery mapping multiplier applies, not 8.0956.
	undiscovered := game.DefaultTables().Actual(newBody(withHistory(false, false), mappedByPlayer()))
	firstMapOnly := game.DefaultTables().Actual(newBody(withHistory(true, false), mappedByPlayer()))

	mappingBonus := undiscovered.Mapped * (3.699622554/3.3333333333 - 1)
	firstDiscovery := math.Round(undiscovered.Mapped+mappingBonus) * 1.6
	assert.InDelta(t, mappingBonus+firstDiscovery, undiscovered.Bonuses, 1e-6)
	assert.NotEqual(t, firstMapOnly.Bonuses, undiscovered.Bonuses)
}

func TestAppraise_UnknownClassFloorsAtMinimum(t *testing.T) {
	body := newBody(func(b *game.Body) { b.Class = game.Unknown[game.BodyClass]() }, withHistory(true, true))

	values := game.DefaultTables().Actual(body)

	assert.Equal(t, 500.0, values.Base)
	assert.Equal(t, 0.0, values.Bonuses)
}

func TestAppraise_MeasuredMassOverridesMedian(t *testing.T) {
	light := newBody(withHistory(true, true))
	heavy := newBody(withHistory(true, true), func(b *game.Body) { b.Mass = game.Known(5.0) })
	heavy.Class = game.Known(game.ClassHighMetalContent)
	light.Class = game.Known(game.ClassHighMetalContent)

	assert.Greater(t, game.DefaultTables().Actual(heavy).Base, game.DefaultTables().Actual(light).Base)
}

func TestAppraise_TerraformableAddsCoefficient(t *testing.T) {
	plain := newBody(withClass(game.ClassHighMetalContent), withHistory(true, true))
	terraformable := newBody(withClass(game.ClassHighMetalContent), withHistory(true, true))
	terraformable.Terraformable = true

	tables := game.DefaultTables()
	assert.Greater(t, tables.Actual(terraformable).Base, 10*tables.Actual(plain).Base)
}

func TestEstimate_AlwaysValuesAsMapped(t *testing.T) {
	body := newBody()
	tables := game.DefaultTables()

	actual := tables.Actual(body)
	estimate := tables.Estimate(body)

	assert.Equal(t, 0.0, actual.Mapped)
	assert.Equal(t, 1181.0, math.Round(estimate.Mapped))
	assert.Equal(t, tables.Actual(newBody(mappedByPlayer())), estimate)
	assert.False(t, body.MappedByPlayer, "estimate must not mutate the body")
}

func TestBioValues_RangeFromCandidates(t *testing.T) {
	body := newBody(withSignals(1,
		&game.BioSignal{Species: mustSpecies(t, "Bacterium", "nebulus")},
		&game.BioSignal{Species: mustSpecies(t, "Concha", "aureolas")},
	))

	values := body.BioValues()

	assert.Equal(t, 5_289_900, values.Min)
	assert.Equal(t, 7_774_700, values.Max)
	assert.Equal(t, 0, values.Actual)
	assert.Equal(t, 0, values.Bonuses)
}

func TestBioValues_GeneraAreDistinct(t *testing.T) {
	signals := []*game.BioSignal{
		{Species: mustSpecies(t, "Concha", "labiata")},    // 2,352,400
		{Species: mustSpecies(t, "Concha", "renibus")},    // 4,572,400
		{Species: mustSpecies(t, "Bacterium", "aurasus")}, // 1,000,000
	}

	values := game.BioValues(signals, 2)

	assert.Equal(t, 1_000_000+2_352_400, values.Min)
	assert.Equal(t, 4_572_400+1_000_000, values.Max)
}

func TestBioValues_NoSignals(t *testing.T) {
	signals := []*game.BioSignal{{Species: mustSpecies(t, "Concha", "aureolas")}}

	assert.Equal(t, game.BioRange{}, game.BioValues(signals, 0))
	assert.Equal(t, game.BioRange{}, game.BioValues(nil, 3))
}

func TestBioValues_CountExceedsGenera(t *testing.T) {
	signals := []*game.BioSignal{
		{Species: mustSpecies(t, "Concha", "labiata")},
		{Species: mustSpecies(t, "Concha", "renibus")},
	}

	values := game.BioValues(signals, 3)

	assert.Equal(t, 2_352_400, values.Min)
	assert.Equal(t, 4_572_400, values.Max)
}
