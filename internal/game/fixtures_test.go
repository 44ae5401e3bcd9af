package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

const (
	primarySystemAddress int64 = 12345
	primaryBodyID              = 5
)

type bodyOption func(*game.Body)

// newBody builds an undiscovered, unmapped, non-terraformable rocky body with no measured mass.
func newBody(opts ...bodyOption) *game.Body {
	b := &game.Body{
		Key:        game.BodyKey{SystemAddress: primarySystemAddress, BodyID: primaryBodyID},
		Name:       "TEST SYSTEM 5",
		SystemName: "TEST SYSTEM",
		Class:      game.Known(game.ClassRocky),
		Atmosphere: game.Known(game.AtmosphereNone),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func withClass(c game.BodyClass) bodyOption {
	return func(b *game.Body) { b.Class = game.Known(c) }
}

func withHistory(discovered, mapped bool) bodyOption {
	return func(b *game.Body) {
		b.WasDiscovered = discovered
		b.WasMapped = mapped
	}
}

func mappedByPlayer() bodyOption {
	return func(b *game.Body) { b.MappedByPlayer = true }
}

func withAtmosphere(a game.Atmosphere) bodyOption {
	return func(b *game.Body) { b.Atmosphere = game.Known(a) }
}

// withGravityG takes gravity in g; bodies store the journal's m/s^2.
func withGravityG(g float64) bodyOption {
	return func(b *game.Body) { b.Gravity = game.Known(g * 10) }
}

func withSignals(count int, signals ...*game.BioSignal) bodyOption {
	return func(b *game.Body) {
		b.SignalCount = count
		b.Signals = signals
	}
}

func mustSpecies(t *testing.T, genus, name string) game.Species {
	t.Helper()
	sp, ok := game.FullCatalog().Find(genus, name)
	require.Truef(t, ok, "species %s %s missing from catalog", genus, name)
	return sp
}

// newFullRosterGalaxy values bodies against every known genus.
func newFullRosterGalaxy() *game.Galaxy {
	return game.NewGalaxy(game.DefaultTables(), game.FullCatalog())
}

func detailedScan(bodyID int) game.ScanData {
	return game.ScanData{
		SystemAddress: primarySystemAddress,
		SystemName:    "TEST SYSTEM",
		BodyID:        bodyID,
		BodyName:      "TEST SYSTEM 5",
		ScanType:      game.ScanDetailed,
		Class:         game.Known(game.ClassRocky),
	}
}
