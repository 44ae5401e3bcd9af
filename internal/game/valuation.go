/*
Package game
File: valuation.go
Description:
    The body valuation calculator: cartographic value tiers (scan floor,
    mapping, first mapping, first discovery) and the possible range of
    biological payouts.

    All functions here are pure. The multiplier constants are the game's
    economy values and must stay exact.
*/

package game

import (
	"cmp"
	"math"
	"slices"
)

const (
	massExponent = 0.2
	massScale    = 0.56591828

	// Every scanned body pays at least this much.
	minimumScanValue = 500

	mappedMultiplier             = 3.3333333333 // mapped, somebody else discovered and mapped it before
	firstDiscoveredMapMultiplier = 3.699622554  // first discovery and first mapping
	firstMappedMultiplier        = 8.0956       // discovered before, first to map it

	firstDiscoveryMultiplier = 2.6
)

// TotalValue is the payout of the breakdown: the mapped tier replaces the base tier once mapped.
func (v Values) TotalValue() float64 {
	if v.Mapped != 0 {
		return math.Round(v.Mapped + v.Bonuses)
	}
	return math.Round(v.Base + v.Bonuses)
}

// Appraise computes the cartographic value of a body.
// mapped says whether to value the body as mapped by the player; the
// body's own MappedByPlayer flag is ignored so callers can ask "what if".
func (t *Tables) Appraise(b *Body, mapped bool) Values {
	class := b.Class.Or(ClassUnknown)

	// 1. Coefficient for the class, plus the terraforming premium
	coeff := t.Coefficients(class)
	k := coeff.Base
	if b.Terraformable {
		k += coeff.Terraformable
	}

	// 2. Scale by mass, falling back to the class median
	mass := b.Mass.Or(t.MedianMass(class, b.Terraformable))
	fssValue := k + k*math.Pow(mass, massExponent)*massScale

	values := Values{
		Base: math.Round(math.Max(fssValue, minimumScanValue)),
	}

	// 3. Mapping tier and first-mapping bonus
	if mapped {
		values.Mapped = fssValue * mappedMultiplier

		multiplier := mappedMultiplier
		switch {
		case !b.WasDiscovered:
			multiplier = firstDiscoveredMapMultiplier
		case !b.WasMapped:
			multiplier = firstMappedMultiplier
		}
		values.Bonuses += fssValue*multiplier - values.Mapped
	}

	// 4. First discovery bonus on top of everything so far
	if !b.WasDiscovered {
		total := values.TotalValue()
		values.Bonuses += total*firstDiscoveryMultiplier - total
	}

	return values
}

// Actual values a body by what the player has really done.
func (t *Tables) Actual(b *Body) Values {
	return t.Appraise(b, b.MappedByPlayer)
}

// Estimate values a body as if the player maps it.
func (t *Tables) Estimate(b *Body) Values {
	return t.Appraise(b, true)
}

// BioValues returns the possible payout range of a body's biological signals.
//
// At most signalCount candidates are counted and no two may share a genus.
// Min takes the cheapest such set, Max the most expensive one. Actual and
// Bonuses stay zero until species are confirmed.
func BioValues(signals []*BioSignal, signalCount int) BioRange {
	if signalCount <= 0 || len(signals) == 0 {
		return BioRange{}
	}

	ranked := make([]Species, 0, len(signals))
	for _, s := range signals {
		ranked = append(ranked, s.Species)
	}

	slices.SortStableFunc(ranked, func(a, b Species) int {
		return cmp.Compare(a.Value, b.Value)
	})
	low := sumDistinctGenera(ranked, signalCount)

	slices.Reverse(ranked)
	high := sumDistinctGenera(ranked, signalCount)

	return BioRange{Min: low, Max: high}
}

func sumDistinctGenera(ranked []Species, limit int) int {
	seen := make(map[string]bool, limit)
	total := 0
	for _, sp := range ranked {
		if len(seen) == limit {
			break
		}
		if seen[sp.Genus] {
			continue
		}
		seen[sp.Genus] = true
		total += sp.Value
	}
	return total
}
