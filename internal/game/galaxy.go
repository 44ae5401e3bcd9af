/*
Package game
File: galaxy.go
Description:
    The galaxy state store. Holds every system seen during the run and,
    within each, every body; owns body identity and in-place refinement of
    body records as new events arrive.

    A Galaxy is not safe for concurrent use. The trip engine owns it and
    serializes all writes.
*/

package game

import (
	"cmp"
	"slices"
	"strings"
)

// Galaxy is the aggregate root of the discovered-space model.
type Galaxy struct {
	tables  *Tables
	catalog *Catalog

	systems map[int64]*System
	current *System

	// placeholder is current until the first jump is observed. It is never registered.
	placeholder *System
}

// NewGalaxy creates an empty galaxy valued with the given reference data.
func NewGalaxy(tables *Tables, catalog *Catalog) *Galaxy {
	placeholder := newSystem(0, "Unknown", [3]float64{})
	return &Galaxy{
		tables:      tables,
		catalog:     catalog,
		systems:     make(map[int64]*System),
		current:     placeholder,
		placeholder: placeholder,
	}
}

// NewDefaultGalaxy creates an empty galaxy using the embedded tables and catalog.
func NewDefaultGalaxy() *Galaxy {
	return NewGalaxy(DefaultTables(), DefaultCatalog())
}

func newSystem(address int64, name string, starPos [3]float64) *System {
	return &System{
		Address: address,
		Name:    name,
		StarPos: starPos,
		Bodies:  make(map[int]*Body),
	}
}

// Tables returns the valuation tables in use.
func (g *Galaxy) Tables() *Tables { return g.tables }

// Catalog returns the species catalog in use.
func (g *Galaxy) Catalog() *Catalog { return g.catalog }

// Current returns the system the player last jumped into, or the placeholder.
func (g *Galaxy) Current() *System { return g.current }

// HasCurrent reports whether a jump has been observed.
func (g *Galaxy) HasCurrent() bool { return g.current != g.placeholder }

// System looks up a registered system.
func (g *Galaxy) System(address int64) (*System, bool) {
	s, ok := g.systems[address]
	return s, ok
}

// Body looks up a body by its key.
func (g *Galaxy) Body(address int64, bodyID int) (*Body, bool) {
	s, ok := g.systems[address]
	if !ok {
		return nil, false
	}
	b, ok := s.Bodies[bodyID]
	return b, ok
}

// Systems returns every registered system ordered by address.
func (g *Galaxy) Systems() []*System {
	out := make([]*System, 0, len(g.systems))
	for _, s := range g.systems {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *System) int { return cmp.Compare(a.Address, b.Address) })
	return out
}

// AddSystem registers a prebuilt system, replacing nothing that already exists.
func (g *Galaxy) AddSystem(s *System) *System {
	if existing, ok := g.systems[s.Address]; ok {
		return existing
	}
	if s.Bodies == nil {
		s.Bodies = make(map[int]*Body)
	}
	g.systems[s.Address] = s
	return s
}

// SetCurrent makes a registered system current. Unknown addresses are ignored.
func (g *Galaxy) SetCurrent(address int64) bool {
	s, ok := g.systems[address]
	if ok {
		g.current = s
	}
	return ok
}

// JumpToSystem records arrival in a system and makes it current.
// Revisiting a system keeps all of its existing body data.
func (g *Galaxy) JumpToSystem(address int64, name string, starPos [3]float64) *System {
	s, ok := g.systems[address]
	if !ok {
		s = newSystem(address, name, starPos)
		g.systems[address] = s
	}
	s.Visited = true
	g.current = s
	return s
}

// RecordDiscoveryScan adds an announced body count to a system.
// Counts accumulate across partial discovery scans.
func (g *Galaxy) RecordDiscoveryScan(address int64, bodyCount int) *System {
	s := g.ensureSystem(address, "")
	s.BodyCount += bodyCount
	return s
}

// ensureSystem returns the registered system, creating an unvisited one when missing.
func (g *Galaxy) ensureSystem(address int64, name string) *System {
	s, ok := g.systems[address]
	if !ok {
		s = newSystem(address, name, [3]float64{})
		g.systems[address] = s
	}
	if s.Name == "" {
		s.Name = name
	}
	return s
}

// AddOrUpdateBodyFromScan creates the body on first sight, or refreshes it in
// place when a detailed scan arrives for a known body. Lighter scans of a
// scanned body change nothing; a record made only from signal events takes
// the first scan of any kind.
func (g *Galaxy) AddOrUpdateBodyFromScan(scan ScanData) *Body {
	s := g.ensureSystem(scan.SystemAddress, scan.SystemName)

	b, ok := s.Bodies[scan.BodyID]
	if !ok {
		b = &Body{Key: BodyKey{SystemAddress: scan.SystemAddress, BodyID: scan.BodyID}}
		s.Bodies[scan.BodyID] = b
	}
	if b.FromScan && scan.ScanType != ScanDetailed {
		return b
	}

	if b.Name == "" {
		b.Name = scan.BodyName
	}
	if b.SystemName == "" {
		b.SystemName = scan.SystemName
	}
	b.applyScan(scan)
	b.FromScan = true
	if scan.ScanType == ScanDetailed {
		b.DetailedScanByPlayer = true
	}
	g.deriveSignals(b)
	return b
}

// AddOrUpdateSignalCount stores the announced number of biological signals.
// The journal re-announces totals, so the count overwrites rather than adds.
func (g *Galaxy) AddOrUpdateSignalCount(address int64, bodyID, count int) *Body {
	s := g.ensureSystem(address, "")

	b, ok := s.Bodies[bodyID]
	if !ok {
		b = &Body{Key: BodyKey{SystemAddress: address, BodyID: bodyID}}
		s.Bodies[bodyID] = b
	}
	b.SignalCount = count
	return b
}

// RefreshCandidates recomputes a body's candidate species when its atmosphere is known.
func (g *Galaxy) RefreshCandidates(b *Body) {
	g.deriveSignals(b)
}

// ConfirmGenus marks every candidate of the named genera as found. Unknown bodies are ignored.
func (g *Galaxy) ConfirmGenus(address int64, bodyID int, genera ...string) {
	b, ok := g.Body(address, bodyID)
	if !ok {
		return
	}
	for _, sig := range b.Signals {
		if slices.Contains(genera, sig.Species.Genus) {
			sig.GenusFound = true
		}
	}
}

// deriveSignals rebuilds the candidate set, carrying over confirmations of species that remain candidates.
func (g *Galaxy) deriveSignals(b *Body) {
	if !b.Atmosphere.IsKnown() {
		return
	}

	previous := make(map[string]*BioSignal, len(b.Signals))
	for _, sig := range b.Signals {
		previous[sig.Species.FullName()] = sig
	}

	candidates := g.catalog.Candidates(b.Atmosphere, b.GravityG(), b.Temperature)
	signals := make([]*BioSignal, 0, len(candidates))
	for _, sp := range candidates {
		sig := &BioSignal{Species: sp}
		if prev, ok := previous[sp.FullName()]; ok {
			sig.GenusFound = prev.GenusFound
			sig.SpeciesFound = prev.SpeciesFound
		}
		signals = append(signals, sig)
	}
	b.Signals = signals
}

// applyScan copies scan readings onto the body. Readings the scan did not carry are kept.
func (b *Body) applyScan(scan ScanData) {
	b.Class = b.Class.Merge(scan.Class)
	b.Terraformable = scan.TerraformState != ""
	b.Mass = b.Mass.Merge(scan.Mass)
	b.Gravity = b.Gravity.Merge(scan.Gravity)
	b.Temperature = b.Temperature.Merge(scan.Temperature)
	b.Atmosphere = b.Atmosphere.Merge(scan.Atmosphere)
	b.WasDiscovered = scan.WasDiscovered
	b.WasMapped = scan.WasMapped
}

// GravityG returns surface gravity in g. The journal reports m/s^2.
func (b *Body) GravityG() Optional[float64] {
	v, ok := b.Gravity.Get()
	if !ok {
		return Unknown[float64]()
	}
	return Known(v / 10)
}

// ShortName strips the system name prefix ("Sol 3 a" in "Sol" -> "3 a").
func (b *Body) ShortName() string {
	if b.SystemName == "" {
		return b.Name
	}
	return strings.TrimSpace(strings.TrimPrefix(b.Name, b.SystemName))
}

// BioValues returns the possible payout range of the body's biological signals.
func (b *Body) BioValues() BioRange {
	return BioValues(b.Signals, b.SignalCount)
}

// ConfirmedGenera lists the genera confirmed on the body, in candidate order.
func (b *Body) ConfirmedGenera() []string {
	var out []string
	for _, sig := range b.Signals {
		if sig.GenusFound && !slices.Contains(out, sig.Species.Genus) {
			out = append(out, sig.Species.Genus)
		}
	}
	return out
}

// BodyList returns the system's bodies ordered by body id.
func (s *System) BodyList() []*Body {
	out := make([]*Body, 0, len(s.Bodies))
	for _, b := range s.Bodies {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *Body) int { return cmp.Compare(a.Key.BodyID, b.Key.BodyID) })
	return out
}
