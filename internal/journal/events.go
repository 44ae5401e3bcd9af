/*
Package journal
File: events.go
Description:
    Typed shapes of the game journal lines the engine consumes.

    Field names follow the journal's own JSON keys so lines decode
    directly. Readings the game may omit are pointers; ScanData converts
    them into the engine's explicit Known/Unknown form.
*/

package journal

import (
	"time"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

// Kind is the journal's "event" discriminator.
type Kind string

const (
	KindFSDJump                  Kind = "FSDJump"
	KindCarrierJump              Kind = "CarrierJump"
	KindLocation                 Kind = "Location"
	KindFSSDiscoveryScan         Kind = "FSSDiscoveryScan"
	KindScan                     Kind = "Scan"
	KindSAAScanComplete          Kind = "SAAScanComplete"
	KindFSSBodySignals           Kind = "FSSBodySignals"
	KindSAASignalsFound          Kind = "SAASignalsFound"
	KindSellExplorationData      Kind = "SellExplorationData"
	KindMultiSellExplorationData Kind = "MultiSellExplorationData"
	KindSellOrganicData          Kind = "SellOrganicData"
)

// biologicalSignal is the symbolic type of a biological signal entry.
const biologicalSignal = "$SAA_SignalType_Biological;"

// Event is one decoded journal line.
type Event interface {
	Kind() Kind
	Time() time.Time
}

// Header carries the two keys every journal line has.
type Header struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Kind      `json:"event"`
}

func (h Header) Kind() Kind      { return h.Event }
func (h Header) Time() time.Time { return h.Timestamp }

// FSDJump is an arrival in a system. CarrierJump and Location share its shape.
type FSDJump struct {
	Header
	StarSystem    string     `json:"StarSystem"`
	SystemAddress int64      `json:"SystemAddress"`
	StarPos       [3]float64 `json:"StarPos"`
}

// FSSDiscoveryScan is the "honk": it announces how many bodies a system has.
type FSSDiscoveryScan struct {
	Header
	SystemName    string  `json:"SystemName"`
	SystemAddress int64   `json:"SystemAddress"`
	BodyCount     int     `json:"BodyCount"`
	NonBodyCount  int     `json:"NonBodyCount"`
	Progress      float64 `json:"Progress"`
}

// Scan reports a body's physical data. Stars carry StarType instead of PlanetClass.
type Scan struct {
	Header
	StarSystem         string   `json:"StarSystem"`
	SystemAddress      int64    `json:"SystemAddress"`
	BodyName           string   `json:"BodyName"`
	BodyID             int      `json:"BodyID"`
	ScanType           string   `json:"ScanType"`
	StarType           string   `json:"StarType"`
	PlanetClass        string   `json:"PlanetClass"`
	TerraformState     string   `json:"TerraformState"`
	AtmosphereType     *string  `json:"AtmosphereType"`
	MassEM             *float64 `json:"MassEM"`
	SurfaceGravity     *float64 `json:"SurfaceGravity"`
	SurfaceTemperature *float64 `json:"SurfaceTemperature"`
	WasDiscovered      bool     `json:"WasDiscovered"`
	WasMapped          bool     `json:"WasMapped"`
}

// IsPlanet reports whether the scan carries a body class.
func (s *Scan) IsPlanet() bool {
	return s.PlanetClass != ""
}

// ScanData converts the event into the galaxy store's scan payload.
func (s *Scan) ScanData() game.ScanData {
	atmosphere := game.Unknown[game.Atmosphere]()
	if s.AtmosphereType != nil && *s.AtmosphereType != "" {
		atmosphere = game.Known(game.Atmosphere(*s.AtmosphereType))
	}
	class := game.Unknown[game.BodyClass]()
	if s.PlanetClass != "" {
		class = game.Known(game.BodyClass(s.PlanetClass))
	}

	return game.ScanData{
		SystemAddress:  s.SystemAddress,
		SystemName:     s.StarSystem,
		BodyID:         s.BodyID,
		BodyName:       s.BodyName,
		ScanType:       game.ScanType(s.ScanType),
		Class:          class,
		TerraformState: s.TerraformState,
		Mass:           game.FromPtr(s.MassEM),
		Gravity:        game.FromPtr(s.SurfaceGravity),
		Temperature:    game.FromPtr(s.SurfaceTemperature),
		Atmosphere:     atmosphere,
		WasDiscovered:  s.WasDiscovered,
		WasMapped:      s.WasMapped,
	}
}

// SAAScanComplete is written when the player finishes mapping a body with probes.
type SAAScanComplete struct {
	Header
	BodyName         string `json:"BodyName"`
	SystemAddress    int64  `json:"SystemAddress"`
	BodyID           int    `json:"BodyID"`
	ProbesUsed       int    `json:"ProbesUsed"`
	EfficiencyTarget int    `json:"EfficiencyTarget"`
}

// Signal is one entry of a signals list.
type Signal struct {
	Type          string `json:"Type"`
	TypeLocalised string `json:"Type_Localised"`
	Count         int    `json:"Count"`
}

// IsBiological reports whether the entry counts biological readings.
func (s Signal) IsBiological() bool {
	return s.Type == biologicalSignal || s.TypeLocalised == "Biological"
}

// Genus is one confirmed genus of a SAASignalsFound event.
type Genus struct {
	Genus          string `json:"Genus"`
	GenusLocalised string `json:"Genus_Localised"`
}

// Name returns the readable genus name, falling back to the symbol.
func (g Genus) Name() string {
	if g.GenusLocalised != "" {
		return g.GenusLocalised
	}
	return g.Genus
}

// FSSBodySignals announces signal counts found from orbit.
type FSSBodySignals struct {
	Header
	BodyName      string   `json:"BodyName"`
	BodyID        int      `json:"BodyID"`
	SystemAddress int64    `json:"SystemAddress"`
	Signals       []Signal `json:"Signals"`
}

// SAASignalsFound follows a surface map and names the genera present.
type SAASignalsFound struct {
	Header
	BodyName      string   `json:"BodyName"`
	BodyID        int      `json:"BodyID"`
	SystemAddress int64    `json:"SystemAddress"`
	Signals       []Signal `json:"Signals"`
	Genuses       []Genus  `json:"Genuses"`
}

// Sale is any of the cartographic or organic data sale events.
type Sale struct {
	Header
	TotalEarnings int64 `json:"TotalEarnings"`
}

// BiologicalCount sums the biological entries of a signals list.
// ok is false when the list has no biological entry at all.
func BiologicalCount(signals []Signal) (count int, ok bool) {
	for _, s := range signals {
		if s.IsBiological() {
			count += s.Count
			ok = true
		}
	}
	return count, ok
}
