/*
Package game
File: models.go
Description:
    Defines the data structures that make up the discovered galaxy:
    systems, bodies, biological signal candidates and the value breakdowns
    computed for them.

    Behaviour lives in valuation.go, species.go and galaxy.go; this file is
    the "schema" of the engine.
*/

package game

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional is an explicit Unknown | Known(value) attribute.
// Journal events omit fields freely, so every physical reading of a body is
// modelled this way instead of with sentinel zero values.
type Optional[T any] struct {
	value T
	known bool
}

// Known wraps a measured value.
func Known[T any](v T) Optional[T] {
	return Optional[T]{value: v, known: true}
}

// Unknown returns an empty reading.
func Unknown[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a decoded optional JSON field.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Known(*p)
}

// Get returns the value and whether it is known.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.known
}

// IsKnown reports whether a value was measured.
func (o Optional[T]) IsKnown() bool {
	return o.known
}

// Or returns the value, or def when unknown.
func (o Optional[T]) Or(def T) T {
	if !o.known {
		return def
	}
	return o.value
}

// MarshalJSON renders unknown readings as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.known {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalYAML decodes a present scalar as Known; an explicit null stays Unknown.
func (o *Optional[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	*o = Known(v)
	return nil
}

// Merge keeps the current value unless next is known.
func (o Optional[T]) Merge(next Optional[T]) Optional[T] {
	if next.known {
		return next
	}
	return o
}

// BodyClass is the journal's PlanetClass tag. It drives the valuation tables.
type BodyClass string

const (
	ClassUnknown             BodyClass = ""
	ClassRocky               BodyClass = "Rocky body"
	ClassIcy                 BodyClass = "Icy body"
	ClassRockyIce            BodyClass = "Rocky ice body"
	ClassWaterWorld          BodyClass = "Water world"
	ClassHighMetalContent    BodyClass = "High metal content body"
	ClassMetalRich           BodyClass = "Metal rich body"
	ClassEarthlike           BodyClass = "Earthlike body"
	ClassAmmoniaWorld        BodyClass = "Ammonia world"
	ClassGasGiantI           BodyClass = "Sudarsky class I gas giant"
	ClassGasGiantII          BodyClass = "Sudarsky class II gas giant"
	ClassGasGiantIII         BodyClass = "Sudarsky class III gas giant"
	ClassGasGiantIV          BodyClass = "Sudarsky class IV gas giant"
	ClassGasGiantV           BodyClass = "Sudarsky class V gas giant"
	ClassGasGiantWaterLife   BodyClass = "Gas giant with water based life"
	ClassGasGiantAmmoniaLife BodyClass = "Gas giant with ammonia based life"
	ClassHeliumRichGasGiant  BodyClass = "Helium rich gas giant"
	ClassWaterGiant          BodyClass = "Water giant"
)

// Atmosphere is the journal's AtmosphereType tag (e.g. "Ammonia", "CarbonDioxideRich").
type Atmosphere string

const (
	AtmosphereNone              Atmosphere = "None"
	AtmosphereAmmonia           Atmosphere = "Ammonia"
	AtmosphereArgon             Atmosphere = "Argon"
	AtmosphereArgonRich         Atmosphere = "ArgonRich"
	AtmosphereCarbonDioxide     Atmosphere = "CarbonDioxide"
	AtmosphereCarbonDioxideRich Atmosphere = "CarbonDioxideRich"
	AtmosphereHelium            Atmosphere = "Helium"
	AtmosphereMethane           Atmosphere = "Methane"
	AtmosphereMethaneRich       Atmosphere = "MethaneRich"
	AtmosphereNeon              Atmosphere = "Neon"
	AtmosphereNeonRich          Atmosphere = "NeonRich"
	AtmosphereNitrogen          Atmosphere = "Nitrogen"
	AtmosphereOxygen            Atmosphere = "Oxygen"
	AtmosphereSulphurDioxide    Atmosphere = "SulphurDioxide"
	AtmosphereWater             Atmosphere = "Water"
	AtmosphereWaterRich         Atmosphere = "WaterRich"
)

// ScanType distinguishes a detailed (FSS) scan from the lighter scan kinds.
type ScanType string

const (
	ScanDetailed        ScanType = "Detailed"
	ScanAutoScan        ScanType = "AutoScan"
	ScanBasic           ScanType = "Basic"
	ScanNavBeaconDetail ScanType = "NavBeaconDetail"
)

// BodyKey is the true identity of a body: body ids are only unique per system.
type BodyKey struct {
	SystemAddress int64 `json:"system_address"`
	BodyID        int   `json:"body_id"`
}

// BioSignal is a candidate life form on one body.
type BioSignal struct {
	Species      Species `json:"species"`
	GenusFound   bool    `json:"genus_found"`   // A surface scan confirmed the genus is present
	SpeciesFound bool    `json:"species_found"` // Reserved for confirmed-species pricing
}

// Body is one planet or moon. Its key never changes after creation; all other
// attributes are refined in place by later events.
type Body struct {
	Key        BodyKey `json:"key"`
	Name       string  `json:"name"`
	SystemName string  `json:"system_name"`

	Class         Optional[BodyClass]  `json:"class"`
	Terraformable bool                 `json:"terraformable"`
	Mass          Optional[float64]    `json:"mass"`        // Earth masses
	Gravity       Optional[float64]    `json:"gravity"`     // Surface gravity in m/s^2, as journaled
	Temperature   Optional[float64]    `json:"temperature"` // Surface temperature in kelvin
	Atmosphere    Optional[Atmosphere] `json:"atmosphere"`

	// Galactic history: was somebody else here first?
	WasDiscovered bool `json:"was_discovered"`
	WasMapped     bool `json:"was_mapped"`

	// Player history for this run.
	FromScan             bool `json:"from_scan"` // A Scan event has described the body
	DetailedScanByPlayer bool `json:"detailed_scan_by_player"`
	MappedByPlayer       bool `json:"mapped_by_player"`

	SignalCount int          `json:"signal_count"` // Distinct biological readings, last announced total
	Signals     []*BioSignal `json:"signals"`
}

// Values is the cartographic value breakdown of a body.
type Values struct {
	Base    float64 `json:"base"`
	Mapped  float64 `json:"mapped"`
	Bonuses float64 `json:"bonuses"`
}

// BioRange is the possible biological payout of a body.
type BioRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Actual  int `json:"actual"`
	Bonuses int `json:"bonuses"`
}

// System is a star system, keyed by its address (names are not unique).
type System struct {
	Address   int64         `json:"address"`
	Name      string        `json:"name"`
	StarPos   [3]float64    `json:"star_pos"`
	Visited   bool          `json:"visited"`
	BodyCount int           `json:"body_count"` // Announced by discovery scans, display only
	Bodies    map[int]*Body `json:"bodies"`
}

// ScanData is the payload of a Scan event as the galaxy store needs it.
type ScanData struct {
	SystemAddress  int64
	SystemName     string
	BodyID         int
	BodyName       string
	ScanType       ScanType
	Class          Optional[BodyClass]
	TerraformState string
	Mass           Optional[float64]
	Gravity        Optional[float64]
	Temperature    Optional[float64]
	Atmosphere     Optional[Atmosphere]
	WasDiscovered  bool
	WasMapped      bool
}
