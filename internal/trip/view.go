/*
Package trip
File: view.go
Description:
    Value-typed read models of the trip and the current system.

    Views are copied out under the engine's read lock, so callers on other
    goroutines never touch live galaxy records.
*/

package trip

import (
	"time"

	"github.com/google/uuid"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

// Summary is the running trip total.
type Summary struct {
	ID            uuid.UUID `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	BodiesScanned int       `json:"bodies_scanned"`
	ScannedValue  int64     `json:"scanned_value"`
	BodiesMapped  int       `json:"bodies_mapped"`
	MappedValue   int64     `json:"mapped_value"`
	BonusValue    int64     `json:"bonus_value"`
	TotalValue    int64     `json:"total_value"`
	BioMin        int64     `json:"bio_min"`
	BioMax        int64     `json:"bio_max"`
}

// BodyView is one body as the display shows it.
type BodyView struct {
	Key             game.BodyKey    `json:"key"`
	Name            string          `json:"name"`
	Class           game.BodyClass  `json:"class"`
	Terraformable   bool            `json:"terraformable"`
	WasDiscovered   bool            `json:"was_discovered"`
	WasMapped       bool            `json:"was_mapped"`
	Scanned         bool            `json:"scanned"`
	Mapped          bool            `json:"mapped"`
	Actual          game.Values     `json:"actual"`
	ActualTotal     float64         `json:"actual_total"`
	Estimate        game.Values     `json:"estimate"`
	EstimateTotal   float64         `json:"estimate_total"`
	SignalCount     int             `json:"signal_count"`
	Bio             game.BioRange   `json:"bio"`
	ConfirmedGenera []string        `json:"confirmed_genera"`
	Candidates      []CandidateView `json:"candidates"`
}

// CandidateView is one candidate species of a body.
type CandidateView struct {
	Genus      string `json:"genus"`
	Species    string `json:"species"`
	Value      int    `json:"value"`
	GenusFound bool   `json:"genus_found"`
}

// SystemView is a system and its bodies ordered by id.
type SystemView struct {
	Address   int64      `json:"address"`
	Name      string     `json:"name"`
	StarPos   [3]float64 `json:"star_pos"`
	Visited   bool       `json:"visited"`
	BodyCount int        `json:"body_count"`
	Known     int        `json:"known"`
	Value     float64    `json:"value"`
	Estimate  float64    `json:"estimate"`
	Bodies    []BodyView `json:"bodies"`
}

// Snapshot is everything the display needs at once.
type Snapshot struct {
	Summary Summary    `json:"summary"`
	Current SystemView `json:"current"`
}

// NewBodyView values a body and copies it into a view.
func NewBodyView(tables *game.Tables, b *game.Body) BodyView {
	actual := tables.Actual(b)
	estimate := tables.Estimate(b)

	v := BodyView{
		Key:             b.Key,
		Name:            b.ShortName(),
		Class:           b.Class.Or(game.ClassUnknown),
		Terraformable:   b.Terraformable,
		WasDiscovered:   b.WasDiscovered,
		WasMapped:       b.WasMapped,
		Scanned:         b.DetailedScanByPlayer,
		Mapped:          b.MappedByPlayer,
		Actual:          actual,
		ActualTotal:     actual.TotalValue(),
		Estimate:        estimate,
		EstimateTotal:   estimate.TotalValue(),
		SignalCount:     b.SignalCount,
		Bio:             b.BioValues(),
		ConfirmedGenera: b.ConfirmedGenera(),
	}
	for _, sig := range b.Signals {
		v.Candidates = append(v.Candidates, CandidateView{
			Genus:      sig.Species.Genus,
			Species:    sig.Species.Name,
			Value:      sig.Species.Value,
			GenusFound: sig.GenusFound,
		})
	}
	return v
}

// NewSystemView values every body of a system.
func NewSystemView(tables *game.Tables, s *game.System) SystemView {
	v := SystemView{
		Address:   s.Address,
		Name:      s.Name,
		StarPos:   s.StarPos,
		Visited:   s.Visited,
		BodyCount: s.BodyCount,
		Known:     len(s.Bodies),
	}
	for _, b := range s.BodyList() {
		bv := NewBodyView(tables, b)
		v.Value += bv.ActualTotal
		v.Estimate += bv.EstimateTotal
		v.Bodies = append(v.Bodies, bv)
	}
	return v
}
