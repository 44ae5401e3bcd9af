/*
Package game
File: species.go
Description:
    The exobiology catalog and the habitability matcher.

    Given a body's atmosphere, gravity and temperature the matcher filters
    the roster down to the species the body could host. Missing readings
    never disqualify a species; only a known value outside a known limit does.
*/

package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/species.yaml
var embeddedSpecies []byte

//go:embed data/species_full.yaml
var embeddedFullSpecies []byte

// Embedded roster names.
const (
	RosterCore = "core"
	RosterFull = "full"
)

// Species is one catalog entry.
type Species struct {
	Genus           string            `yaml:"-" json:"genus"`
	Name            string            `yaml:"name" json:"species"`
	Value           int               `yaml:"value" json:"value"`               // Credits paid per confirmed species
	MinDistance     int               `yaml:"min_distance" json:"min_distance"` // Metres between samples
	Atmospheres     []Atmosphere      `yaml:"atmospheres" json:"atmospheres"`
	MaxGravity      Optional[float64] `yaml:"max_gravity" json:"max_gravity"`
	MinTemperatureK Optional[float64] `yaml:"min_temperature_k" json:"min_temperature_k"`
	MaxTemperatureK Optional[float64] `yaml:"max_temperature_k" json:"max_temperature_k"`
}

// FullName returns "Genus species".
func (s Species) FullName() string {
	return s.Genus + " " + s.Name
}

// genusEntry is one genus block of 'species.yaml'; its limits are defaults for its members.
type genusEntry struct {
	Genus           string            `yaml:"genus"`
	MinDistance     int               `yaml:"min_distance"`
	MaxGravity      Optional[float64] `yaml:"max_gravity"`
	MinTemperatureK Optional[float64] `yaml:"min_temperature_k"`
	MaxTemperatureK Optional[float64] `yaml:"max_temperature_k"`
	Species         []Species         `yaml:"species"`
}

// Catalog is the flattened species roster, in document order.
type Catalog struct {
	species []Species
}

var (
	defaultCatalog = mustLoadCatalog(embeddedSpecies)
	fullCatalog    = mustLoadCatalog(embeddedFullSpecies)
)

// DefaultCatalog returns the embedded core roster.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// FullCatalog returns the embedded full roster of every known genus.
func FullCatalog() *Catalog {
	return fullCatalog
}

// EmbeddedCatalog returns an embedded roster by name. An empty name is the core roster.
func EmbeddedCatalog(roster string) (*Catalog, error) {
	switch roster {
	case "", RosterCore:
		return defaultCatalog, nil
	case RosterFull:
		return fullCatalog, nil
	}
	return nil, fmt.Errorf("unknown species roster %q", roster)
}

// NewCatalog builds a catalog from explicit entries.
func NewCatalog(species ...Species) *Catalog {
	return &Catalog{species: slices.Clone(species)}
}

// LoadCatalog decodes a species document, applying genus defaults to every member.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc struct {
		Genera []genusEntry `yaml:"genera"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode species: %w", err)
	}

	c := &Catalog{}
	for _, g := range doc.Genera {
		if g.Genus == "" {
			return nil, fmt.Errorf("decode species: genus without a name")
		}
		for _, sp := range g.Species {
			sp.Genus = g.Genus
			if sp.MinDistance == 0 {
				sp.MinDistance = g.MinDistance
			}
			sp.MaxGravity = g.MaxGravity.Merge(sp.MaxGravity)
			sp.MinTemperatureK = g.MinTemperatureK.Merge(sp.MinTemperatureK)
			sp.MaxTemperatureK = g.MaxTemperatureK.Merge(sp.MaxTemperatureK)
			c.species = append(c.species, sp)
		}
	}
	return c, nil
}

// LoadCatalogFile reads a species document from disk. An empty path returns the core roster.
func LoadCatalogFile(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open species %q: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

func mustLoadCatalog(b []byte) *Catalog {
	c, err := LoadCatalog(bytes.NewReader(b))
	if err != nil {
		panic(fmt.Sprintf("embedded species catalog: %v", err))
	}
	return c
}

// All returns a copy of the roster.
func (c *Catalog) All() []Species {
	return slices.Clone(c.species)
}

// Find looks up a species by genus and species name.
func (c *Catalog) Find(genus, name string) (Species, bool) {
	for _, sp := range c.species {
		if sp.Genus == genus && sp.Name == name {
			return sp, true
		}
	}
	return Species{}, false
}

// Candidates returns every species the given conditions could host.
//
// A species qualifies iff its atmosphere list is non-empty and contains the
// atmosphere, and no known reading falls outside one of its known limits.
// Gravity is in g.
func (c *Catalog) Candidates(atmosphere Optional[Atmosphere], gravity, temperature Optional[float64]) []Species {
	atmo, ok := atmosphere.Get()
	if !ok {
		return nil
	}

	var out []Species
	for _, sp := range c.species {
		if len(sp.Atmospheres) == 0 || !slices.Contains(sp.Atmospheres, atmo) {
			continue
		}
		if exceeds(gravity, sp.MaxGravity) {
			continue
		}
		if exceeds(temperature, sp.MaxTemperatureK) {
			continue
		}
		if below(temperature, sp.MinTemperatureK) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func exceeds(reading, limit Optional[float64]) bool {
	v, ok := reading.Get()
	hi, hasLimit := limit.Get()
	return ok && hasLimit && v > hi
}

func below(reading, limit Optional[float64]) bool {
	v, ok := reading.Get()
	lo, hasLimit := limit.Get()
	return ok && hasLimit && v < lo
}
