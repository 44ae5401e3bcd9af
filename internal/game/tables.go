/*
Package game
File: tables.go
Description:
    Static valuation reference data: per-class value coefficients and the
    median-mass fallback table. The defaults ship embedded as YAML; a
    deployment may load a replacement document at startup.

    Pure lookup-with-default, no behaviour.
*/

package game

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var embeddedTables []byte

// ErrInvalidTables is returned when a tables document fails validation.
var ErrInvalidTables = errors.New("invalid valuation tables")

// Coefficients is the (base, terraformable) value pair of one body class.
type Coefficients struct {
	Base          float64 `yaml:"base" json:"base"`
	Terraformable float64 `yaml:"terraformable" json:"terraformable"`
}

// MassEntry holds the median masses of one body class. Either may be absent.
type MassEntry struct {
	Base          Optional[float64] `yaml:"base" json:"base"`
	Terraformable Optional[float64] `yaml:"terraformable" json:"terraformable"`
}

// Tables is the root of 'tables.yaml'.
type Tables struct {
	Values struct {
		Else    Coefficients               `yaml:"else"`
		Classes map[BodyClass]Coefficients `yaml:"classes"`
	} `yaml:"values"`

	MedianMasses struct {
		Fallback float64                 `yaml:"fallback"`
		Classes  map[BodyClass]MassEntry `yaml:"classes"`
	} `yaml:"median_mass"`
}

var defaultTables = mustLoadTables(embeddedTables)

// DefaultTables returns the embedded valuation tables.
func DefaultTables() *Tables {
	return defaultTables
}

// LoadTables decodes and validates a tables document.
func LoadTables(r io.Reader) (*Tables, error) {
	t := &Tables{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTablesFile reads a tables document from disk. An empty path returns the defaults.
func LoadTablesFile(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tables %q: %w", path, err)
	}
	defer f.Close()
	return LoadTables(f)
}

func mustLoadTables(b []byte) *Tables {
	t, err := LoadTables(bytes.NewReader(b))
	if err != nil {
		panic(fmt.Sprintf("embedded valuation tables: %v", err))
	}
	return t
}

func (t *Tables) validate() error {
	var errs []error
	check := func(name string, c Coefficients) {
		if c.Base < 0 || c.Terraformable < 0 {
			errs = append(errs, fmt.Errorf("%w: %s has a negative coefficient", ErrInvalidTables, name))
		}
	}
	check("else", t.Values.Else)
	for class, c := range t.Values.Classes {
		check(string(class), c)
	}

	if t.MedianMasses.Fallback <= 0 {
		errs = append(errs, fmt.Errorf("%w: median_mass.fallback must be positive", ErrInvalidTables))
	}
	for class, m := range t.MedianMasses.Classes {
		for _, v := range []Optional[float64]{m.Base, m.Terraformable} {
			if mass, ok := v.Get(); ok && mass <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s median mass must be positive", ErrInvalidTables, class))
			}
		}
	}
	return errors.Join(errs...)
}

// Coefficients returns the value pair of a class, or the "else" pair when the class is not listed.
func (t *Tables) Coefficients(class BodyClass) Coefficients {
	if c, ok := t.Values.Classes[class]; ok {
		return c
	}
	return t.Values.Else
}

// MedianMass returns the fallback mass for a body whose MassEM was not reported.
// A class without an entry for the requested terraform state uses the global fallback.
func (t *Tables) MedianMass(class BodyClass, terraformable bool) float64 {
	entry, ok := t.MedianMasses.Classes[class]
	if !ok {
		return t.MedianMasses.Fallback
	}
	if terraformable {
		return entry.Terraformable.Or(t.MedianMasses.Fallback)
	}
	return entry.Base.Or(t.MedianMasses.Fallback)
}
