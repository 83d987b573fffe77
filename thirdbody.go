/*
Copyright © 2018 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package kinetics

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

// ThirdBodyEfficiencies holds the collision efficiency of each species
// in a species table, in species-table order.
type ThirdBodyEfficiencies struct {
	species *SpeciesTable
	effs    []float64
}

// NewThirdBodyEfficiencies creates a set of third-body efficiencies.
// effs must have one entry per species.
func NewThirdBodyEfficiencies(species *SpeciesTable, effs []float64) (*ThirdBodyEfficiencies, error) {
	if len(effs) != species.Len() {
		return nil, fmt.Errorf("kinetics: number of third-body efficiencies (%d) does not match the number of species (%d)",
			len(effs), species.Len())
	}
	return &ThirdBodyEfficiencies{
		species: species,
		effs:    append([]float64(nil), effs...),
	}, nil
}

// ThirdBodyEfficienciesFromDict reads third-body efficiencies from dict.
// The dictionary must contain either a "coeffs" list of [species, efficiency]
// pairs covering every species, or a "defaultEfficiency" that applies to
// every species not listed in "coeffs".
func ThirdBodyEfficienciesFromDict(species *SpeciesTable, dict Dictionary) (*ThirdBodyEfficiencies, error) {
	effs := make([]float64, species.Len())
	hasDefault := dict.Found("defaultEfficiency")
	if hasDefault {
		def, err := dict.Scalar("defaultEfficiency")
		if err != nil {
			return nil, err
		}
		for i := range effs {
			effs[i] = def
		}
	}
	if !dict.Found("coeffs") {
		if !hasDefault {
			return nil, fmt.Errorf("kinetics: third-body efficiencies need either 'coeffs' or 'defaultEfficiency'")
		}
		return NewThirdBodyEfficiencies(species, effs)
	}
	coeffs, err := dict.List("coeffs")
	if err != nil {
		return nil, err
	}
	if !hasDefault && len(coeffs) != species.Len() {
		return nil, fmt.Errorf("kinetics: number of third-body efficiencies (%d) does not match the number of species (%d)",
			len(coeffs), species.Len())
	}
	for n, c := range coeffs {
		pair, err := cast.ToSliceE(c)
		if err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("kinetics: third-body coefficient %d should be a [species, efficiency] pair but is %v", n, c)
		}
		name, err := cast.ToStringE(pair[0])
		if err != nil {
			return nil, fmt.Errorf("kinetics: third-body coefficient %d: %w", n, err)
		}
		i, err := species.Index(name)
		if err != nil {
			return nil, err
		}
		if effs[i], err = cast.ToFloat64E(pair[1]); err != nil {
			return nil, fmt.Errorf("kinetics: third-body efficiency for %s: %w", name, err)
		}
	}
	return NewThirdBodyEfficiencies(species, effs)
}

// M returns the effective third-body concentration Σ βᵢcᵢ.
// c must have one entry per species.
func (t *ThirdBodyEfficiencies) M(c []float64) float64 {
	return floats.Dot(t.effs, c)
}

// Efficiency returns the efficiency of species i.
func (t *ThirdBodyEfficiencies) Efficiency(i int) float64 { return t.effs[i] }

// Efficiencies returns a copy of the efficiencies in species order.
func (t *ThirdBodyEfficiencies) Efficiencies() []float64 {
	return append([]float64(nil), t.effs...)
}

// Species returns the species table the efficiencies are indexed by.
func (t *ThirdBodyEfficiencies) Species() *SpeciesTable { return t.species }

// Write writes the efficiencies as the TOML table named table.
func (t *ThirdBodyEfficiencies) Write(w io.Writer, table string) error {
	coeffs := make([][]interface{}, len(t.effs))
	for i, e := range t.effs {
		coeffs[i] = []interface{}{t.species.Name(i), e}
	}
	return WriteTable(w, table, struct {
		Coeffs [][]interface{} `toml:"coeffs"`
	}{Coeffs: coeffs})
}

// WriteTable writes a TOML table header followed by the fields of v,
// which must be a struct of scalar or array fields.
func WriteTable(w io.Writer, table string, v interface{}) error {
	if _, err := fmt.Fprintf(w, "\n[%s]\n", table); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("kinetics: writing %s: %w", table, err)
	}
	return nil
}
