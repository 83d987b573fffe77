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

// Package cht sets up the fluid regions of a multi-region conjugate heat
// transfer simulation.
package cht

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Patch is a boundary patch of a cell-centered field.
type Patch struct {
	Name string `toml:"name"`

	// FixesValue is true for patches with a prescribed (fixed) value.
	FixesValue bool `toml:"fixesValue"`

	// FaceCells holds the index of the internal cell next to each face.
	FaceCells []int `toml:"faceCells"`

	// Values holds the boundary value at each face.
	Values []float64 `toml:"values"`
}

// VolScalarField is a scalar field defined at cell centers with values
// on the boundary patches.
type VolScalarField struct {
	Name     string    `toml:"name"`
	Internal []float64 `toml:"internal"`
	Boundary []*Patch  `toml:"patch"`
}

func (f *VolScalarField) check() error {
	if len(f.Internal) == 0 {
		return fmt.Errorf("cht: field %s has no cells", f.Name)
	}
	for _, p := range f.Boundary {
		if len(p.Values) != len(p.FaceCells) {
			return fmt.Errorf("cht: field %s patch %s has %d values but %d faces",
				f.Name, p.Name, len(p.Values), len(p.FaceCells))
		}
		for _, c := range p.FaceCells {
			if c < 0 || c >= len(f.Internal) {
				return fmt.Errorf("cht: field %s patch %s face cell %d is out of range [0, %d)",
					f.Name, p.Name, c, len(f.Internal))
			}
		}
	}
	return nil
}

// Max returns the maximum of the internal and boundary values.
func (f *VolScalarField) Max() float64 { return f.max(true) }

// Min returns the minimum of the internal and boundary values.
func (f *VolScalarField) Min() float64 { return f.min(true) }

// max returns the maximum of the internal values and the values of the
// boundary patches, skipping fixed-value patches unless fixed is true.
func (f *VolScalarField) max(fixed bool) float64 {
	m := floats.Max(f.Internal)
	for _, p := range f.Boundary {
		if len(p.Values) > 0 && (fixed || !p.FixesValue) {
			m = math.Max(m, floats.Max(p.Values))
		}
	}
	return m
}

// min is the minimum counterpart of max.
func (f *VolScalarField) min(fixed bool) float64 {
	m := floats.Min(f.Internal)
	for _, p := range f.Boundary {
		if len(p.Values) > 0 && (fixed || !p.FixesValue) {
			m = math.Min(m, floats.Min(p.Values))
		}
	}
	return m
}

// patch returns the named boundary patch, or nil if there is none.
func (f *VolScalarField) patch(name string) *Patch {
	for _, p := range f.Boundary {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// NeedReference returns whether the level of the field is undetermined
// by its boundary conditions, i.e. no patch fixes its value.
func (f *VolScalarField) NeedReference() bool {
	for _, p := range f.Boundary {
		if p.FixesValue {
			return false
		}
	}
	return true
}

// CorrectBoundaryConditions updates the values of patches that do not
// fix their value to the values of the adjacent cells.
func (f *VolScalarField) CorrectBoundaryConditions() {
	for _, p := range f.Boundary {
		if p.FixesValue {
			continue
		}
		for i, c := range p.FaceCells {
			p.Values[i] = f.Internal[c]
		}
	}
}

// apply sets every internal value v of the field, and every value of the
// patches that do not fix their value, to op(v).
func (f *VolScalarField) apply(op func(float64) float64) {
	for i, v := range f.Internal {
		f.Internal[i] = op(v)
	}
	for _, p := range f.Boundary {
		if p.FixesValue {
			continue
		}
		for i, v := range p.Values {
			p.Values[i] = op(v)
		}
	}
}
