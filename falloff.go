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
)

// FallOffReactionRate is the rate of a unimolecular falloff reaction,
// k = k∞·Pr/(1 + Pr)·F(T, Pr) with reduced pressure Pr = k0·M/k∞.
// It is immutable once created.
type FallOffReactionRate struct {
	k0, kInf RateLaw
	f        ActivationFunction
	tbes     *ThirdBodyEfficiencies
	beta     []float64
}

// NewFallOff creates a falloff reaction rate.
func NewFallOff(k0, kInf RateLaw, f ActivationFunction, tbes *ThirdBodyEfficiencies) *FallOffReactionRate {
	return &FallOffReactionRate{
		k0:   k0,
		kInf: kInf,
		f:    f,
		tbes: tbes,
		beta: tbes.Efficiencies(),
	}
}

// FallOffFromDict reads a falloff reaction rate from the same entries as
// ChemicallyActivatedFromDict.
func FallOffFromDict(species *SpeciesTable, dict Dictionary, readRate RateLawReader, readF ActivationFunctionReader) (*FallOffReactionRate, error) {
	k0, kInf, f, tbes, err := readPressureDependent(species, dict, readRate, readF)
	if err != nil {
		return nil, fmt.Errorf("kinetics: reading falloff reaction rate: %w", err)
	}
	return NewFallOff(k0, kInf, f, tbes), nil
}

// Rate returns k∞·Pr/(1 + Pr)·F.
func (r *FallOffReactionRate) Rate(p, T float64, c []float64) float64 {
	k0 := r.k0.Rate(p, T, c)
	kInf := r.kInf.Rate(p, T, c)
	Pr := k0 * r.tbes.M(c) / kInf
	return kInf * (Pr / (1 + Pr)) * r.f.F(T, Pr)
}

// DdT returns Pr/(1 + Pr)·F·dk∞/dT.
func (r *FallOffReactionRate) DdT(p, T float64, c []float64) float64 {
	k0 := r.k0.Rate(p, T, c)
	kInf := r.kInf.Rate(p, T, c)
	Pr := k0 * r.tbes.M(c) / kInf
	return (Pr / (1 + Pr)) * r.f.F(T, Pr) * r.kInf.DdT(p, T, c)
}

// Dcidc sets dcidc[i] = dPr/dcᵢ/(Pr(1 + Pr)) + dF/dcᵢ/F with
// dPr/dcᵢ = -βᵢ·k0/k∞. All entries are zero when M ≤ Small.
func (r *FallOffReactionRate) Dcidc(p, T float64, c []float64, dcidc []float64) {
	M := r.tbes.M(c)
	if M > Small {
		k0 := r.k0.Rate(p, T, c)
		kInf := r.kInf.Rate(p, T, c)
		Pr := k0 * M / kInf
		F := r.f.F(T, Pr)
		for i, beta := range r.beta {
			dPrdci := -beta * k0 / kInf
			dFdci := r.f.Ddc(Pr, F, dPrdci, T)
			dcidc[i] = dPrdci/(Pr*(1+Pr)) + dFdci/F
		}
		return
	}
	for i := range r.beta {
		dcidc[i] = 0
	}
}

// DcidT returns dPr/dT/(Pr(1 + Pr)) + dF/dT/F. It is zero when M ≤ Small.
func (r *FallOffReactionRate) DcidT(p, T float64, c []float64) float64 {
	M := r.tbes.M(c)
	if M <= Small {
		return 0
	}
	k0 := r.k0.Rate(p, T, c)
	kInf := r.kInf.Rate(p, T, c)
	Pr := k0 * M / kInf
	F := r.f.F(T, Pr)
	dPrdT := Pr * (r.k0.DdT(p, T, c)/k0 - r.kInf.DdT(p, T, c)/kInf - 1/T)
	dFdT := r.f.DdT(Pr, F, dPrdT, T)
	return dPrdT/(Pr*(1+Pr)) + dFdT/F
}

// K0 returns the low-pressure limit rate law.
func (r *FallOffReactionRate) K0() RateLaw { return r.k0 }

// KInf returns the high-pressure limit rate law.
func (r *FallOffReactionRate) KInf() RateLaw { return r.kInf }

// Activation returns the blending function.
func (r *FallOffReactionRate) Activation() ActivationFunction { return r.f }

// ThirdBodyEfficiencies returns the collision efficiencies.
func (r *FallOffReactionRate) ThirdBodyEfficiencies() *ThirdBodyEfficiencies { return r.tbes }

// Write writes k0, k∞, the blending function and the third-body
// efficiencies, in that order, as sub-tables of table.
func (r *FallOffReactionRate) Write(w io.Writer, table string) error {
	return writePressureDependent(w, table, r.k0, r.kInf, r.f, r.tbes)
}
