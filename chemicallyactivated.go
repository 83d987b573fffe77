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

// ChemicallyActivatedReactionRate is the rate of a chemically activated
// bimolecular reaction, k = k0·F(T, Pr)/(1 + Pr) with reduced pressure
// Pr = k0·M/k∞. It is immutable once created.
type ChemicallyActivatedReactionRate struct {
	k0, kInf RateLaw
	f        ActivationFunction
	tbes     *ThirdBodyEfficiencies

	// beta holds the third-body efficiencies indexed by species.
	beta []float64
}

// NewChemicallyActivated creates a chemically activated reaction rate from
// its low-pressure limit k0, high-pressure limit kInf, blending function f,
// and third-body efficiencies tbes.
func NewChemicallyActivated(k0, kInf RateLaw, f ActivationFunction, tbes *ThirdBodyEfficiencies) *ChemicallyActivatedReactionRate {
	return &ChemicallyActivatedReactionRate{
		k0:   k0,
		kInf: kInf,
		f:    f,
		tbes: tbes,
		beta: tbes.Efficiencies(),
	}
}

// ChemicallyActivatedFromDict reads a chemically activated reaction rate
// from the "k0", "kInf", "F" and "thirdBodyEfficiencies" entries of dict,
// using readRate for both rate limits and readF for the blending function.
func ChemicallyActivatedFromDict(species *SpeciesTable, dict Dictionary, readRate RateLawReader, readF ActivationFunctionReader) (*ChemicallyActivatedReactionRate, error) {
	k0, kInf, f, tbes, err := readPressureDependent(species, dict, readRate, readF)
	if err != nil {
		return nil, fmt.Errorf("kinetics: reading chemically activated reaction rate: %w", err)
	}
	return NewChemicallyActivated(k0, kInf, f, tbes), nil
}

// Rate returns k0·F/(1 + Pr).
func (r *ChemicallyActivatedReactionRate) Rate(p, T float64, c []float64) float64 {
	k0 := r.k0.Rate(p, T, c)
	kInf := r.kInf.Rate(p, T, c)
	Pr := k0 * r.tbes.M(c) / kInf
	return k0 * (1 / (1 + Pr)) * r.f.F(T, Pr)
}

// DdT returns F/(1 + Pr)·dk0/dT. The temperature dependence of k∞ and
// of the blending function is not included.
func (r *ChemicallyActivatedReactionRate) DdT(p, T float64, c []float64) float64 {
	k0 := r.k0.Rate(p, T, c)
	kInf := r.kInf.Rate(p, T, c)
	Pr := k0 * r.tbes.M(c) / kInf
	return (1 / (1 + Pr)) * r.f.F(T, Pr) * r.k0.DdT(p, T, c)
}

// Dcidc sets dcidc[i] = -dPr/dcᵢ/(1 + Pr) + dF/dcᵢ/F with
// dPr/dcᵢ = -βᵢ·k0/k∞. All entries are zero when M ≤ Small.
func (r *ChemicallyActivatedReactionRate) Dcidc(p, T float64, c []float64, dcidc []float64) {
	M := r.tbes.M(c)
	if M > Small {
		k0 := r.k0.Rate(p, T, c)
		kInf := r.kInf.Rate(p, T, c)
		Pr := k0 * M / kInf
		F := r.f.F(T, Pr)
		for i, beta := range r.beta {
			dPrdci := -beta * k0 / kInf
			dFdci := r.f.Ddc(Pr, F, dPrdci, T)
			dcidc[i] = -dPrdci/(1+Pr) + dFdci/F
		}
		return
	}
	for i := range r.beta {
		dcidc[i] = 0
	}
}

// DcidT returns -dPr/dT/(1 + Pr) + dF/dT/F, with the concentrations
// taken to scale as 1/T. It is zero when M ≤ Small.
func (r *ChemicallyActivatedReactionRate) DcidT(p, T float64, c []float64) float64 {
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
	return -dPrdT/(1+Pr) + dFdT/F
}

// K0 returns the low-pressure limit rate law.
func (r *ChemicallyActivatedReactionRate) K0() RateLaw { return r.k0 }

// KInf returns the high-pressure limit rate law.
func (r *ChemicallyActivatedReactionRate) KInf() RateLaw { return r.kInf }

// Activation returns the blending function.
func (r *ChemicallyActivatedReactionRate) Activation() ActivationFunction { return r.f }

// ThirdBodyEfficiencies returns the collision efficiencies.
func (r *ChemicallyActivatedReactionRate) ThirdBodyEfficiencies() *ThirdBodyEfficiencies {
	return r.tbes
}

// Write writes k0, k∞, the blending function and the third-body
// efficiencies, in that order, as sub-tables of table.
func (r *ChemicallyActivatedReactionRate) Write(w io.Writer, table string) error {
	return writePressureDependent(w, table, r.k0, r.kInf, r.f, r.tbes)
}

func readPressureDependent(species *SpeciesTable, dict Dictionary, readRate RateLawReader, readF ActivationFunctionReader) (k0, kInf RateLaw, f ActivationFunction, tbes *ThirdBodyEfficiencies, err error) {
	k0Dict, err := dict.SubDict("k0")
	if err != nil {
		return
	}
	if k0, err = readRate(species, k0Dict); err != nil {
		err = fmt.Errorf("k0: %w", err)
		return
	}
	kInfDict, err := dict.SubDict("kInf")
	if err != nil {
		return
	}
	if kInf, err = readRate(species, kInfDict); err != nil {
		err = fmt.Errorf("kInf: %w", err)
		return
	}
	fDict, err := dict.SubDictOrEmpty("F")
	if err != nil {
		return
	}
	if f, err = readF(fDict); err != nil {
		err = fmt.Errorf("F: %w", err)
		return
	}
	tbeDict, err := dict.SubDict("thirdBodyEfficiencies")
	if err != nil {
		return
	}
	tbes, err = ThirdBodyEfficienciesFromDict(species, tbeDict)
	return
}

func writePressureDependent(w io.Writer, table string, k0, kInf RateLaw, f ActivationFunction, tbes *ThirdBodyEfficiencies) error {
	if err := k0.Write(w, table+".k0"); err != nil {
		return err
	}
	if err := kInf.Write(w, table+".kInf"); err != nil {
		return err
	}
	if err := f.Write(w, table+".F"); err != nil {
		return err
	}
	return tbes.Write(w, table+".thirdBodyEfficiencies")
}
