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

package kinetics_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/spatialmodel/kinetics"
	"github.com/spatialmodel/kinetics/science/falloff/lindemann"
	"github.com/spatialmodel/kinetics/science/falloff/sri"
	"github.com/spatialmodel/kinetics/science/falloff/troe"
	"github.com/spatialmodel/kinetics/science/rate/arrhenius"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

const (
	p0 = 101325.
	T0 = 1000.
)

// c0 are the N2, O2 and H2O concentrations used in the tests [kmol/m³].
var c0 = []float64{0.03, 0.008, 0.002}

func testSpecies(t *testing.T) *kinetics.SpeciesTable {
	s, err := kinetics.NewSpeciesTable("N2", "O2", "H2O")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testEfficiencies(t *testing.T) *kinetics.ThirdBodyEfficiencies {
	tbes, err := kinetics.NewThirdBodyEfficiencies(testSpecies(t), []float64{1, 0.8, 6})
	if err != nil {
		t.Fatal(err)
	}
	return tbes
}

var activationFunctions = map[string]kinetics.ActivationFunction{
	"lindemann": lindemann.Function{},
	"troe":      troe.New(0.6, 100, 1000, 5000),
	"sri":       sri.New(1.1, 700, 1200, 0.9, 0.1),
}

// k0 and kInf give a reduced pressure of about 0.1 at T0 and c0.
func testLimits() (k0, kInf *arrhenius.Rate) {
	return arrhenius.New(6e14, -1.2, 200), arrhenius.New(2e10, 0.3, 1000)
}

// scale returns c multiplied by f.
func scale(c []float64, f float64) []float64 {
	o := make([]float64, len(c))
	floats.ScaleTo(o, f, c)
	return o
}

func derivative(f func(float64) float64, x float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    1e-5 * math.Abs(x),
	})
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestChemicallyActivated_rate(t *testing.T) {
	k0, kInf := testLimits()
	tbes := testEfficiencies(t)
	M := tbes.M(c0)
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, tbes)
			k0v := k0.Rate(p0, T0, c0)
			Pr := k0v * M / kInf.Rate(p0, T0, c0)
			want := k0v / (1 + Pr) * f.F(T0, Pr)
			if have := r.Rate(p0, T0, c0); different(have, want, 1e-14) {
				t.Errorf("have %g, want %g", have, want)
			}
		})
	}
}

func TestChemicallyActivated_lowPressureLimit(t *testing.T) {
	k0 := arrhenius.New(1e9, 0, 0)
	kInf := arrhenius.New(1e30, 0, 0)
	r := kinetics.NewChemicallyActivated(k0, kInf, lindemann.Function{}, testEfficiencies(t))
	want := k0.Rate(p0, T0, c0)
	if have := r.Rate(p0, T0, c0); different(have, want, 1e-12) {
		t.Errorf("have %g, want %g", have, want)
	}
}

func TestChemicallyActivated_highPressureLimit(t *testing.T) {
	k0 := arrhenius.New(1e20, 0, 0)
	kInf := arrhenius.New(1e3, 0, 0)
	tbes := testEfficiencies(t)
	r := kinetics.NewChemicallyActivated(k0, kInf, lindemann.Function{}, tbes)
	want := kInf.Rate(p0, T0, c0)
	if have := r.Rate(p0, T0, c0) * tbes.M(c0); different(have, want, 1e-10) {
		t.Errorf("k·M: have %g, want %g", have, want)
	}
}

func TestChemicallyActivated_zeroThirdBody(t *testing.T) {
	k0, kInf := testLimits()
	c := []float64{0, 0, 0}
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, testEfficiencies(t))
			dcidc := []float64{99, 99, 99}
			r.Dcidc(p0, T0, c, dcidc)
			for i, v := range dcidc {
				if v != 0 {
					t.Errorf("dcidc[%d]: have %g, want 0", i, v)
				}
			}
			if v := r.DcidT(p0, T0, c); v != 0 {
				t.Errorf("dcidT: have %g, want 0", v)
			}
			if k := r.Rate(p0, T0, c); math.IsNaN(k) || math.IsInf(k, 0) {
				t.Errorf("rate should be finite but is %g", k)
			}
		})
	}
}

func TestChemicallyActivated_Dcidc(t *testing.T) {
	k0, kInf := testLimits()
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, testEfficiencies(t))
			have := make([]float64, len(c0))
			r.Dcidc(p0, T0, c0, have)
			for i := range c0 {
				lnk := func(x float64) float64 {
					c := append([]float64(nil), c0...)
					c[i] = x
					return math.Log(r.Rate(p0, T0, c))
				}
				want := -derivative(lnk, c0[i])
				if different(have[i], want, 1e-5) {
					t.Errorf("species %d: have %g, want %g", i, have[i], want)
				}
			}
		})
	}
}

func TestChemicallyActivated_DcidT(t *testing.T) {
	k0, kInf := testLimits()
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, testEfficiencies(t))
			// ln(F/(1+Pr)) with the concentrations scaling as 1/T.
			g := func(T float64) float64 {
				c := scale(c0, T0/T)
				return math.Log(r.Rate(p0, T, c)) - math.Log(k0.Rate(p0, T, c))
			}
			want := derivative(g, T0)
			if have := r.DcidT(p0, T0, c0); different(have, want, 1e-5) {
				t.Errorf("have %g, want %g", have, want)
			}
		})
	}
}

func TestChemicallyActivated_DdT(t *testing.T) {
	k0, kInf := testLimits()
	tbes := testEfficiencies(t)
	M := tbes.M(c0)
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, tbes)
			Pr := k0.Rate(p0, T0, c0) * M / kInf.Rate(p0, T0, c0)
			want := f.F(T0, Pr) / (1 + Pr) * k0.DdT(p0, T0, c0)
			if have := r.DdT(p0, T0, c0); different(have, want, 1e-14) {
				t.Errorf("have %g, want %g", have, want)
			}
		})
	}
}

func TestChemicallyActivated_DdT_lowPressure(t *testing.T) {
	k0, kInf := testLimits()
	r := kinetics.NewChemicallyActivated(k0, kInf, lindemann.Function{}, testEfficiencies(t))
	c := scale(c0, 1e-12)
	want := derivative(func(T float64) float64 { return r.Rate(p0, T, c) }, T0)
	if have := r.DdT(p0, T0, c); different(have, want, 1e-6) {
		t.Errorf("have %g, want %g", have, want)
	}
}

func TestChemicallyActivated_fromDict(t *testing.T) {
	species := testSpecies(t)
	dict := kinetics.Dictionary{
		"k0":   map[string]interface{}{"A": 6e14, "beta": -1.2, "Ta": 200.},
		"kInf": map[string]interface{}{"A": 2e10, "beta": 0.3, "Ta": 1000.},
		"F": map[string]interface{}{
			"alpha": 0.6, "Tsss": 100., "Ts": 1000., "Tss": 5000.,
		},
		"thirdBodyEfficiencies": map[string]interface{}{
			"defaultEfficiency": 1.,
			"coeffs":            []interface{}{[]interface{}{"O2", 0.8}, []interface{}{"H2O", 6.}},
		},
	}
	r, err := kinetics.ChemicallyActivatedFromDict(species, dict, arrhenius.FromDict, troe.FromDict)
	if err != nil {
		t.Fatal(err)
	}
	k0, kInf := testLimits()
	want := kinetics.NewChemicallyActivated(k0, kInf, activationFunctions["troe"], testEfficiencies(t)).Rate(p0, T0, c0)
	if have := r.Rate(p0, T0, c0); different(have, want, 1e-14) {
		t.Errorf("have %g, want %g", have, want)
	}

	delete(dict, "kInf")
	if _, err := kinetics.ChemicallyActivatedFromDict(species, dict, arrhenius.FromDict, troe.FromDict); err == nil {
		t.Error("missing kInf should be an error")
	}
}

func TestChemicallyActivated_write(t *testing.T) {
	k0, kInf := testLimits()
	species := testSpecies(t)
	readers := map[string]kinetics.ActivationFunctionReader{
		"lindemann": lindemann.FromDict,
		"troe":      troe.FromDict,
		"sri":       sri.FromDict,
	}
	for name, f := range activationFunctions {
		t.Run(name, func(t *testing.T) {
			r := kinetics.NewChemicallyActivated(k0, kInf, f, testEfficiencies(t))
			b := new(bytes.Buffer)
			if err := r.Write(b, "reaction"); err != nil {
				t.Fatal(err)
			}
			dict, err := kinetics.ReadDictionary(b, "toml")
			if err != nil {
				t.Fatalf("%v\n%s", err, b.String())
			}
			sub, err := dict.SubDict("reaction")
			if err != nil {
				t.Fatal(err)
			}
			r2, err := kinetics.ChemicallyActivatedFromDict(species, sub, arrhenius.FromDict, readers[name])
			if err != nil {
				t.Fatal(err)
			}
			for _, T := range []float64{300, 1000, 2500} {
				want := r.Rate(p0, T, c0)
				if have := r2.Rate(p0, T, c0); have != want {
					t.Errorf("T=%g: have %g, want %g", T, have, want)
				}
			}
			if !floats.Equal(r2.ThirdBodyEfficiencies().Efficiencies(), r.ThirdBodyEfficiencies().Efficiencies()) {
				t.Errorf("efficiencies: have %v, want %v",
					r2.ThirdBodyEfficiencies().Efficiencies(), r.ThirdBodyEfficiencies().Efficiencies())
			}
		})
	}
}
