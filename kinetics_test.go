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
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/spatialmodel/kinetics"
	"github.com/spatialmodel/kinetics/science/rate/arrhenius"
	"gonum.org/v1/gonum/floats"
)

func TestSpeciesTable(t *testing.T) {
	s := testSpecies(t)
	if s.Len() != 3 {
		t.Errorf("length: have %d, want 3", s.Len())
	}
	i, err := s.Index("O2")
	if err != nil {
		t.Fatal(err)
	}
	if i != 1 || s.Name(i) != "O2" {
		t.Errorf("have %d (%s), want 1 (O2)", i, s.Name(i))
	}
	if _, err := s.Index("CO2"); err == nil {
		t.Error("unknown species should be an error")
	}
	names := s.Names()
	names[0] = "xxx"
	if s.Name(0) != "N2" {
		t.Error("Names should return a copy")
	}
	if _, err := kinetics.NewSpeciesTable("N2", "N2"); err == nil {
		t.Error("duplicate species should be an error")
	}
	if _, err := kinetics.NewSpeciesTable("N2", ""); err == nil {
		t.Error("empty species name should be an error")
	}
}

func TestThirdBodyEfficienciesFromDict(t *testing.T) {
	species := testSpecies(t)
	tests := []struct {
		name string
		dict kinetics.Dictionary
		want []float64
		err  bool
	}{
		{
			name: "default",
			dict: kinetics.Dictionary{"defaultEfficiency": 1.5},
			want: []float64{1.5, 1.5, 1.5},
		},
		{
			name: "default with coeffs",
			dict: kinetics.Dictionary{
				"defaultEfficiency": 1,
				"coeffs":            []interface{}{[]interface{}{"H2O", 6.}},
			},
			want: []float64{1, 1, 6},
		},
		{
			name: "all coeffs",
			dict: kinetics.Dictionary{
				"coeffs": []interface{}{
					[]interface{}{"H2O", 6.}, []interface{}{"N2", 1.}, []interface{}{"O2", "0.8"},
				},
			},
			want: []float64{1, 0.8, 6},
		},
		{
			name: "missing coeffs",
			dict: kinetics.Dictionary{
				"coeffs": []interface{}{[]interface{}{"H2O", 6.}},
			},
			err: true,
		},
		{
			name: "empty",
			dict: kinetics.Dictionary{},
			err:  true,
		},
		{
			name: "unknown species",
			dict: kinetics.Dictionary{
				"defaultEfficiency": 1,
				"coeffs":            []interface{}{[]interface{}{"CO2", 2.}},
			},
			err: true,
		},
		{
			name: "bad pair",
			dict: kinetics.Dictionary{
				"defaultEfficiency": 1,
				"coeffs":            []interface{}{[]interface{}{"H2O", 2., 3.}},
			},
			err: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tbes, err := kinetics.ThirdBodyEfficienciesFromDict(species, test.dict)
			if test.err {
				if err == nil {
					t.Error("should be an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if have := tbes.Efficiencies(); !floats.Equal(have, test.want) {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestThirdBodyEfficiencies_M(t *testing.T) {
	tbes := testEfficiencies(t)
	const want = 0.03 + 0.8*0.008 + 6*0.002
	if have := tbes.M(c0); different(have, want, 1e-15) {
		t.Errorf("have %g, want %g", have, want)
	}
	if _, err := kinetics.NewThirdBodyEfficiencies(testSpecies(t), []float64{1, 2}); err == nil {
		t.Error("wrong number of efficiencies should be an error")
	}
}

func TestThirdBodyEfficiencies_write(t *testing.T) {
	tbes := testEfficiencies(t)
	b := new(bytes.Buffer)
	if err := tbes.Write(b, "tbes"); err != nil {
		t.Fatal(err)
	}
	dict, err := kinetics.ReadDictionary(b, "toml")
	if err != nil {
		t.Fatal(err)
	}
	sub, err := dict.SubDict("tbes")
	if err != nil {
		t.Fatal(err)
	}
	tbes2, err := kinetics.ThirdBodyEfficienciesFromDict(testSpecies(t), sub)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := tbes2.Efficiencies(), tbes.Efficiencies(); !floats.Equal(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestReadDictionary(t *testing.T) {
	const tomlDict = `
name = "x"
n = 3

[sub]
a = 1.5

[[list]]
b = 2.0

[[list]]
b = 3.0
`
	const yamlDict = `
name: x
n: 3
sub:
  a: 1.5
list:
  - b: 2.0
  - b: 3.0
`
	for format, s := range map[string]string{"toml": tomlDict, "yaml": yamlDict} {
		t.Run(format, func(t *testing.T) {
			d, err := kinetics.ReadDictionary(strings.NewReader(s), format)
			if err != nil {
				t.Fatal(err)
			}
			if name, err := d.Word("name"); err != nil || name != "x" {
				t.Errorf("name: have %q (%v), want x", name, err)
			}
			if n, err := d.Int("n"); err != nil || n != 3 {
				t.Errorf("n: have %d (%v), want 3", n, err)
			}
			sub, err := d.SubDict("sub")
			if err != nil {
				t.Fatal(err)
			}
			if a, err := sub.Scalar("a"); err != nil || a != 1.5 {
				t.Errorf("a: have %g (%v), want 1.5", a, err)
			}
			if z, err := sub.ScalarOrDefault("z", 7); err != nil || z != 7 {
				t.Errorf("z: have %g (%v), want 7", z, err)
			}
			list, err := d.Dictionaries("list")
			if err != nil {
				t.Fatal(err)
			}
			if len(list) != 2 {
				t.Fatalf("list length: have %d, want 2", len(list))
			}
			if b, err := list[1].Scalar("b"); err != nil || b != 3 {
				t.Errorf("b: have %g (%v), want 3", b, err)
			}
			if _, err := d.Scalar("missing"); !errors.Is(err, kinetics.ErrNotFound) {
				t.Errorf("have %v, want ErrNotFound", err)
			}
			if _, err := d.SubDict("name"); err == nil {
				t.Error("a word is not a dictionary")
			}
			empty, err := d.SubDictOrEmpty("missing")
			if err != nil || len(empty) != 0 {
				t.Errorf("have %v (%v), want empty dictionary", empty, err)
			}
		})
	}
	if _, err := kinetics.ReadDictionary(strings.NewReader(""), "json"); err == nil {
		t.Error("unsupported format should be an error")
	}
}

func TestDictionaryFromStrings(t *testing.T) {
	d := kinetics.DictionaryFromStrings(map[string]string{"pMax": "1e5"})
	if v, err := d.Scalar("pMax"); err != nil || v != 1e5 {
		t.Errorf("have %g (%v), want 1e5", v, err)
	}
	if keys := d.Keys(); len(keys) != 1 || keys[0] != "pMax" {
		t.Errorf("keys: have %v", keys)
	}
}

func TestCalculations(t *testing.T) {
	k0, kInf := testLimits()
	r := kinetics.NewChemicallyActivated(k0, kInf, activationFunctions["troe"], testEfficiencies(t))
	cells := make([]*kinetics.Cell, 101)
	for i := range cells {
		cells[i] = &kinetics.Cell{P: p0, T: 300 + 20*float64(i), C: c0}
	}
	var mu sync.Mutex
	visits := make(map[*kinetics.Cell]int)
	count := func(c *kinetics.Cell) {
		mu.Lock()
		visits[c]++
		mu.Unlock()
	}
	kinetics.Calculations(cells, kinetics.RateEvaluator(r), count)
	dcidc := make([]float64, len(c0))
	for i, c := range cells {
		if visits[c] != 1 {
			t.Errorf("cell %d visited %d times", i, visits[c])
		}
		if want := r.Rate(c.P, c.T, c.C); c.K != want {
			t.Errorf("cell %d k: have %g, want %g", i, c.K, want)
		}
		if want := r.DdT(c.P, c.T, c.C); c.DkdT != want {
			t.Errorf("cell %d dk/dT: have %g, want %g", i, c.DkdT, want)
		}
		if want := r.DcidT(c.P, c.T, c.C); c.DcidT != want {
			t.Errorf("cell %d dcidT: have %g, want %g", i, c.DcidT, want)
		}
		r.Dcidc(c.P, c.T, c.C, dcidc)
		if !floats.Equal(c.Dcidc, dcidc) {
			t.Errorf("cell %d dcidc: have %v, want %v", i, c.Dcidc, dcidc)
		}
	}
}

func TestRateEvaluator_elementary(t *testing.T) {
	k := arrhenius.New(1e10, 0.5, 3000)
	c := &kinetics.Cell{P: p0, T: T0, C: c0}
	kinetics.RateEvaluator(k)(c)
	if want := k.Rate(p0, T0, c0); c.K != want {
		t.Errorf("have %g, want %g", c.K, want)
	}
	if c.Dcidc != nil {
		t.Errorf("elementary rate should not set dcidc: %v", c.Dcidc)
	}
}
