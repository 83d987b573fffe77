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

package arrhenius

import (
	"bytes"
	"math"
	"testing"

	"github.com/spatialmodel/kinetics"
	"gonum.org/v1/gonum/diff/fd"
)

func TestRate(t *testing.T) {
	r := New(1.2e10, 0.5, 3000)
	for _, T := range []float64{300, 1000, 2000} {
		want := 1.2e10 * math.Sqrt(T) * math.Exp(-3000/T)
		if have := r.Rate(0, T, nil); different(have, want, 1e-14) {
			t.Errorf("T=%g: have %g, want %g", T, have, want)
		}
	}
	if have := New(7, 0, 0).Rate(0, 500, nil); have != 7 {
		t.Errorf("constant rate: have %g, want 7", have)
	}
}

func TestDdT(t *testing.T) {
	for _, r := range []*Rate{New(1.2e10, 0.5, 3000), New(6e14, -1.2, -200), New(3, 0, 0)} {
		for _, T := range []float64{300, 1000, 2000} {
			want := fd.Derivative(func(T float64) float64 { return r.Rate(0, T, nil) }, T,
				&fd.Settings{Formula: fd.Central, Step: 1e-5 * T})
			have := r.DdT(0, T, nil)
			if want == 0 {
				if math.Abs(have) > 1e-12 {
					t.Errorf("%+v T=%g: have %g, want 0", r, T, have)
				}
				continue
			}
			if different(have, want, 1e-6) {
				t.Errorf("%+v T=%g: have %g, want %g", r, T, have, want)
			}
		}
	}
}

func TestFromDict(t *testing.T) {
	r, err := FromDict(nil, kinetics.Dictionary{"A": 1e10, "beta": "0.5", "Ta": 3000})
	if err != nil {
		t.Fatal(err)
	}
	if want := New(1e10, 0.5, 3000); *r.(*Rate) != *want {
		t.Errorf("have %+v, want %+v", r, want)
	}
	if _, err := FromDict(nil, kinetics.Dictionary{"A": 1e10, "beta": 0.5}); err == nil {
		t.Error("missing Ta should be an error")
	}
}

func TestWrite(t *testing.T) {
	r := New(1.2345678901234567e10, -0.5, 3000.5)
	b := new(bytes.Buffer)
	if err := r.Write(b, "k"); err != nil {
		t.Fatal(err)
	}
	dict, err := kinetics.ReadDictionary(b, "toml")
	if err != nil {
		t.Fatal(err)
	}
	sub, err := dict.SubDict("k")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FromDict(nil, sub)
	if err != nil {
		t.Fatal(err)
	}
	if *r2.(*Rate) != *r {
		t.Errorf("have %+v, want %+v", r2, r)
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
