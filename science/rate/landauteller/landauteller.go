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

// Package landauteller contains the Landau-Teller rate expression for
// vibrational relaxation reactions,
// k = A·T^β·exp(-Ta/T)·exp(B/T^(1/3) + C/T^(2/3)).
package landauteller

import (
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/kinetics"
)

// Rate fulfils the github.com/spatialmodel/kinetics.RateLaw interface.
type Rate struct {
	A    float64 `toml:"A"`
	Beta float64 `toml:"beta"`
	Ta   float64 `toml:"Ta"`
	B    float64 `toml:"B"`
	C    float64 `toml:"C"`
}

// New returns a new Landau-Teller rate.
func New(A, beta, Ta, B, C float64) *Rate {
	return &Rate{A: A, Beta: beta, Ta: Ta, B: B, C: C}
}

// FromDict reads a Landau-Teller rate from the "A", "beta", "Ta", "B"
// and "C" entries of dict. It fulfils kinetics.RateLawReader.
func FromDict(_ *kinetics.SpeciesTable, dict kinetics.Dictionary) (kinetics.RateLaw, error) {
	var r Rate
	for _, v := range []struct {
		name string
		dst  *float64
	}{
		{"A", &r.A}, {"beta", &r.Beta}, {"Ta", &r.Ta}, {"B", &r.B}, {"C", &r.C},
	} {
		x, err := dict.Scalar(v.name)
		if err != nil {
			return nil, fmt.Errorf("landauteller: %w", err)
		}
		*v.dst = x
	}
	return &r, nil
}

// Rate returns the rate coefficient at temperature T.
func (r *Rate) Rate(p, T float64, c []float64) float64 {
	lta := r.A
	if math.Abs(r.Beta) > kinetics.VSmall {
		lta *= math.Pow(T, r.Beta)
	}
	expArg := 0.
	if math.Abs(r.Ta) > kinetics.VSmall {
		expArg -= r.Ta / T
	}
	if math.Abs(r.B) > kinetics.VSmall {
		expArg += r.B / math.Cbrt(T)
	}
	if math.Abs(r.C) > kinetics.VSmall {
		expArg += r.C / math.Pow(T, 2./3)
	}
	if expArg != 0 {
		lta *= math.Exp(expArg)
	}
	return lta
}

// DdT returns k·(β + Ta/T - B/(3T^(1/3)) - 2C/(3T^(2/3)))/T.
func (r *Rate) DdT(p, T float64, c []float64) float64 {
	return r.Rate(p, T, c) *
		(r.Beta + r.Ta/T - r.B/(3*math.Cbrt(T)) - 2*r.C/(3*math.Pow(T, 2./3))) / T
}

// Write writes the rate parameters as the TOML table named table.
func (r *Rate) Write(w io.Writer, table string) error {
	return kinetics.WriteTable(w, table, r)
}
