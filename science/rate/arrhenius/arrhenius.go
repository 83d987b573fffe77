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

// Package arrhenius contains the modified Arrhenius rate expression
// k = A·T^β·exp(-Ta/T).
package arrhenius

import (
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/kinetics"
)

// Rate fulfils the github.com/spatialmodel/kinetics.RateLaw interface.
type Rate struct {
	A    float64 `toml:"A"`    // pre-exponential factor
	Beta float64 `toml:"beta"` // temperature exponent
	Ta   float64 `toml:"Ta"`   // activation temperature [K]
}

// New returns a new Arrhenius rate.
func New(A, beta, Ta float64) *Rate {
	return &Rate{A: A, Beta: beta, Ta: Ta}
}

// FromDict reads an Arrhenius rate from the "A", "beta" and "Ta"
// entries of dict. It fulfils kinetics.RateLawReader.
func FromDict(_ *kinetics.SpeciesTable, dict kinetics.Dictionary) (kinetics.RateLaw, error) {
	var r Rate
	var err error
	if r.A, err = dict.Scalar("A"); err != nil {
		return nil, fmt.Errorf("arrhenius: %w", err)
	}
	if r.Beta, err = dict.Scalar("beta"); err != nil {
		return nil, fmt.Errorf("arrhenius: %w", err)
	}
	if r.Ta, err = dict.Scalar("Ta"); err != nil {
		return nil, fmt.Errorf("arrhenius: %w", err)
	}
	return &r, nil
}

// Rate returns the rate coefficient at temperature T.
func (r *Rate) Rate(p, T float64, c []float64) float64 {
	ak := r.A
	if math.Abs(r.Beta) > kinetics.VSmall {
		ak *= math.Pow(T, r.Beta)
	}
	if math.Abs(r.Ta) > kinetics.VSmall {
		ak *= math.Exp(-r.Ta / T)
	}
	return ak
}

// DdT returns k·(β + Ta/T)/T.
func (r *Rate) DdT(p, T float64, c []float64) float64 {
	return r.Rate(p, T, c) * (r.Beta + r.Ta/T) / T
}

// Write writes the rate parameters as the TOML table named table.
func (r *Rate) Write(w io.Writer, table string) error {
	return kinetics.WriteTable(w, table, r)
}
