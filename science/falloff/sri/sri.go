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

// Package sri contains the Stanford Research Institute (SRI) blending
// function for pressure-dependent reactions,
// F = d·(a·exp(-b/T) + exp(-T/c))^X·T^e with X = 1/(1 + log10(Pr)²).
package sri

import (
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/kinetics"
)

// Function fulfils the github.com/spatialmodel/kinetics.ActivationFunction
// interface.
type Function struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
	D float64 `toml:"d"`
	E float64 `toml:"e"`
}

// New returns a new SRI function.
func New(a, b, c, d, e float64) *Function {
	return &Function{A: a, B: b, C: c, D: d, E: e}
}

// FromDict reads an SRI function from the "a" through "e" entries of dict.
// It fulfils kinetics.ActivationFunctionReader.
func FromDict(dict kinetics.Dictionary) (kinetics.ActivationFunction, error) {
	var f Function
	for _, v := range []struct {
		name string
		dst  *float64
	}{
		{"a", &f.A}, {"b", &f.B}, {"c", &f.C}, {"d", &f.D}, {"e", &f.E},
	} {
		x, err := dict.Scalar(v.name)
		if err != nil {
			return nil, fmt.Errorf("sri: %w", err)
		}
		*v.dst = x
	}
	return &f, nil
}

func (f *Function) x(Pr float64) (X, logPr float64) {
	logPr = math.Log10(math.Max(Pr, kinetics.Small))
	return 1 / (1 + logPr*logPr), logPr
}

func (f *Function) y(T float64) (Y, dYdT float64) {
	e1 := f.A * math.Exp(-f.B/T)
	e2 := math.Exp(-T / f.C)
	return e1 + e2, e1*f.B/(T*T) - e2/f.C
}

// dX returns the derivative of X given the derivative of Pr.
func dX(Pr, X, logPr, dPr float64) float64 {
	if Pr <= kinetics.Small {
		return 0
	}
	dlogPr := dPr / (Pr * math.Ln10)
	return -X * X * 2 * logPr * dlogPr
}

// F returns the blending factor.
func (f *Function) F(T, Pr float64) float64 {
	X, _ := f.x(Pr)
	Y, _ := f.y(T)
	return f.D * math.Pow(Y, X) * math.Pow(T, f.E)
}

// DdT returns dF/dT, including the explicit temperature dependence and
// the dependence through Pr.
func (f *Function) DdT(Pr, F, dPrdT, T float64) float64 {
	X, logPr := f.x(Pr)
	Y, dYdT := f.y(T)
	return F * (dX(Pr, X, logPr, dPrdT)*math.Log(Y) + X*dYdT/Y + f.E/T)
}

// Ddc returns dF/dc through the dependence of Pr on concentration.
func (f *Function) Ddc(Pr, F, dPrdc, T float64) float64 {
	X, logPr := f.x(Pr)
	Y, _ := f.y(T)
	return F * dX(Pr, X, logPr, dPrdc) * math.Log(Y)
}

// Write writes the function parameters as the TOML table named table.
func (f *Function) Write(w io.Writer, table string) error {
	return kinetics.WriteTable(w, table, f)
}
