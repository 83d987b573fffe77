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

// Package troe contains the Troe blending function for pressure-dependent
// reactions.
package troe

import (
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/kinetics"
)

const d = 0.14

// Function fulfils the github.com/spatialmodel/kinetics.ActivationFunction
// interface. The broadening factor at the center of the falloff curve is
// Fcent = (1-α)·exp(-T/T***) + α·exp(-T/T*) + exp(-T**/T).
type Function struct {
	Alpha float64 `toml:"alpha"`
	Tsss  float64 `toml:"Tsss"` // T***
	Ts    float64 `toml:"Ts"`   // T*
	Tss   float64 `toml:"Tss"`  // T**
}

// New returns a new Troe function.
func New(alpha, Tsss, Ts, Tss float64) *Function {
	return &Function{Alpha: alpha, Tsss: Tsss, Ts: Ts, Tss: Tss}
}

// FromDict reads a Troe function from the "alpha", "Tsss", "Ts" and "Tss"
// entries of dict. It fulfils kinetics.ActivationFunctionReader.
func FromDict(dict kinetics.Dictionary) (kinetics.ActivationFunction, error) {
	var f Function
	for _, v := range []struct {
		name string
		dst  *float64
	}{
		{"alpha", &f.Alpha}, {"Tsss", &f.Tsss}, {"Ts", &f.Ts}, {"Tss", &f.Tss},
	} {
		x, err := dict.Scalar(v.name)
		if err != nil {
			return nil, fmt.Errorf("troe: %w", err)
		}
		*v.dst = x
	}
	return &f, nil
}

func (f *Function) fcent(T float64) (Fcent, dFcentdT float64) {
	e1 := math.Exp(-T / f.Tsss)
	e2 := math.Exp(-T / f.Ts)
	e3 := math.Exp(-f.Tss / T)
	Fcent = (1-f.Alpha)*e1 + f.Alpha*e2 + e3
	dFcentdT = -(1-f.Alpha)/f.Tsss*e1 - f.Alpha/f.Ts*e2 + f.Tss/(T*T)*e3
	return
}

// shape returns log10(Fcent), c and n.
func shape(Fcent float64) (logFcent, c, n float64) {
	logFcent = math.Log10(math.Max(Fcent, kinetics.Small))
	c = -0.4 - 0.67*logFcent
	n = 0.75 - 1.27*logFcent
	return
}

// F returns the blending factor.
func (f *Function) F(T, Pr float64) float64 {
	Fcent, _ := f.fcent(T)
	logFcent, c, n := shape(Fcent)
	logPr := math.Log10(math.Max(Pr, kinetics.Small))
	X := (logPr + c) / (n - d*(logPr+c))
	return math.Pow(10, logFcent/(1+X*X))
}

// dF returns the derivative of F given the derivatives of log10(Fcent)
// and log10(Pr) with respect to the same variable.
func dF(Pr, F, logFcent, c, n, dlogFcent, dlogPr float64) float64 {
	logPr := math.Log10(math.Max(Pr, kinetics.Small))
	u := logPr + c
	v := n - d*u
	X := u / v
	du := dlogPr - 0.67*dlogFcent
	dv := -1.27*dlogFcent - d*du
	dX := (du*v - u*dv) / (v * v)
	onePlusX2 := 1 + X*X
	dlogF := dlogFcent/onePlusX2 - logFcent*2*X*dX/(onePlusX2*onePlusX2)
	return F * math.Ln10 * dlogF
}

func dlog10(x, dx float64) float64 {
	if x > kinetics.Small {
		return dx / (x * math.Ln10)
	}
	return 0
}

// DdT returns dF/dT, including the explicit temperature dependence of
// Fcent and the dependence through Pr.
func (f *Function) DdT(Pr, F, dPrdT, T float64) float64 {
	Fcent, dFcentdT := f.fcent(T)
	logFcent, c, n := shape(Fcent)
	return dF(Pr, F, logFcent, c, n, dlog10(Fcent, dFcentdT), dlog10(Pr, dPrdT))
}

// Ddc returns dF/dc through the dependence of Pr on concentration.
func (f *Function) Ddc(Pr, F, dPrdc, T float64) float64 {
	Fcent, _ := f.fcent(T)
	logFcent, c, n := shape(Fcent)
	return dF(Pr, F, logFcent, c, n, 0, dlog10(Pr, dPrdc))
}

// Write writes the function parameters as the TOML table named table.
func (f *Function) Write(w io.Writer, table string) error {
	return kinetics.WriteTable(w, table, f)
}
