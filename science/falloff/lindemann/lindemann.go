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

// Package lindemann contains the Lindemann blending function, F = 1.
package lindemann

import (
	"io"

	"github.com/spatialmodel/kinetics"
)

// Function fulfils the github.com/spatialmodel/kinetics.ActivationFunction
// interface.
type Function struct{}

// FromDict returns a Lindemann function; it has no parameters.
// It fulfils kinetics.ActivationFunctionReader.
func FromDict(kinetics.Dictionary) (kinetics.ActivationFunction, error) {
	return Function{}, nil
}

// F returns 1.
func (Function) F(T, Pr float64) float64 { return 1 }

// DdT returns 0.
func (Function) DdT(Pr, F, dPrdT, T float64) float64 { return 0 }

// Ddc returns 0.
func (Function) Ddc(Pr, F, dPrdc, T float64) float64 { return 0 }

// Write writes an empty table named table.
func (Function) Write(w io.Writer, table string) error {
	return kinetics.WriteTable(w, table, struct{}{})
}
