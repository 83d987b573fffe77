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
	"runtime"
	"sync"
)

// Cell holds the thermodynamic state of a single computational cell
// and the reaction rate quantities evaluated there.
type Cell struct {
	P float64   // pressure [Pa]
	T float64   // temperature [K]
	C []float64 // species concentrations [kmol/m³]

	K     float64   // rate coefficient
	DkdT  float64   // rate coefficient temperature derivative
	DcidT float64   // third-body temperature derivative term
	Dcidc []float64 // third-body concentration derivative terms
}

// CellManipulator performs a calculation on a single cell.
type CellManipulator func(c *Cell)

// Calculations concurrently runs a series of calculations on all of
// the given cells. Each cell is handled by exactly one goroutine, so
// manipulators may modify the cell they are given without locking.
func Calculations(cells []*Cell, calculators ...CellManipulator) {
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for ii := pp; ii < len(cells); ii += nprocs {
				c := cells[ii]
				for _, f := range calculators {
					f(c)
				}
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
}

// RateEvaluator returns a function that evaluates r and its temperature
// derivative in a cell. If r is pressure dependent, the third-body
// derivative terms are evaluated as well.
func RateEvaluator(r RateLaw) CellManipulator {
	pd, pressureDependent := r.(PressureDependentRate)
	return func(c *Cell) {
		c.K = r.Rate(c.P, c.T, c.C)
		c.DkdT = r.DdT(c.P, c.T, c.C)
		if !pressureDependent {
			return
		}
		if len(c.Dcidc) != len(c.C) {
			c.Dcidc = make([]float64, len(c.C))
		}
		pd.Dcidc(c.P, c.T, c.C, c.Dcidc)
		c.DcidT = pd.DcidT(c.P, c.T, c.C)
	}
}
