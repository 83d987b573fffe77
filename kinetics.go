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

// Package kinetics contains reaction rate expressions for gas-phase
// chemistry, including the pressure-dependent falloff and chemically
// activated forms that blend a low-pressure and a high-pressure limit.
package kinetics

import "io"

// Numerical thresholds.
const (
	// Small is the effective-concentration threshold below which
	// pressure-dependent derivatives are taken to be zero.
	Small = 1e-15

	// VSmall is the magnitude below which rate parameters are treated as zero.
	VSmall = 1e-300
)

// RateLaw is a reaction rate coefficient expression k(p, T, c).
// Implementations must be safe for concurrent use.
type RateLaw interface {
	// Rate returns the rate coefficient at pressure p [Pa],
	// temperature T [K] and species concentrations c [kmol/m³].
	Rate(p, T float64, c []float64) float64

	// DdT returns the derivative of the rate coefficient with respect to T.
	DdT(p, T float64, c []float64) float64

	// Write writes the rate parameters as the TOML table named table.
	Write(w io.Writer, table string) error
}

// PressureDependentRate is a rate law whose value depends on the
// third-body-weighted concentration of the mixture.
type PressureDependentRate interface {
	RateLaw

	// Dcidc sets dcidc[i] to the concentration derivative term for
	// third-body species i. dcidc must have one entry per species.
	Dcidc(p, T float64, c []float64, dcidc []float64)

	// DcidT returns the temperature derivative term of the
	// third-body contribution.
	DcidT(p, T float64, c []float64) float64

	// ThirdBodyEfficiencies returns the collision efficiencies of the rate.
	ThirdBodyEfficiencies() *ThirdBodyEfficiencies
}

// ActivationFunction is a blending function F(T, Pr) that bridges the
// low- and high-pressure limits of a pressure-dependent rate.
// Implementations must be safe for concurrent use.
type ActivationFunction interface {
	// F returns the blending factor at temperature T and reduced pressure Pr.
	F(T, Pr float64) float64

	// DdT returns dF/dT given the current blending factor F and dPr/dT.
	DdT(Pr, F, dPrdT, T float64) float64

	// Ddc returns dF/dc given the current blending factor F and dPr/dc.
	Ddc(Pr, F, dPrdc, T float64) float64

	// Write writes the function parameters as the TOML table named table.
	Write(w io.Writer, table string) error
}

// RateLawReader creates a rate law from a dictionary.
type RateLawReader func(species *SpeciesTable, dict Dictionary) (RateLaw, error)

// ActivationFunctionReader creates an activation function from a dictionary.
type ActivationFunctionReader func(dict Dictionary) (ActivationFunction, error)

// Version gives the version number.
const Version = "1.0.0"
