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

package cht

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/kinetics"
	"gonum.org/v1/gonum/floats"
)

// great is the magnitude used for unset pressure limits.
const great = 1e15

// PressureControl holds the reference level and the limits applied to
// the pressure of a fluid region.
type PressureControl struct {
	refCell  int
	refValue float64

	pMax, pMin           float64
	limitMaxP, limitMinP bool

	// Log receives limit reports.
	Log logrus.FieldLogger
}

// NewPressureControl creates the pressure control for pressure field p and
// density field rho from solution-control dictionary dict. Limit reports
// go to log, or to the logrus standard logger if log is nil.
//
// If pRefRequired is true and p needs a reference level, the reference
// cell and value are read from the "<p>RefCell" and "<p>RefValue" entries
// and initialize both limits.
//
// The maximum pressure is read from "pMax", or computed from "pMaxFactor"
// times the maximum fixed-value boundary pressure, or from "rhoMax" scaled
// by the maximum fixed-value boundary density. The minimum follows the
// same rules with "pMin", "pMinFactor" and "rhoMin". If both "pMax" and
// "pMin" are given, the boundary values are not consulted.
func NewPressureControl(p, rho *VolScalarField, dict kinetics.Dictionary, pRefRequired bool, log logrus.FieldLogger) (*PressureControl, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	pc := &PressureControl{
		refCell: -1,
		pMax:    -great,
		pMin:    great,
		Log:     log,
	}

	var pLimits bool
	if pRefRequired {
		ok, err := pc.setRefCell(p, dict)
		if err != nil {
			return nil, err
		}
		if ok {
			pLimits = true
			pc.pMax = pc.refValue
			pc.pMin = pc.refValue
		}
	}

	if dict.Found("pMax") && dict.Found("pMin") {
		var err error
		if pc.pMax, err = dict.Scalar("pMax"); err != nil {
			return nil, fmt.Errorf("cht: pressure control for %s: %w", p.Name, err)
		}
		if pc.pMin, err = dict.Scalar("pMin"); err != nil {
			return nil, fmt.Errorf("cht: pressure control for %s: %w", p.Name, err)
		}
		pc.limitMaxP, pc.limitMinP = true, true
	} else {
		rhoRefMax, rhoRefMin := -great, great
		var rhoLimits bool
		for _, patch := range p.Boundary {
			if !patch.FixesValue || len(patch.Values) == 0 {
				continue
			}
			pLimits = true
			pc.pMax = math.Max(pc.pMax, floats.Max(patch.Values))
			pc.pMin = math.Min(pc.pMin, floats.Min(patch.Values))
			if rhoPatch := rho.patch(patch.Name); rhoPatch != nil && len(rhoPatch.Values) > 0 {
				rhoLimits = true
				rhoRefMax = math.Max(rhoRefMax, floats.Max(rhoPatch.Values))
				rhoRefMin = math.Min(rhoRefMin, floats.Min(rhoPatch.Values))
			}
		}

		var err error
		pc.pMax, pc.limitMaxP, err = readLimit(dict, p.Name, "pMax", "pMaxFactor", "rhoMax", pc.pMax, rhoRefMax, pLimits, rhoLimits)
		if err != nil {
			return nil, err
		}
		pc.pMin, pc.limitMinP, err = readLimit(dict, p.Name, "pMin", "pMinFactor", "rhoMin", pc.pMin, rhoRefMin, pLimits, rhoLimits)
		if err != nil {
			return nil, err
		}
	}

	if pc.limitMaxP || pc.limitMinP {
		fields := logrus.Fields{"field": p.Name}
		if pc.limitMaxP {
			fields["pMax"] = pc.pMax
		}
		if pc.limitMinP {
			fields["pMin"] = pc.pMin
		}
		pc.Log.WithFields(fields).Info("pressureControl")
	}
	return pc, nil
}

// readLimit reads one pressure limit. The limit is given directly by
// pName, as factorName times the boundary pressure pRef, or as rhoName
// scaled by the boundary density rhoRef.
func readLimit(dict kinetics.Dictionary, field, pName, factorName, rhoName string, pRef, rhoRef float64, pLimits, rhoLimits bool) (float64, bool, error) {
	switch {
	case dict.Found(pName):
		v, err := dict.Scalar(pName)
		if err != nil {
			return 0, false, fmt.Errorf("cht: pressure control for %s: %w", field, err)
		}
		return v, true, nil
	case dict.Found(factorName):
		if !pLimits {
			return 0, false, fmt.Errorf("cht: pressure control for %s: '%s' specified rather than '%s'; "+
				"%s can only be used when there are fixed-value pressure boundaries", field, factorName, pName, factorName)
		}
		factor, err := dict.Scalar(factorName)
		if err != nil {
			return 0, false, fmt.Errorf("cht: pressure control for %s: %w", field, err)
		}
		return pRef * factor, true, nil
	case dict.Found(rhoName):
		if !rhoLimits {
			return 0, false, fmt.Errorf("cht: pressure control for %s: '%s' specified rather than '%s'; "+
				"%s can only be used when there are fixed-value pressure boundaries", field, rhoName, pName, rhoName)
		}
		rhoLimit, err := dict.Scalar(rhoName)
		if err != nil {
			return 0, false, fmt.Errorf("cht: pressure control for %s: %w", field, err)
		}
		return pRef * rhoLimit / rhoRef, true, nil
	}
	return pRef, false, nil
}

// setRefCell sets the reference cell and value if p needs a reference level.
func (pc *PressureControl) setRefCell(p *VolScalarField, dict kinetics.Dictionary) (bool, error) {
	if !p.NeedReference() {
		return false, nil
	}
	refCellName := p.Name + "RefCell"
	refValueName := p.Name + "RefValue"
	if !dict.Found(refCellName) {
		return false, fmt.Errorf("cht: unable to set reference cell for field %s; please supply %s", p.Name, refCellName)
	}
	cell, err := dict.Int(refCellName)
	if err != nil {
		return false, fmt.Errorf("cht: %w", err)
	}
	if cell < 0 || cell >= len(p.Internal) {
		return false, fmt.Errorf("cht: illegal master cell index %d for field %s; should be between 0 and %d",
			cell, p.Name, len(p.Internal)-1)
	}
	value, err := dict.Scalar(refValueName)
	if err != nil {
		return false, fmt.Errorf("cht: %w", err)
	}
	pc.refCell, pc.refValue = cell, value
	return true, nil
}

// Limit clips p to the active limits and corrects its boundary
// conditions. Fixed-value patches keep their values. It returns false if
// no limit is active.
func (pc *PressureControl) Limit(p *VolScalarField) bool {
	if !pc.limitMaxP && !pc.limitMinP {
		return false
	}
	if pc.limitMaxP {
		if pMax := p.max(false); pMax > pc.pMax {
			pc.Log.WithFields(logrus.Fields{"field": p.Name, "max": pMax}).Info("pressureControl: limiting maximum")
			p.apply(func(v float64) float64 { return math.Min(v, pc.pMax) })
		}
	}
	if pc.limitMinP {
		if pMin := p.min(false); pMin < pc.pMin {
			pc.Log.WithFields(logrus.Fields{"field": p.Name, "min": pMin}).Info("pressureControl: limiting minimum")
			p.apply(func(v float64) float64 { return math.Max(v, pc.pMin) })
		}
	}
	p.CorrectBoundaryConditions()
	return true
}

// RefCell returns the reference cell index, or -1 if there is none.
func (pc *PressureControl) RefCell() int { return pc.refCell }

// RefValue returns the reference pressure.
func (pc *PressureControl) RefValue() float64 { return pc.refValue }

// PMax returns the maximum pressure limit.
func (pc *PressureControl) PMax() float64 { return pc.pMax }

// PMin returns the minimum pressure limit.
func (pc *PressureControl) PMin() float64 { return pc.pMin }

// LimitMaxP returns whether the maximum pressure is limited.
func (pc *PressureControl) LimitMaxP() bool { return pc.limitMaxP }

// LimitMinP returns whether the minimum pressure is limited.
func (pc *PressureControl) LimitMinP() bool { return pc.limitMinP }
