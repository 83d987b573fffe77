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

	"github.com/sirupsen/logrus"
)

// Names of the fields a fluid region must provide for pressure control.
const (
	PressureField = "p_rgh"
	DensityField  = "rho"
)

// CreateFluidPressureControls creates one pressure control per fluid
// region, in region order, from each region's p_rgh and rho fields and
// PIMPLE controls. Fluid regions are not treated as closed volumes, so no
// reference pressure is set. If the control of any region cannot be
// created, no controls are returned. The controls log to log, or to the
// logrus standard logger if log is nil.
func CreateFluidPressureControls(regions []*Region, controls *SolutionControls, log logrus.FieldLogger) ([]*PressureControl, error) {
	if controls.Len() != len(regions) {
		return nil, fmt.Errorf("cht: there are %d fluid regions but solution controls for %d",
			len(regions), controls.Len())
	}
	pcs := make([]*PressureControl, len(regions))
	for i, r := range regions {
		p, err := r.Lookup(PressureField)
		if err != nil {
			return nil, err
		}
		rho, err := r.Lookup(DensityField)
		if err != nil {
			return nil, err
		}
		if pcs[i], err = NewPressureControl(p, rho, controls.Dict(i), false, log); err != nil {
			return nil, fmt.Errorf("region %s: %w", r.Name, err)
		}
	}
	return pcs, nil
}
