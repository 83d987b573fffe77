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

	"github.com/spatialmodel/kinetics"
	"gopkg.in/ini.v1"
)

// pimpleSection is the INI section holding the PIMPLE controls shared by
// all regions. Region-specific controls are in sections named
// "PIMPLE.<region>" and override the shared ones.
const pimpleSection = "PIMPLE"

// SolutionControls holds the PIMPLE solution-control dictionary of each
// fluid region, in region order.
type SolutionControls struct {
	regions []string
	dicts   []kinetics.Dictionary
}

// LoadSolutionControls reads the PIMPLE controls of the named regions
// from an INI file.
func LoadSolutionControls(path string, regions []string) (*SolutionControls, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cht: reading solution controls: %w", err)
	}
	return NewSolutionControls(f, regions)
}

// NewSolutionControls extracts the PIMPLE controls of the named regions
// from f. Every region must have either its own section or be covered by
// the shared section.
func NewSolutionControls(f *ini.File, regions []string) (*SolutionControls, error) {
	s := &SolutionControls{
		regions: append([]string(nil), regions...),
		dicts:   make([]kinetics.Dictionary, len(regions)),
	}
	shared, sharedErr := f.GetSection(pimpleSection)
	for i, name := range regions {
		m := make(map[string]string)
		if sharedErr == nil {
			for k, v := range shared.KeysHash() {
				m[k] = v
			}
		}
		sec, err := f.GetSection(pimpleSection + "." + name)
		if err != nil && sharedErr != nil {
			return nil, fmt.Errorf("cht: there are no PIMPLE controls for region %s", name)
		}
		if err == nil {
			for k, v := range sec.KeysHash() {
				m[k] = v
			}
		}
		s.dicts[i] = kinetics.DictionaryFromStrings(m)
	}
	return s, nil
}

// Len returns the number of regions.
func (s *SolutionControls) Len() int { return len(s.dicts) }

// Dict returns the PIMPLE dictionary of region i.
func (s *SolutionControls) Dict(i int) kinetics.Dictionary { return s.dicts[i] }

// Region returns the name of region i.
func (s *SolutionControls) Region(i int) string { return s.regions[i] }
