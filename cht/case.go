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
	"io"

	"github.com/BurntSushi/toml"
)

// LoadCase reads the fluid regions of a case, and the fields defined on
// them, from a TOML description of the form
//
//	[[region]]
//	name = "bottomAir"
//	  [[region.field]]
//	  name = "p_rgh"
//	  internal = [1e5, 1e5]
//	    [[region.field.patch]]
//	    name = "outlet"
//	    fixesValue = true
//	    faceCells = [1]
//	    values = [1e5]
func LoadCase(r io.Reader) ([]*Region, error) {
	var c struct {
		Region []struct {
			Name  string            `toml:"name"`
			Field []*VolScalarField `toml:"field"`
		} `toml:"region"`
	}
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("cht: reading case: %w", err)
	}
	regions := make([]*Region, len(c.Region))
	for i, rc := range c.Region {
		if rc.Name == "" {
			return nil, fmt.Errorf("cht: case region %d has no name", i)
		}
		var err error
		if regions[i], err = NewRegion(rc.Name, rc.Field...); err != nil {
			return nil, err
		}
	}
	return regions, nil
}

// RegionNames returns the names of the given regions.
func RegionNames(regions []*Region) []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}
