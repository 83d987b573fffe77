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

import "fmt"

// SpeciesTable is an ordered list of chemical species names. The position
// of a species in the table is its index in concentration arrays.
type SpeciesTable struct {
	names   []string
	indices map[string]int
}

// NewSpeciesTable creates a species table from the given names,
// returning an error for empty or duplicate names.
func NewSpeciesTable(names ...string) (*SpeciesTable, error) {
	s := &SpeciesTable{
		names:   make([]string, len(names)),
		indices: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("kinetics: species %d has an empty name", i)
		}
		if j, ok := s.indices[n]; ok {
			return nil, fmt.Errorf("kinetics: species %q is listed twice (positions %d and %d)", n, j, i)
		}
		s.names[i] = n
		s.indices[n] = i
	}
	return s, nil
}

// Len returns the number of species in the table.
func (s *SpeciesTable) Len() int { return len(s.names) }

// Name returns the name of species i.
func (s *SpeciesTable) Name(i int) string { return s.names[i] }

// Names returns a copy of the species names in index order.
func (s *SpeciesTable) Names() []string {
	return append([]string(nil), s.names...)
}

// Index returns the index of the named species.
func (s *SpeciesTable) Index(name string) (int, error) {
	i, ok := s.indices[name]
	if !ok {
		return -1, fmt.Errorf("kinetics: species %q is not in the species table %v", name, s.names)
	}
	return i, nil
}
