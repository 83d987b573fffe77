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
	"errors"
	"fmt"
)

// ErrFieldNotFound is returned when a region does not hold a requested field.
var ErrFieldNotFound = errors.New("cht: field not found")

// Region is a named fluid region and the fields registered on it.
type Region struct {
	Name   string
	fields map[string]*VolScalarField
}

// NewRegion creates a region holding the given fields.
func NewRegion(name string, fields ...*VolScalarField) (*Region, error) {
	r := &Region{Name: name, fields: make(map[string]*VolScalarField)}
	for _, f := range fields {
		if err := r.Add(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a field on the region.
func (r *Region) Add(f *VolScalarField) error {
	if err := f.check(); err != nil {
		return fmt.Errorf("region %s: %w", r.Name, err)
	}
	if _, ok := r.fields[f.Name]; ok {
		return fmt.Errorf("cht: region %s already has a field named %s", r.Name, f.Name)
	}
	r.fields[f.Name] = f
	return nil
}

// Lookup returns the named field.
func (r *Region) Lookup(name string) (*VolScalarField, error) {
	f, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: region %s has no field %s", ErrFieldNotFound, r.Name, name)
	}
	return f, nil
}
