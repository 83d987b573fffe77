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

// Package mechanism reads and writes reaction mechanisms: a species table
// and a list of named reactions with their rate expressions.
package mechanism

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/kinetics"
	"github.com/spatialmodel/kinetics/science/falloff/lindemann"
	"github.com/spatialmodel/kinetics/science/falloff/sri"
	"github.com/spatialmodel/kinetics/science/falloff/troe"
	"github.com/spatialmodel/kinetics/science/rate/arrhenius"
	"github.com/spatialmodel/kinetics/science/rate/landauteller"
)

// Reaction types.
const (
	Elementary          = "Elementary"
	FallOff             = "FallOff"
	ChemicallyActivated = "ChemicallyActivated"
)

// rateLaws lists the available rate expressions.
var rateLaws = map[string]kinetics.RateLawReader{
	"Arrhenius":    arrhenius.FromDict,
	"LandauTeller": landauteller.FromDict,
}

// activationFunctions lists the available blending functions.
var activationFunctions = map[string]kinetics.ActivationFunctionReader{
	"Lindemann": lindemann.FromDict,
	"Troe":      troe.FromDict,
	"SRI":       sri.FromDict,
}

// Reaction is a named reaction and its rate expression.
type Reaction struct {
	Name       string `toml:"name"`
	Type       string `toml:"type"`
	RateLaw    string `toml:"rateLaw"`
	Activation string `toml:"activation,omitempty"`

	Rate kinetics.RateLaw `toml:"-"`
}

// Mechanism is a set of reactions among the species in a species table.
type Mechanism struct {
	Species   *kinetics.SpeciesTable
	Reactions []*Reaction
}

// LoadFile reads a mechanism from a TOML or YAML file, choosing the
// format from the file extension.
func LoadFile(path string) (*Mechanism, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mechanism: %w", err)
	}
	defer f.Close()
	m, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return m, nil
}

// Load reads a mechanism in the given format ("toml" or "yaml") from r.
func Load(r io.Reader, format string) (*Mechanism, error) {
	dict, err := kinetics.ReadDictionary(r, format)
	if err != nil {
		return nil, fmt.Errorf("mechanism: %w", err)
	}
	return FromDict(dict)
}

// FromDict creates a mechanism from the "species" list and the "reaction"
// list of dict.
func FromDict(dict kinetics.Dictionary) (*Mechanism, error) {
	names, err := dict.List("species")
	if err != nil {
		return nil, fmt.Errorf("mechanism: %w", err)
	}
	speciesNames := make([]string, len(names))
	for i, n := range names {
		s, ok := n.(string)
		if !ok {
			return nil, fmt.Errorf("mechanism: species %d is a %T, not a name", i, n)
		}
		speciesNames[i] = s
	}
	species, err := kinetics.NewSpeciesTable(speciesNames...)
	if err != nil {
		return nil, fmt.Errorf("mechanism: %w", err)
	}
	m := &Mechanism{Species: species}
	if !dict.Found("reaction") {
		return m, nil
	}
	reactionDicts, err := dict.Dictionaries("reaction")
	if err != nil {
		return nil, fmt.Errorf("mechanism: %w", err)
	}
	seen := make(map[string]int)
	for i, rd := range reactionDicts {
		r, err := readReaction(species, rd)
		if err != nil {
			return nil, fmt.Errorf("mechanism: reaction %d: %w", i, err)
		}
		if j, ok := seen[r.Name]; ok {
			return nil, fmt.Errorf("mechanism: reaction %q is defined twice (reactions %d and %d)", r.Name, j, i)
		}
		seen[r.Name] = i
		m.Reactions = append(m.Reactions, r)
	}
	return m, nil
}

func readReaction(species *kinetics.SpeciesTable, dict kinetics.Dictionary) (*Reaction, error) {
	r := new(Reaction)
	var err error
	if r.Name, err = dict.Word("name"); err != nil {
		return nil, err
	}
	if r.Type, err = dict.Word("type"); err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	if r.RateLaw, err = dict.Word("rateLaw"); err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	readRate, ok := rateLaws[r.RateLaw]
	if !ok {
		return nil, fmt.Errorf("%s: invalid rate law %q; valid options are %v", r.Name, r.RateLaw, options(rateLaws))
	}

	if r.Type == Elementary {
		k, err := dict.SubDict("k")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
		if r.Rate, err = readRate(species, k); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
		return r, nil
	}

	if r.Activation, err = dict.Word("activation"); err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	readF, ok := activationFunctions[r.Activation]
	if !ok {
		return nil, fmt.Errorf("%s: invalid activation function %q; valid options are %v", r.Name, r.Activation, options(activationFunctions))
	}
	switch r.Type {
	case FallOff:
		r.Rate, err = kinetics.FallOffFromDict(species, dict, readRate, readF)
	case ChemicallyActivated:
		r.Rate, err = kinetics.ChemicallyActivatedFromDict(species, dict, readRate, readF)
	default:
		return nil, fmt.Errorf("%s: invalid reaction type %q; valid options are %s, %s and %s",
			r.Name, r.Type, Elementary, FallOff, ChemicallyActivated)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	return r, nil
}

func options[T any](m map[string]T) []string {
	o := make([]string, 0, len(m))
	for k := range m {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

// Reaction returns the reaction with the given name.
func (m *Mechanism) Reaction(name string) (*Reaction, error) {
	for _, r := range m.Reactions {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("mechanism: there is no reaction named %q", name)
}

// Write writes the mechanism to w in TOML format. Each reaction is
// followed by its rate expression in the rate's own format.
func (m *Mechanism) Write(w io.Writer) error {
	e := toml.NewEncoder(w)
	if err := e.Encode(struct {
		Species []string `toml:"species"`
	}{Species: m.Species.Names()}); err != nil {
		return fmt.Errorf("mechanism: writing species: %w", err)
	}
	for _, r := range m.Reactions {
		if _, err := fmt.Fprint(w, "\n[[reaction]]\n"); err != nil {
			return err
		}
		if err := e.Encode(r); err != nil {
			return fmt.Errorf("mechanism: writing reaction %s: %w", r.Name, err)
		}
		table := "reaction"
		if r.Type == Elementary {
			table = "reaction.k"
		}
		if err := r.Rate.Write(w, table); err != nil {
			return fmt.Errorf("mechanism: writing reaction %s: %w", r.Name, err)
		}
	}
	return nil
}
