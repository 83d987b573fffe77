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
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a requested dictionary entry does not exist.
var ErrNotFound = errors.New("kinetics: entry not found")

// Dictionary holds keyword-value configuration entries, possibly nested.
// It is the in-memory form of a mechanism or solution-control record
// regardless of the file format it was read from.
type Dictionary map[string]interface{}

// ReadDictionary decodes a dictionary from r. Valid formats are
// "toml" and "yaml".
func ReadDictionary(r io.Reader, format string) (Dictionary, error) {
	d := make(map[string]interface{})
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("kinetics: decoding toml dictionary: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&d); err != nil && err != io.EOF {
			return nil, fmt.Errorf("kinetics: decoding yaml dictionary: %w", err)
		}
	default:
		return nil, fmt.Errorf("kinetics: invalid dictionary format %q; valid options are toml and yaml", format)
	}
	return Dictionary(d), nil
}

// DictionaryFromStrings creates a dictionary from flat string entries,
// as read from an INI section or command-line flags.
func DictionaryFromStrings(m map[string]string) Dictionary {
	d := make(Dictionary, len(m))
	for k, v := range m {
		d[k] = v
	}
	return d
}

// Found returns whether the dictionary contains the given key.
func (d Dictionary) Found(key string) bool {
	_, ok := d[key]
	return ok
}

// Lookup returns the raw value for key.
func (d Dictionary) Lookup(key string) (interface{}, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%w: keyword %q is undefined in dictionary with keys %v", ErrNotFound, key, d.Keys())
	}
	return v, nil
}

// Keys returns the sorted keys of the dictionary.
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SubDict returns the nested dictionary stored under key.
func (d Dictionary) SubDict(key string) (Dictionary, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return nil, err
	}
	return toDictionary(key, v)
}

// SubDictOrEmpty returns the nested dictionary stored under key, or an
// empty dictionary if there is no such entry.
func (d Dictionary) SubDictOrEmpty(key string) (Dictionary, error) {
	if !d.Found(key) {
		return Dictionary{}, nil
	}
	return d.SubDict(key)
}

func toDictionary(key string, v interface{}) (Dictionary, error) {
	switch t := v.(type) {
	case Dictionary:
		return t, nil
	case map[string]interface{}:
		return Dictionary(t), nil
	case map[interface{}]interface{}:
		m, err := cast.ToStringMapE(t)
		if err != nil {
			return nil, fmt.Errorf("kinetics: entry %q: %w", key, err)
		}
		return Dictionary(m), nil
	default:
		return nil, fmt.Errorf("kinetics: entry %q is a %T, not a dictionary", key, v)
	}
}

// Scalar returns the floating-point value stored under key.
func (d Dictionary) Scalar(key string) (float64, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("kinetics: entry %q: %w", key, err)
	}
	return f, nil
}

// ScalarOrDefault returns the floating-point value stored under key,
// or def if there is no such entry.
func (d Dictionary) ScalarOrDefault(key string, def float64) (float64, error) {
	if !d.Found(key) {
		return def, nil
	}
	return d.Scalar(key)
}

// Int returns the integer value stored under key.
func (d Dictionary) Int(key string) (int, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return 0, err
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("kinetics: entry %q: %w", key, err)
	}
	return i, nil
}

// Word returns the string value stored under key.
func (d Dictionary) Word(key string) (string, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("kinetics: entry %q: %w", key, err)
	}
	return s, nil
}

// List returns the list stored under key.
func (d Dictionary) List(key string) ([]interface{}, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return nil, err
	}
	l, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("kinetics: entry %q: %w", key, err)
	}
	return l, nil
}

// Dictionaries returns the list of dictionaries stored under key,
// as produced by a TOML array of tables or a YAML sequence of mappings.
func (d Dictionary) Dictionaries(key string) ([]Dictionary, error) {
	v, err := d.Lookup(key)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case []map[string]interface{}:
		o := make([]Dictionary, len(t))
		for i, m := range t {
			o[i] = Dictionary(m)
		}
		return o, nil
	case []interface{}:
		o := make([]Dictionary, len(t))
		for i, m := range t {
			if o[i], err = toDictionary(fmt.Sprintf("%s[%d]", key, i), m); err != nil {
				return nil, err
			}
		}
		return o, nil
	default:
		return nil, fmt.Errorf("kinetics: entry %q is a %T, not a list of dictionaries", key, v)
	}
}
