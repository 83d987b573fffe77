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

package kineticsutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/kinetics"
	"github.com/spf13/cast"
)

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("kinetics: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// logFile is the currently open log file, if any.
var logFile *os.File

// setLog configures the standard logger from the Verbose and LogFile
// configuration variables.
func setLog(stderr io.Writer) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if Cfg.GetBool("Verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	path := os.ExpandEnv(Cfg.GetString("LogFile"))
	if path == "" {
		logrus.SetOutput(stderr)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kinetics: problem creating log file: %v", err)
	}
	logFile = f
	logrus.SetOutput(io.MultiWriter(stderr, f))
	return nil
}

// getStringMapFloat64 returns a map[string]float64 from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func getStringMapFloat64(varName string, cfg *viper.Viper) (map[string]float64, error) {
	i := cfg.Get(varName)
	switch t := i.(type) {
	case map[string]float64:
		return t, nil
	case map[string]interface{}:
		o := make(map[string]float64, len(t))
		for k, v := range t {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %v", varName, k, err)
			}
			o[k] = f
		}
		return o, nil
	case string:
		o := make(map[string]float64)
		if t == "" {
			return o, nil
		}
		if err := json.NewDecoder(bytes.NewBufferString(t)).Decode(&o); err != nil {
			return nil, fmt.Errorf("%s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for %s: %#v", varName, i)
	}
}

// getFloat64Slice returns a []float64 from a viper configuration,
// accounting for the fact that it might be a bracketed, comma-separated
// list if it was set from a command line argument.
func getFloat64Slice(varName string, cfg *viper.Viper) ([]float64, error) {
	i := cfg.Get(varName)
	switch t := i.(type) {
	case []float64:
		return t, nil
	case []interface{}:
		o := make([]float64, len(t))
		for j, v := range t {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %v", varName, j, err)
			}
			o[j] = f
		}
		return o, nil
	case string:
		t = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(t), "["), "]"))
		if t == "" {
			return nil, nil
		}
		fields := strings.Split(t, ",")
		o := make([]float64, len(fields))
		for j, v := range fields {
			f, err := cast.ToFloat64E(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %v", varName, j, err)
			}
			o[j] = f
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for %s: %#v", varName, i)
	}
}

// concentrations arranges the named concentrations in species order.
// Species that are not named have zero concentration.
func concentrations(species *kinetics.SpeciesTable, named map[string]float64) ([]float64, error) {
	c := make([]float64, species.Len())
	for name, v := range named {
		i, err := species.Index(name)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return c, nil
}
