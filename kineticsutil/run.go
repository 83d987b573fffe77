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
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/kinetics"
	"github.com/spatialmodel/kinetics/cht"
	"github.com/spatialmodel/kinetics/mechanism"
)

func loadMechanism(mechanismFile string) (*mechanism.Mechanism, error) {
	m, err := mechanism.LoadFile(os.ExpandEnv(mechanismFile))
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"file":      mechanismFile,
		"species":   m.Species.Len(),
		"reactions": len(m.Reactions),
	}).Info("loaded mechanism")
	return m, nil
}

// RateTable evaluates the rate coefficient of the named reaction in
// mechanismFile at pressure p [Pa], each of temperatures Ts [K], and the
// given species concentrations [kmol/m³], and writes the results as a
// table to w. Unlisted species have zero concentration.
func RateTable(w io.Writer, mechanismFile, reaction string, p float64, Ts []float64, named map[string]float64) error {
	if len(Ts) == 0 {
		return fmt.Errorf("kinetics: no temperatures specified")
	}
	m, err := loadMechanism(mechanismFile)
	if err != nil {
		return err
	}
	r, err := m.Reaction(reaction)
	if err != nil {
		return err
	}
	c, err := concentrations(m.Species, named)
	if err != nil {
		return err
	}

	cells := make([]*kinetics.Cell, len(Ts))
	for i, T := range Ts {
		if !(T > 0) {
			return fmt.Errorf("kinetics: temperature %g should be > 0", T)
		}
		cells[i] = &kinetics.Cell{P: p, T: T, C: c}
	}
	kinetics.Calculations(cells, kinetics.RateEvaluator(r.Rate))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	_, pressureDependent := r.Rate.(kinetics.PressureDependentRate)
	fmt.Fprintf(tw, "T\tk\tdk/dT")
	if pressureDependent {
		fmt.Fprintf(tw, "\tdcidT")
		for _, s := range m.Species.Names() {
			fmt.Fprintf(tw, "\tdcidc[%s]", s)
		}
	}
	fmt.Fprintln(tw)
	for _, cell := range cells {
		fmt.Fprintf(tw, "%g\t%g\t%g", cell.T, cell.K, cell.DkdT)
		if pressureDependent {
			fmt.Fprintf(tw, "\t%g", cell.DcidT)
			for _, d := range cell.Dcidc {
				fmt.Fprintf(tw, "\t%g", d)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteMechanism reads the mechanism in mechanismFile and writes it to w
// in TOML format.
func WriteMechanism(w io.Writer, mechanismFile string) error {
	m, err := loadMechanism(mechanismFile)
	if err != nil {
		return err
	}
	return m.Write(w)
}

// writeMechanismFile writes the mechanism in mechanismFile to outputFile,
// or to stdout if outputFile is empty.
func writeMechanismFile(stdout io.Writer, mechanismFile, outputFile string) error {
	if outputFile == "" {
		return WriteMechanism(stdout, mechanismFile)
	}
	f, err := os.Create(os.ExpandEnv(outputFile))
	if err != nil {
		return fmt.Errorf("kinetics: creating output file: %v", err)
	}
	if err := WriteMechanism(f, mechanismFile); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PressureControls reads the fluid regions in caseFile and their PIMPLE
// controls in solutionFile, creates a pressure control for each region,
// applies its limits to the region's pressure, and reports the
// result to w. It returns an error without limiting any region if
// any of the controls cannot be created.
func PressureControls(w io.Writer, caseFile, solutionFile string) error {
	f, err := os.Open(os.ExpandEnv(caseFile))
	if err != nil {
		return fmt.Errorf("kinetics: opening case: %v", err)
	}
	defer f.Close()
	regions, err := cht.LoadCase(f)
	if err != nil {
		return err
	}
	controls, err := cht.LoadSolutionControls(os.ExpandEnv(solutionFile), cht.RegionNames(regions))
	if err != nil {
		return err
	}
	pcs, err := cht.CreateFluidPressureControls(regions, controls, logrus.StandardLogger())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "region\tpMin\tpMax\tlimited")
	for i, r := range regions {
		p, err := r.Lookup(cht.PressureField)
		if err != nil {
			return err
		}
		limited := pcs[i].Limit(p)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", r.Name,
			limitString(pcs[i].LimitMinP(), pcs[i].PMin()),
			limitString(pcs[i].LimitMaxP(), pcs[i].PMax()),
			limited)
	}
	return tw.Flush()
}

func limitString(active bool, v float64) string {
	if !active {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}
