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

	"github.com/lnashier/viper"
	"github.com/spatialmodel/kinetics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the kinetics tools.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile specifies the path to a file where log messages should
              be written in addition to standard error. If empty, messages are
              only written to standard error.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Verbose",
			usage: `
              Verbose specifies whether debugging messages should be logged.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism",
			usage: `
              Mechanism specifies the path to the reaction mechanism file.
              The format is chosen from the file extension: ".toml", ".yaml",
              or ".yml". It can contain environment variables.`,
			shorthand:  "m",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rateCmd.Flags(), writeCmd.Flags()},
		},
		{
			name: "Reaction",
			usage: `
              Reaction specifies the name of the reaction in the mechanism
              whose rate should be evaluated.`,
			shorthand:  "r",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rateCmd.Flags()},
		},
		{
			name: "Pressure",
			usage: `
              Pressure specifies the pressure [Pa] at which rates are evaluated.`,
			defaultVal: 101325.0,
			flagsets:   []*pflag.FlagSet{rateCmd.Flags()},
		},
		{
			name: "Temperatures",
			usage: `
              Temperatures specifies the temperatures [K] at which rates are
              evaluated.`,
			defaultVal: []float64{300, 500, 1000, 1500, 2000},
			flagsets:   []*pflag.FlagSet{rateCmd.Flags()},
		},
		{
			name: "Concentrations",
			usage: `
              Concentrations specifies the molar concentrations [kmol/m³] of
              the mechanism species, as a map from species name to value.
              Species that are not listed have zero concentration.`,
			defaultVal: map[string]float64{},
			flagsets:   []*pflag.FlagSet{rateCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path to the file where the mechanism
              should be written. If empty, it is written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Case",
			usage: `
              Case specifies the path to the TOML file holding the fluid
              regions and their fields.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pressureCmd.Flags()},
		},
		{
			name: "Solution",
			usage: `
              Solution specifies the path to the INI file holding the PIMPLE
              solution controls. Settings in section [PIMPLE] apply to every
              region and are overridden by settings in [PIMPLE.<region>].`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pressureCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("KINETICS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case []float64:
				if option.shorthand == "" {
					set.Float64Slice(option.name, option.defaultVal.([]float64), option.usage)
				} else {
					set.Float64SliceP(option.name, option.shorthand, option.defaultVal.([]float64), option.usage)
				}
			case map[string]float64:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(rateCmd)
	Root.AddCommand(writeCmd)
	Root.AddCommand(pressureCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "kinetics",
	Short: "Pressure-dependent reaction rates and fluid pressure controls.",
	Long: `kinetics evaluates the rate coefficients of gas-phase reaction mechanisms,
including chemically-activated and fall-off reactions, and sets up the pressure
controls of multi-region fluid cases.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'KINETICS_var' where 'var' is the
name of the variable to be set. Path variables are additionally allowed to contain
environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		return setLog(cmd.ErrOrStderr())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of kinetics.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kinetics v%s\n", kinetics.Version)
	},
	DisableAutoGenTag: true,
}

// rateCmd evaluates the rate of a single reaction over a range of temperatures.
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Evaluate a reaction rate.",
	Long: `rate evaluates the rate coefficient of one reaction of a mechanism and its
derivatives at the given pressure and concentrations, for each of the given
temperatures, and prints the results as a table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Ts, err := getFloat64Slice("Temperatures", Cfg)
		if err != nil {
			return err
		}
		c, err := getStringMapFloat64("Concentrations", Cfg)
		if err != nil {
			return err
		}
		return RateTable(cmd.OutOrStdout(), Cfg.GetString("Mechanism"), Cfg.GetString("Reaction"),
			Cfg.GetFloat64("Pressure"), Ts, c)
	},
	DisableAutoGenTag: true,
}

// writeCmd re-writes a mechanism in normalized TOML form.
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a mechanism in TOML format.",
	Long: `write reads a mechanism and writes it back out in TOML format, with
every rate law and activation function parameter written explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeMechanismFile(cmd.OutOrStdout(), Cfg.GetString("Mechanism"), Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}

// pressureCmd creates and applies the pressure controls of a multi-region case.
var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Create fluid pressure controls.",
	Long: `pressure creates a pressure control for each fluid region of a case from
the region's PIMPLE solution controls, limits each region's pressure field, and
prints the resulting limits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return PressureControls(cmd.OutOrStdout(), Cfg.GetString("Case"), Cfg.GetString("Solution"))
	},
	DisableAutoGenTag: true,
}
