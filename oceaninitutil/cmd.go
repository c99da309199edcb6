/*
Copyright © 2019 the OceanInit authors.
This file is part of OceanInit.

OceanInit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OceanInit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OceanInit.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package oceaninitutil provides the command-line interface for
// creating MPAS-Ocean initial condition files.
package oceaninitutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/oceaninit"
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
	// Options are the configuration options available to OceanInit.
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
			name: "input_file",
			usage: `
              input_file specifies the location of the horizontal mesh
              file to build the initial condition on.`,
			shorthand:  "i",
			defaultVal: "base_mesh.nc",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "output_file",
			usage: `
              output_file specifies the location for the initial
              condition file that will be created.`,
			shorthand:  "o",
			defaultVal: "initial_state.nc",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "nVertLevels",
			usage: `
              nVertLevels specifies the number of vertical levels in the
              output.`,
			shorthand:  "L",
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "MaxDepth",
			usage: `
              MaxDepth is the depth of the deepest point of the ocean
              away from the ridge [m].`,
			defaultVal: 5000.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("OCEANINIT")

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
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("oceaninit: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "oceaninit",
	Short: "Create initial conditions for idealized MPAS-Ocean test cases.",
	Long: `OceanInit reads an MPAS-Ocean horizontal mesh and writes a complete
initial condition file for the internal tide test case: a ridge in an
otherwise flat-bottomed channel with a linearly stratified ocean and a
tilted sea surface.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'OCEANINIT_var' where 'var'
is the name of the variable to be set. Many configuration variables are
additionally allowed to contain environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("input_file"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("output_file"))
		if err != nil {
			return err
		}
		nVertLevels, err := checkVertLevels(Cfg.Get("nVertLevels"))
		if err != nil {
			return err
		}
		maxDepth, err := checkMaxDepth(Cfg.Get("MaxDepth"))
		if err != nil {
			return err
		}
		return Generate(inputFile, outputFile, nVertLevels, maxDepth)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of OceanInit.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("OceanInit v%s\n", oceaninit.Version)
	},
	DisableAutoGenTag: true,
}
