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

package oceaninitutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
)

// checkInputFile makes sure that the input mesh file is specified and
// exists, and expands any environment variables.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: input_file="base_mesh.nc")`)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("oceaninit: the input_file doesn't exist: %v", err)
	}
	return f, nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: output_file="initial_state.nc")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("oceaninit: the output_file directory doesn't exist: %v", err)
	}
	return f, nil
}

// checkVertLevels converts the nVertLevels configuration value to an
// integer and ensures an acceptable value was specified.
func checkVertLevels(v interface{}) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("oceaninit: parsing nVertLevels: %v", err)
	}
	if n < 1 {
		return n, fmt.Errorf("oceaninit: nVertLevels=%d but should be >0", n)
	}
	return n, nil
}

// checkMaxDepth converts the MaxDepth configuration value to a number
// and ensures an acceptable value was specified.
func checkMaxDepth(v interface{}) (float64, error) {
	d, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("oceaninit: parsing MaxDepth: %v", err)
	}
	if !(d > 0) {
		return d, fmt.Errorf("oceaninit: MaxDepth=%g but should be >0", d)
	}
	return d, nil
}
