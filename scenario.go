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

package oceaninit

// A Scenario defines the closed-form fields of an idealized test case.
// The horizontal fields are evaluated at cell centers of the normalized
// mesh, and the vertical profiles at layer midpoints.
type Scenario interface {
	// Name returns the name of the test case.
	Name() string

	// BottomDepth returns the seafloor depth [m, positive down] at the
	// horizontal location (x, y) [m].
	BottomDepth(x, y float64) float64

	// SSH returns the initial sea surface height [m] at (x, y).
	SSH(x, y float64) float64

	// Density returns the initial potential density [kg/m³] at
	// elevation z [m, negative below the surface].
	Density(z float64) float64

	// Salinity returns the initial salinity [PSU] at elevation z.
	Salinity(z float64) float64
}
