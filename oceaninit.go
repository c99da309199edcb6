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

// Package oceaninit creates initial condition datasets for idealized
// MPAS-Ocean test cases. Starting from an unstructured horizontal mesh,
// it builds a z-level vertical grid with partial bottom cells, fills in
// synthetic bathymetry and sea surface height, initializes tracers from
// a linear equation of state, and writes the result as a NetCDF dataset
// that the ocean model can start from.
package oceaninit

// Version gives the version number of this version of OceanInit.
const Version = "0.1.0"
