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

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// internal tide test case parameters
const (
	ridgeHeight   = 1000.0   // m, ridge crest height above the deep ocean floor
	ridgeWidth    = 150.0e3  // m, Gaussian e-folding half width of the ridge
	sshRampLength = 4800.0e3 // m, distance over which the initial ssh tilts by 1 m

	rho0 = 1000.0  // kg/m³, density at the surface
	rhoZ = -2.0e-4 // kg/m⁴, vertical density gradient
	s0   = 35.0    // PSU, uniform initial salinity
)

// InternalTide is the internal tide test case: a Gaussian ridge across
// the middle of a planar channel, a linearly tilted initial sea surface,
// and linear background stratification.
type InternalTide struct {
	maxDepth float64
	xMid     float64
}

// NewInternalTide creates the internal tide test case for mesh m, with
// the ridge centered halfway across the mesh's cell x coordinate range.
// maxDepth [m] is the seafloor depth far away from the ridge.
func NewInternalTide(m *Mesh, maxDepth float64) *InternalTide {
	return &InternalTide{
		maxDepth: maxDepth,
		xMid:     0.5 * (floats.Min(m.XCell) + floats.Max(m.XCell)),
	}
}

// Name returns the name of the test case.
func (s *InternalTide) Name() string { return "internal_tide" }

// BottomDepth returns the seafloor depth [m] at (x, y): maxDepth far
// from the ridge, rising to maxDepth minus the ridge height at the
// crest.
func (s *InternalTide) BottomDepth(x, y float64) float64 {
	d := (x - s.xMid) / ridgeWidth
	return s.maxDepth - ridgeHeight*math.Exp(-d*d)
}

// SSH returns the initial sea surface height [m] at (x, y), a linear
// ramp from zero at the western boundary of the normalized mesh.
func (s *InternalTide) SSH(x, y float64) float64 { return x / sshRampLength }

// Density returns the linearly stratified initial density [kg/m³] at
// elevation z [m].
func (s *InternalTide) Density(z float64) float64 { return rho0 + rhoZ*z }

// Salinity returns the uniform initial salinity [PSU].
func (s *InternalTide) Salinity(z float64) float64 { return s0 }
