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

// A ReferenceColumn is the z-level vertical grid of a resting ocean at
// full depth: uniform layer thicknesses, cumulative bottom depths, and
// layer midpoints. Index 0 is the surface layer and depths are positive
// down while z coordinates are negative below the surface.
type ReferenceColumn struct {
	// LayerThickness is the reference thickness of each layer [m].
	LayerThickness []float64
	// BottomDepth is the depth of the bottom interface of each layer [m].
	BottomDepth []float64
	// ZMid is the z coordinate of each layer midpoint [m].
	ZMid []float64
	// MovementWeights gives the fraction of free surface movement
	// absorbed by each layer. In a z-level grid only the top layer
	// moves, so the weights are 1 for the surface layer and 0 below.
	MovementWeights []float64
}

// NewReferenceColumn divides maxDepth [m] into nVertLevels layers of
// equal thickness. nVertLevels must be at least 1.
func NewReferenceColumn(maxDepth float64, nVertLevels int) *ReferenceColumn {
	c := &ReferenceColumn{
		LayerThickness:  make([]float64, nVertLevels),
		BottomDepth:     make([]float64, nVertLevels),
		ZMid:            make([]float64, nVertLevels),
		MovementWeights: make([]float64, nVertLevels),
	}
	thickness := maxDepth / float64(nVertLevels)
	for k := range c.LayerThickness {
		c.LayerThickness[k] = thickness
	}
	c.BottomDepth[0] = c.LayerThickness[0]
	c.ZMid[0] = -0.5 * c.LayerThickness[0]
	for k := 1; k < nVertLevels; k++ {
		c.BottomDepth[k] = c.BottomDepth[k-1] + c.LayerThickness[k]
		c.ZMid[k] = -c.BottomDepth[k-1] - 0.5*c.LayerThickness[k]
	}
	c.MovementWeights[0] = 1
	return c
}

// Levels returns the number of vertical levels.
func (c *ReferenceColumn) Levels() int { return len(c.LayerThickness) }
