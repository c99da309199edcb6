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
	"github.com/ctessum/sparse"
)

// A State is a complete initial condition: the computed fields of the
// test case together with the mesh and the reference vertical grid they
// were built on.
type State struct {
	Mesh *Mesh
	Ref  *ReferenceColumn

	// Per-cell fields.
	SSH                 *sparse.DenseArray
	BottomDepth         *sparse.DenseArray
	BottomDepthObserved *sparse.DenseArray
	// MaxLevelCell is the one-based index of the deepest active layer
	// of each cell, as the ocean model expects it.
	MaxLevelCell *sparse.DenseArrayInt

	// Layer fields with shape (Time, nCells, nVertLevels). Inactive
	// levels of the first six hold fillValue; the last three are zero.
	Temperature         *sparse.DenseArray
	Salinity            *sparse.DenseArray
	ZMid                *sparse.DenseArray
	LayerThickness      *sparse.DenseArray
	RestingThickness    *sparse.DenseArray
	Density             *sparse.DenseArray
	SurfaceStress       *sparse.DenseArray
	AtmosphericPressure *sparse.DenseArray
	BoundaryLayerDepth  *sparse.DenseArray

	// Coriolis parameters at cells, edges, and vertices, zero in this
	// test case. These have no Time dimension.
	FCell   *sparse.DenseArray
	FEdge   *sparse.DenseArray
	FVertex *sparse.DenseArray

	// NormalVelocity is the velocity normal to each edge, with shape
	// (Time, nEdges, nVertLevels), zero at rest.
	NormalVelocity *sparse.DenseArray
}

// Generate computes the initial condition for scenario on mesh m with
// the vertical grid ref. The mesh should already be normalized.
func Generate(m *Mesh, ref *ReferenceColumn, scenario Scenario) (*State, error) {
	nCells, nEdges, nVertices := m.NCells, m.NEdges, m.NVertices
	nVertLevels := ref.Levels()

	bottomDepth := make([]float64, nCells)
	ssh := make([]float64, nCells)
	for i := 0; i < nCells; i++ {
		bottomDepth[i] = scenario.BottomDepth(m.XCell[i], m.YCell[i])
		ssh[i] = scenario.SSH(m.XCell[i], m.YCell[i])
	}

	cols, err := BuildColumns(ref, bottomDepth, ssh)
	if err != nil {
		return nil, err
	}

	s := &State{
		Mesh: m,
		Ref:  ref,

		SSH:                 sparse.ZerosDense(nCells),
		BottomDepth:         sparse.ZerosDense(nCells),
		BottomDepthObserved: sparse.ZerosDense(nCells),
		MaxLevelCell:        sparse.ZerosDenseInt(nCells),

		Temperature:         constDense(fillValue, 1, nCells, nVertLevels),
		Salinity:            constDense(fillValue, 1, nCells, nVertLevels),
		ZMid:                constDense(fillValue, 1, nCells, nVertLevels),
		LayerThickness:      constDense(fillValue, 1, nCells, nVertLevels),
		RestingThickness:    constDense(fillValue, 1, nCells, nVertLevels),
		Density:             constDense(fillValue, 1, nCells, nVertLevels),
		SurfaceStress:       sparse.ZerosDense(1, nCells, nVertLevels),
		AtmosphericPressure: sparse.ZerosDense(1, nCells, nVertLevels),
		BoundaryLayerDepth:  sparse.ZerosDense(1, nCells, nVertLevels),

		FCell:   sparse.ZerosDense(nCells, nVertLevels),
		FEdge:   sparse.ZerosDense(nEdges, nVertLevels),
		FVertex: sparse.ZerosDense(nVertices, nVertLevels),

		NormalVelocity: sparse.ZerosDense(1, nEdges, nVertLevels),
	}
	copy(s.SSH.Elements, ssh)
	copy(s.BottomDepth.Elements, bottomDepth)
	copy(s.BottomDepthObserved.Elements, bottomDepth)

	for i, col := range cols {
		s.MaxLevelCell.Set(col.MaxActiveLevel+1, i)
		for k := 0; k <= col.MaxActiveLevel; k++ {
			s.LayerThickness.Set(col.LayerThickness[k], 0, i, k)
			s.ZMid.Set(col.ZMid[k], 0, i, k)

			density := scenario.Density(col.ZMid[k])
			salinity := scenario.Salinity(col.ZMid[k])
			s.Density.Set(density, 0, i, k)
			s.Salinity.Set(salinity, 0, i, k)
			s.Temperature.Set(TemperatureFromDensity(density, salinity), 0, i, k)
		}
		// The resting column is the actual column with the free surface
		// removed: the reference thickness on top, the possibly partial
		// layers below.
		s.RestingThickness.Set(ref.LayerThickness[0], 0, i, 0)
		for k := 1; k < nVertLevels; k++ {
			s.RestingThickness.Set(col.LayerThickness[k], 0, i, k)
		}
	}

	return s, nil
}

func constDense(v float64, dims ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(dims...)
	for i := range a.Elements {
		a.Elements[i] = v
	}
	return a
}
