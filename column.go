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
	"fmt"
	"runtime"
	"sync"
)

// fillValue marks inactive levels in level-dimensioned cell fields.
const fillValue = -9.0

// A CellColumn is the vertical grid of a single cell.
type CellColumn struct {
	// MaxActiveLevel is the zero-based index of the deepest active
	// layer.
	MaxActiveLevel int
	// LayerThickness is the thickness of each layer [m]. Levels below
	// MaxActiveLevel hold fillValue.
	LayerThickness []float64
	// ZMid is the z coordinate of each layer midpoint [m]. Levels below
	// MaxActiveLevel hold fillValue.
	ZMid []float64
}

// buildColumn constructs the layer geometry of one cell from the
// reference column, the seafloor depth [m, positive down] at the cell,
// and the initial sea surface height [m].
//
// The deepest active layer is a partial cell: its thickness is reduced
// (or, below the reference grid, extended) so the column bottom lands
// exactly on bottomDepth. The top layer absorbs ssh. The thicknesses of
// the active layers therefore sum to bottomDepth plus ssh.
//
// A bottomDepth that does not reach below the first reference layer
// interface leaves no room for a partial bottom cell below the surface
// layer and is an error.
func buildColumn(ref *ReferenceColumn, bottomDepth, ssh float64) (CellColumn, error) {
	n := ref.Levels()
	col := CellColumn{
		MaxActiveLevel: -1,
		LayerThickness: make([]float64, n),
		ZMid:           make([]float64, n),
	}
	for k := 0; k < n; k++ {
		col.LayerThickness[k] = fillValue
		col.ZMid[k] = fillValue
	}

	// Deepest level whose top interface lies above the seafloor.
	for k := n - 1; k >= 1; k-- {
		if bottomDepth > ref.BottomDepth[k-1] {
			col.MaxActiveLevel = k
			col.LayerThickness[k] = bottomDepth - ref.BottomDepth[k-1]
			col.ZMid[k] = -bottomDepth + 0.5*col.LayerThickness[k]
			break
		}
	}
	if col.MaxActiveLevel < 0 {
		return col, fmt.Errorf("bottom depth %g m does not reach below the first layer interface at %g m",
			bottomDepth, ref.BottomDepth[0])
	}

	for k := col.MaxActiveLevel - 1; k >= 1; k-- {
		col.LayerThickness[k] = ref.LayerThickness[k]
		col.ZMid[k] = col.ZMid[k+1] + 0.5*(col.LayerThickness[k+1]+col.LayerThickness[k])
	}

	col.LayerThickness[0] = ref.LayerThickness[0] + ssh
	col.ZMid[0] = col.ZMid[1] + 0.5*(col.LayerThickness[1]+col.LayerThickness[0])

	return col, nil
}

// BuildColumns constructs the layer geometry of every cell, spreading
// the cells over GOMAXPROCS goroutines. Cells are independent of each
// other, so the result is identical to building them sequentially.
func BuildColumns(ref *ReferenceColumn, bottomDepth, ssh []float64) ([]CellColumn, error) {
	cols := make([]CellColumn, len(bottomDepth))
	nprocs := runtime.GOMAXPROCS(0)
	errs := make([]error, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for i := pp; i < len(bottomDepth); i += nprocs {
				col, err := buildColumn(ref, bottomDepth[i], ssh[i])
				if err != nil {
					errs[pp] = fmt.Errorf("oceaninit: cell %d: %v", i, err)
					return
				}
				cols[i] = col
			}
		}(pp)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return cols, nil
}
