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
	"os"

	"github.com/ctessum/cdf"
	"gonum.org/v1/gonum/floats"
)

// A Mesh is an MPAS horizontal mesh. Besides the cell, edge, and vertex
// coordinates, it retains every variable, dimension, and attribute of
// the file it was loaded from, so the complete mesh description can be
// carried through into the initial state dataset.
type Mesh struct {
	NCells, NEdges, NVertices int

	XCell, YCell     []float64
	XEdge, YEdge     []float64
	XVertex, YVertex []float64

	dims  []meshDim
	vars  []meshVar
	attrs []meshAttr
}

type meshDim struct {
	name   string
	length int
}

type meshAttr struct {
	name  string
	value interface{}
}

// meshVar is one variable carried through from the mesh file.
// typeVal is an empty value of the variable's storage type, and data
// holds the values of the variable's first record.
type meshVar struct {
	name    string
	dims    []string
	typeVal interface{}
	data    interface{}
	attrs   []meshAttr
}

// LoadMesh reads the horizontal mesh from the NetCDF file r.
//
// The dimensions nCells, nEdges, and nVertices and the double-precision
// variables xCell, yCell, xEdge, yEdge, xVertex, and yVertex must be
// present. A record dimension is only accepted if it is named Time, and
// only the first record of its variables is retained.
func LoadMesh(r *os.File) (*Mesh, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("oceaninit: reading mesh file header: %v", err)
	}
	fi, err := r.Stat()
	if err != nil {
		return nil, fmt.Errorf("oceaninit: reading mesh file: %v", err)
	}
	numRecs := f.Header.NumRecs(fi.Size())

	m := new(Mesh)

	dims := f.Header.Dimensions("")
	lengths := f.Header.Lengths("")
	for i, d := range dims {
		if lengths[i] == 0 && d != "Time" {
			return nil, fmt.Errorf("oceaninit: mesh file has unsupported record dimension %s", d)
		}
		m.dims = append(m.dims, meshDim{name: d, length: lengths[i]})
	}
	if m.NCells, err = m.dimLength("nCells"); err != nil {
		return nil, err
	}
	if m.NEdges, err = m.dimLength("nEdges"); err != nil {
		return nil, err
	}
	if m.NVertices, err = m.dimLength("nVertices"); err != nil {
		return nil, err
	}

	for _, a := range f.Header.Attributes("") {
		m.attrs = append(m.attrs, meshAttr{name: a, value: f.Header.GetAttribute("", a)})
	}

	for _, v := range f.Header.Variables() {
		mv := meshVar{
			name:    v,
			dims:    f.Header.Dimensions(v),
			typeVal: f.Header.ZeroValue(v, 0),
		}
		for _, a := range f.Header.Attributes(v) {
			mv.attrs = append(mv.attrs, meshAttr{name: a, value: f.Header.GetAttribute(v, a)})
		}
		n := 1
		for _, l := range f.Header.Lengths(v) {
			if l == 0 {
				l = 1 // only the first record is kept
			}
			n *= l
		}
		if !f.Header.IsRecordVariable(v) || numRecs > 0 {
			rdr := f.Reader(v, nil, nil)
			buf := rdr.Zero(n)
			if _, err := rdr.Read(buf); err != nil {
				return nil, fmt.Errorf("oceaninit: reading mesh variable %s: %v", v, err)
			}
			mv.data = buf
		}
		m.vars = append(m.vars, mv)
	}

	coordinates := []struct {
		name   string
		field  *[]float64
		length int
	}{
		{"xCell", &m.XCell, m.NCells},
		{"yCell", &m.YCell, m.NCells},
		{"xEdge", &m.XEdge, m.NEdges},
		{"yEdge", &m.YEdge, m.NEdges},
		{"xVertex", &m.XVertex, m.NVertices},
		{"yVertex", &m.YVertex, m.NVertices},
	}
	for _, c := range coordinates {
		mv := m.varByName(c.name)
		if mv == nil {
			return nil, fmt.Errorf("oceaninit: variable %s is not in the mesh file", c.name)
		}
		// The coordinate fields alias the pass-through storage so that
		// normalization shows up in the written dataset.
		data, ok := mv.data.([]float64)
		if !ok {
			return nil, fmt.Errorf("oceaninit: mesh variable %s must have type double", c.name)
		}
		if len(data) != c.length {
			return nil, fmt.Errorf("oceaninit: mesh variable %s has %d values for dimension length %d",
				c.name, len(data), c.length)
		}
		*c.field = data
	}

	return m, nil
}

func (m *Mesh) dimLength(name string) (int, error) {
	for _, d := range m.dims {
		if d.name == name {
			if d.length < 1 {
				return 0, fmt.Errorf("oceaninit: mesh dimension %s must be positive but is %d", name, d.length)
			}
			return d.length, nil
		}
	}
	return 0, fmt.Errorf("oceaninit: dimension %s is not in the mesh file", name)
}

func (m *Mesh) varByName(name string) *meshVar {
	for i := range m.vars {
		if m.vars[i].name == name {
			return &m.vars[i]
		}
	}
	return nil
}

// Normalize translates the mesh horizontally so that the minimum edge
// coordinates sit exactly at the origin. All cell, edge, and vertex
// coordinates shift by the same offsets, preserving every distance.
func (m *Mesh) Normalize() {
	x0 := floats.Min(m.XEdge)
	y0 := floats.Min(m.YEdge)
	floats.AddConst(-x0, m.XCell)
	floats.AddConst(-x0, m.XEdge)
	floats.AddConst(-x0, m.XVertex)
	floats.AddConst(-y0, m.YCell)
	floats.AddConst(-y0, m.YEdge)
	floats.AddConst(-y0, m.YVertex)
}
