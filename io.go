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
	"github.com/ctessum/sparse"
)

// sentinelVars are the layer fields that can hold fillValue above the
// deepest active level. They carry a _FillValue attribute in the
// output.
var sentinelVars = []string{
	"temperature", "salinity", "zMid", "layerThickness", "restingThickness", "density",
}

// An outputVar pairs a computed variable with its dimensions. data is a
// *sparse.DenseArray or, for maxLevelCell, a *sparse.DenseArrayInt.
type outputVar struct {
	name string
	dims []string
	data interface{}
}

// outputVars lists the computed variables in the fixed order they are
// declared and written, so the same state always produces the same
// bytes.
func (s *State) outputVars() []outputVar {
	zDims := []string{"nVertLevels"}
	cellDims := []string{"nCells"}
	layerDims := []string{"Time", "nCells", "nVertLevels"}
	return []outputVar{
		{"refLayerThickness", zDims, denseOf(s.Ref.LayerThickness)},
		{"refBottomDepth", zDims, denseOf(s.Ref.BottomDepth)},
		{"refZMid", zDims, denseOf(s.Ref.ZMid)},
		{"vertCoordMovementWeights", zDims, denseOf(s.Ref.MovementWeights)},
		{"ssh", cellDims, s.SSH},
		{"bottomDepth", cellDims, s.BottomDepth},
		{"bottomDepthObserved", cellDims, s.BottomDepthObserved},
		{"maxLevelCell", cellDims, s.MaxLevelCell},
		{"temperature", layerDims, s.Temperature},
		{"salinity", layerDims, s.Salinity},
		{"zMid", layerDims, s.ZMid},
		{"layerThickness", layerDims, s.LayerThickness},
		{"restingThickness", layerDims, s.RestingThickness},
		{"density", layerDims, s.Density},
		{"surfaceStress", layerDims, s.SurfaceStress},
		{"atmosphericPressure", layerDims, s.AtmosphericPressure},
		{"boundaryLayerDepth", layerDims, s.BoundaryLayerDepth},
		{"fCell", []string{"nCells", "nVertLevels"}, s.FCell},
		{"fEdge", []string{"nEdges", "nVertLevels"}, s.FEdge},
		{"fVertex", []string{"nVertices", "nVertLevels"}, s.FVertex},
		{"normalVelocity", []string{"Time", "nEdges", "nVertLevels"}, s.NormalVelocity},
	}
}

// Write writes the initial state to w as a NetCDF classic dataset.
//
// The computed fields are written in a fixed order, followed by every
// mesh variable that the computation did not replace, so the output
// carries the complete mesh description alongside the initial
// condition. Writing the same state twice produces byte-identical
// files.
func (s *State) Write(w *os.File) error {
	computed := make(map[string]bool)
	for _, v := range s.outputVars() {
		computed[v.name] = true
	}

	h, err := s.header(computed)
	if err != nil {
		return err
	}
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("oceaninit: creating output file: %v", err)
	}

	for _, v := range s.outputVars() {
		switch data := v.data.(type) {
		case *sparse.DenseArray:
			err = writeNCF(f, v.name, data)
		case *sparse.DenseArrayInt:
			err = writeNCFInt(f, v.name, data)
		}
		if err != nil {
			return fmt.Errorf("oceaninit: writing variable %s: %v", v.name, err)
		}
	}
	for _, mv := range s.Mesh.vars {
		if computed[mv.name] || mv.data == nil {
			continue
		}
		if err := writeNCFRaw(f, mv.name, mv.data); err != nil {
			return fmt.Errorf("oceaninit: writing variable %s: %v", mv.name, err)
		}
	}

	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("oceaninit: updating record count: %v", err)
	}
	return nil
}

// header builds the output file header: the Time record dimension, the
// mesh and vertical grid dimensions, the computed variables, and the
// passed-through mesh variables and attributes.
func (s *State) header(computed map[string]bool) (*cdf.Header, error) {
	m := s.Mesh
	nVertLevels := s.Ref.Levels()

	dims := []string{"Time", "nCells", "nEdges", "nVertices", "nVertLevels"}
	lengths := []int{0, m.NCells, m.NEdges, m.NVertices, nVertLevels}
	for _, d := range m.dims {
		switch d.name {
		case "Time", "nCells", "nEdges", "nVertices":
			// Already declared.
		case "nVertLevels":
			if d.length != nVertLevels {
				return nil, fmt.Errorf("oceaninit: mesh file dimension nVertLevels has length %d, which conflicts with the requested %d levels",
					d.length, nVertLevels)
			}
		default:
			dims = append(dims, d.name)
			lengths = append(lengths, d.length)
		}
	}
	h := cdf.NewHeader(dims, lengths)

	h.AddAttribute("", "comment", "ocean initial state created by oceaninit")
	h.AddAttribute("", "source", "OceanInit v"+Version)
	for _, a := range m.attrs {
		if a.name == "comment" || a.name == "source" {
			continue
		}
		h.AddAttribute("", a.name, a.value)
	}

	for _, v := range s.outputVars() {
		switch v.data.(type) {
		case *sparse.DenseArrayInt:
			h.AddVariable(v.name, v.dims, []int32{0})
		default:
			h.AddVariable(v.name, v.dims, []float64{0})
		}
	}
	for _, v := range sentinelVars {
		h.AddAttribute(v, "_FillValue", []float64{fillValue})
	}

	for _, mv := range m.vars {
		if computed[mv.name] {
			continue
		}
		h.AddVariable(mv.name, mv.dims, mv.typeVal)
		for _, a := range mv.attrs {
			h.AddAttribute(mv.name, a.name, a.value)
		}
	}
	return h, nil
}

// writeBounds returns begin and end corners covering all of variable v,
// with record variables clamped to their first record.
func writeBounds(f *cdf.File, v string) (begin, end []int) {
	lengths := f.Header.Lengths(v)
	end = make([]int, len(lengths))
	copy(end, lengths)
	if f.Header.IsRecordVariable(v) {
		end[0] = 1
	}
	begin = make([]int, len(end))
	return begin, end
}

func writeNCF(f *cdf.File, v string, data *sparse.DenseArray) error {
	begin, end := writeBounds(f, v)
	n := 1
	for _, d := range end {
		n *= d
	}
	if len(data.Elements) != n {
		return fmt.Errorf("variable needs %d values but has %d", n, len(data.Elements))
	}
	_, err := f.Writer(v, begin, end).Write(data.Elements)
	return err
}

func writeNCFInt(f *cdf.File, v string, data *sparse.DenseArrayInt) error {
	begin, end := writeBounds(f, v)
	buf := make([]int32, len(data.Elements))
	for i, e := range data.Elements {
		buf[i] = int32(e)
	}
	_, err := f.Writer(v, begin, end).Write(buf)
	return err
}

func writeNCFRaw(f *cdf.File, v string, data interface{}) error {
	begin, end := writeBounds(f, v)
	_, err := f.Writer(v, begin, end).Write(data)
	return err
}

// ReadVariable reads the named variable from f into a dense array,
// converting numeric values to float64. For record variables only the
// first record is read.
func ReadVariable(f *cdf.File, name string) (*sparse.DenseArray, error) {
	lengths := f.Header.Lengths(name)
	if lengths == nil {
		return nil, fmt.Errorf("oceaninit: variable %s is not in file", name)
	}
	shape := make([]int, len(lengths))
	copy(shape, lengths)
	if f.Header.IsRecordVariable(name) {
		shape[0] = 1
	}
	data := sparse.ZerosDense(shape...)

	r := f.Reader(name, nil, nil)
	buf := r.Zero(len(data.Elements))
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("oceaninit: reading variable %s: %v", name, err)
	}
	switch b := buf.(type) {
	case []float64:
		copy(data.Elements, b)
	case []float32:
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	case []int32:
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	case []int16:
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("oceaninit: variable %s has non-numeric type %T", name, buf)
	}
	return data, nil
}

func denseOf(v []float64) *sparse.DenseArray {
	a := sparse.ZerosDense(len(v))
	copy(a.Elements, v)
	return a
}
