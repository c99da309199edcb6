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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/cdf"
	"gonum.org/v1/gonum/floats"
)

// writeTestMesh creates a small planar mesh file with nx by ny cells of
// size dx, with the lower-left cell centered at (x0, y0). Besides the
// coordinates it carries an areaCell variable, an indexToCellID variable,
// and a pair of global attributes, so tests can check that mesh contents
// survive into the output dataset.
func writeTestMesh(t *testing.T, path string, nx, ny int, dx, x0, y0 float64) {
	nCells := nx * ny
	nEdges := nCells + 1
	nVertices := nCells + 1

	xCell := make([]float64, nCells)
	yCell := make([]float64, nCells)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			c := j*nx + i
			xCell[c] = x0 + dx*float64(i)
			yCell[c] = y0 + dx*float64(j)
		}
	}
	xEdge := make([]float64, nEdges)
	yEdge := make([]float64, nEdges)
	xVertex := make([]float64, nVertices)
	yVertex := make([]float64, nVertices)
	for c := 0; c < nCells; c++ {
		xEdge[c] = xCell[c] - 0.5*dx
		yEdge[c] = yCell[c]
		xVertex[c] = xCell[c] - 0.5*dx
		yVertex[c] = yCell[c] - 0.5*dx
	}
	xEdge[nCells] = x0 + dx*(float64(nx)-0.5)
	yEdge[nCells] = y0
	xVertex[nCells] = x0 - 0.5*dx
	yVertex[nCells] = y0 + dx*(float64(ny)-0.5)

	areaCell := make([]float64, nCells)
	indexToCellID := make([]int32, nCells)
	for c := 0; c < nCells; c++ {
		areaCell[c] = dx * dx
		indexToCellID[c] = int32(c + 1)
	}

	h := cdf.NewHeader(
		[]string{"nCells", "nEdges", "nVertices"},
		[]int{nCells, nEdges, nVertices})
	h.AddAttribute("", "on_a_sphere", "NO")
	h.AddAttribute("", "mesh_spec", "1.0")
	for _, v := range []string{"xCell", "yCell"} {
		h.AddVariable(v, []string{"nCells"}, []float64{0})
	}
	for _, v := range []string{"xEdge", "yEdge"} {
		h.AddVariable(v, []string{"nEdges"}, []float64{0})
	}
	for _, v := range []string{"xVertex", "yVertex"} {
		h.AddVariable(v, []string{"nVertices"}, []float64{0})
	}
	h.AddVariable("areaCell", []string{"nCells"}, []float64{0})
	h.AddAttribute("areaCell", "units", "m^2")
	h.AddVariable("indexToCellID", []string{"nCells"}, []int32{0})
	h.Define()

	w, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := cdf.Create(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for v, data := range map[string]interface{}{
		"xCell": xCell, "yCell": yCell,
		"xEdge": xEdge, "yEdge": yEdge,
		"xVertex": xVertex, "yVertex": yVertex,
		"areaCell": areaCell, "indexToCellID": indexToCellID,
	} {
		end := append([]int{}, f.Header.Lengths(v)...)
		start := make([]int, len(end))
		if _, err := f.Writer(v, start, end).Write(data); err != nil {
			t.Fatalf("writing %s: %v", v, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func loadTestMesh(t *testing.T, path string) *Mesh {
	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	m, err := LoadMesh(r)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLoadMesh(t *testing.T) {
	dir, err := ioutil.TempDir("", "oceaninit")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "mesh.nc")
	writeTestMesh(t, path, 4, 3, 10.0e3, -120.0e3, 35.0e3)

	m := loadTestMesh(t, path)
	if m.NCells != 12 {
		t.Errorf("nCells is %d, want 12", m.NCells)
	}
	if m.NEdges != 13 {
		t.Errorf("nEdges is %d, want 13", m.NEdges)
	}
	if m.NVertices != 13 {
		t.Errorf("nVertices is %d, want 13", m.NVertices)
	}
	if x := m.XCell[0]; x != -120.0e3 {
		t.Errorf("xCell[0] is %g, want -120e3", x)
	}
	if y := m.YCell[11]; y != 55.0e3 {
		t.Errorf("yCell[11] is %g, want 55e3", y)
	}
	if x := floats.Min(m.XEdge); x != -125.0e3 {
		t.Errorf("min xEdge is %g, want -125e3", x)
	}
}

func TestLoadMeshMissingCoordinate(t *testing.T) {
	dir, err := ioutil.TempDir("", "oceaninit")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "mesh.nc")

	h := cdf.NewHeader([]string{"nCells", "nEdges", "nVertices"}, []int{2, 2, 2})
	for _, v := range []string{"xCell", "yCell"} {
		h.AddVariable(v, []string{"nCells"}, []float64{0})
	}
	for _, v := range []string{"xEdge", "yEdge"} {
		h.AddVariable(v, []string{"nEdges"}, []float64{0})
	}
	h.Define()
	w, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cdf.Create(w, h); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	_, err = LoadMesh(r)
	if err == nil {
		t.Fatal("want an error for a mesh without vertex coordinates")
	}
	if !strings.Contains(err.Error(), "xVertex") {
		t.Errorf("error %q does not name the missing variable", err)
	}
}

func TestLoadMeshRecordDimension(t *testing.T) {
	dir, err := ioutil.TempDir("", "oceaninit")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "mesh.nc")

	h := cdf.NewHeader([]string{"frame", "nCells", "nEdges", "nVertices"}, []int{0, 2, 2, 2})
	h.Define()
	w, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cdf.Create(w, h); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	_, err = LoadMesh(r)
	if err == nil {
		t.Fatal("want an error for a record dimension not named Time")
	}
	if !strings.Contains(err.Error(), "frame") {
		t.Errorf("error %q does not name the record dimension", err)
	}
}

func TestNormalize(t *testing.T) {
	dir, err := ioutil.TempDir("", "oceaninit")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "mesh.nc")
	const dx = 10.0e3
	writeTestMesh(t, path, 4, 3, dx, -120.0e3, 35.0e3)

	m := loadTestMesh(t, path)
	m.Normalize()

	if x := floats.Min(m.XEdge); x != 0 {
		t.Errorf("min xEdge is %g after normalization, want 0", x)
	}
	if y := floats.Min(m.YEdge); y != 0 {
		t.Errorf("min yEdge is %g after normalization, want 0", y)
	}
	// Vertices sit half a cell below the lowest edge in this mesh.
	if y := floats.Min(m.YVertex); !floats.EqualWithinAbsOrRel(y, -0.5*dx, tolerance, tolerance) {
		t.Errorf("min yVertex is %g after normalization, want %g", y, -0.5*dx)
	}
	// Distances are preserved.
	if d := m.XCell[1] - m.XCell[0]; !floats.EqualWithinAbsOrRel(d, dx, tolerance, tolerance) {
		t.Errorf("cell spacing is %g after normalization, want %g", d, dx)
	}
	if d := m.XCell[0] - m.XEdge[0]; !floats.EqualWithinAbsOrRel(d, 0.5*dx, tolerance, tolerance) {
		t.Errorf("cell to edge offset is %g after normalization, want %g", d, 0.5*dx)
	}
}
