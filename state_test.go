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
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestGenerate(t *testing.T) {
	m := testTideMesh()
	ref := NewReferenceColumn(5000, 10)
	scenario := NewInternalTide(m, 5000)

	s, err := Generate(m, ref, scenario)
	if err != nil {
		t.Fatal(err)
	}

	// The ridge crest is at the domain midpoint, cell 5, where the
	// 4000 m column fills 8 of the 10 reference layers exactly.
	if l := s.MaxLevelCell.Get(5); l != 8 {
		t.Errorf("maxLevelCell at the ridge crest is %d, want 8", l)
	}
	if d := s.BottomDepth.Get(5); d != 4000 {
		t.Errorf("bottomDepth at the ridge crest is %g m, want 4000", d)
	}

	for i := 0; i < m.NCells; i++ {
		wantBottom := scenario.BottomDepth(m.XCell[i], m.YCell[i])
		wantSSH := scenario.SSH(m.XCell[i], m.YCell[i])
		if d := s.BottomDepth.Get(i); d != wantBottom {
			t.Errorf("cell %d: bottomDepth is %g m, want %g", i, d, wantBottom)
		}
		if d := s.BottomDepthObserved.Get(i); d != wantBottom {
			t.Errorf("cell %d: bottomDepthObserved is %g m, want %g", i, d, wantBottom)
		}
		if h := s.SSH.Get(i); h != wantSSH {
			t.Errorf("cell %d: ssh is %g m, want %g", i, h, wantSSH)
		}

		maxLevel := s.MaxLevelCell.Get(i)
		if maxLevel < 1 || maxLevel > ref.Levels() {
			t.Fatalf("cell %d: maxLevelCell is %d, want between 1 and %d", i, maxLevel, ref.Levels())
		}

		// The active column spans the water between the free surface
		// and the bottom; at rest it matches the reference column with
		// the free surface removed.
		var active, resting float64
		for k := 0; k < maxLevel; k++ {
			active += s.LayerThickness.Get(0, i, k)
			resting += s.RestingThickness.Get(0, i, k)
		}
		if want := wantBottom + wantSSH; !floats.EqualWithinAbsOrRel(active, want, tolerance, tolerance) {
			t.Errorf("cell %d: active thicknesses sum to %g m, want %g", i, active, want)
		}
		if !floats.EqualWithinAbsOrRel(resting, wantBottom, tolerance, tolerance) {
			t.Errorf("cell %d: resting thicknesses sum to %g m, want %g", i, resting, wantBottom)
		}
		if th := s.RestingThickness.Get(0, i, 0); th != ref.LayerThickness[0] {
			t.Errorf("cell %d: surface resting thickness is %g m, want %g", i, th, ref.LayerThickness[0])
		}

		for k := 0; k < maxLevel; k++ {
			z := s.ZMid.Get(0, i, k)
			density := s.Density.Get(0, i, k)
			salinity := s.Salinity.Get(0, i, k)
			temperature := s.Temperature.Get(0, i, k)
			if want := scenario.Density(z); !floats.EqualWithinAbsOrRel(density, want, tolerance, tolerance) {
				t.Errorf("cell %d level %d: density is %g, want %g", i, k, density, want)
			}
			if salinity != 35 {
				t.Errorf("cell %d level %d: salinity is %g PSU, want 35", i, k, salinity)
			}
			if want := eosTref - (density-eosDensityRef)/eosAlpha; !floats.EqualWithinAbsOrRel(temperature, want, tolerance, tolerance) {
				t.Errorf("cell %d level %d: temperature is %g degC, want %g", i, k, temperature, want)
			}
		}
		for k := maxLevel; k < ref.Levels(); k++ {
			for _, a := range []struct {
				name string
				got  float64
			}{
				{"temperature", s.Temperature.Get(0, i, k)},
				{"salinity", s.Salinity.Get(0, i, k)},
				{"zMid", s.ZMid.Get(0, i, k)},
				{"layerThickness", s.LayerThickness.Get(0, i, k)},
				{"restingThickness", s.RestingThickness.Get(0, i, k)},
				{"density", s.Density.Get(0, i, k)},
			} {
				if a.got != fillValue {
					t.Errorf("cell %d level %d: inactive %s is %g, want %g", i, k, a.name, a.got, fillValue)
				}
			}
		}
	}

	for _, a := range []struct {
		name  string
		data  []float64
		shape []int
	}{
		{"surfaceStress", s.SurfaceStress.Elements, []int{1, m.NCells, 10}},
		{"atmosphericPressure", s.AtmosphericPressure.Elements, []int{1, m.NCells, 10}},
		{"boundaryLayerDepth", s.BoundaryLayerDepth.Elements, []int{1, m.NCells, 10}},
		{"fCell", s.FCell.Elements, []int{m.NCells, 10}},
		{"fEdge", s.FEdge.Elements, []int{m.NEdges, 10}},
		{"fVertex", s.FVertex.Elements, []int{m.NVertices, 10}},
		{"normalVelocity", s.NormalVelocity.Elements, []int{1, m.NEdges, 10}},
	} {
		n := 1
		for _, d := range a.shape {
			n *= d
		}
		if len(a.data) != n {
			t.Errorf("%s has %d elements, want %d", a.name, len(a.data), n)
		}
		for j, v := range a.data {
			if v != 0 {
				t.Errorf("%s element %d is %g, want 0", a.name, j, v)
				break
			}
		}
	}
}

func TestGenerateShallowError(t *testing.T) {
	m := testTideMesh()
	// Two 4001 m layers put the first interface below the ridge crest.
	ref := NewReferenceColumn(8002, 2)
	_, err := Generate(m, ref, NewInternalTide(m, 5000))
	if err == nil {
		t.Fatal("want an error when the bathymetry does not reach below the first layer interface")
	}
	if !strings.Contains(err.Error(), "cell 5") {
		t.Errorf("error %q does not identify the offending cell", err)
	}
}
