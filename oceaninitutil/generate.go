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

package oceaninitutil

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/oceaninit"
)

// Log is the logger the generator reports progress to.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Generate reads the mesh in inputFile and writes the internal tide
// initial condition to outputFile, with nVertLevels vertical levels
// reaching down to maxDepth meters away from the ridge.
func Generate(inputFile, outputFile string, nVertLevels int, maxDepth float64) error {
	start := time.Now()

	r, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("oceaninit: opening mesh file: %v", err)
	}
	defer r.Close()
	m, err := oceaninit.LoadMesh(r)
	if err != nil {
		return err
	}
	m.Normalize()
	Log.WithFields(logrus.Fields{
		"file":     inputFile,
		"cells":    m.NCells,
		"edges":    m.NEdges,
		"vertices": m.NVertices,
	}).Info("loaded mesh")

	stage := time.Now()
	ref := oceaninit.NewReferenceColumn(maxDepth, nVertLevels)
	scenario := oceaninit.NewInternalTide(m, maxDepth)
	state, err := oceaninit.Generate(m, ref, scenario)
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"scenario": scenario.Name(),
		"levels":   nVertLevels,
		"elapsed":  time.Since(stage),
	}).Info("created and initialized variables")

	stage = time.Now()
	w, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("oceaninit: creating output file: %v", err)
	}
	if err := state.Write(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("oceaninit: closing output file: %v", err)
	}
	Log.WithFields(logrus.Fields{
		"file":    outputFile,
		"elapsed": time.Since(stage),
	}).Info("finalized and wrote file")

	Log.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
	}).Info("done")
	return nil
}
