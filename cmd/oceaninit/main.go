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

// Command oceaninit creates initial condition files for idealized
// MPAS-Ocean test cases.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/oceaninit/oceaninitutil"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
}

func main() {
	if err := oceaninitutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
