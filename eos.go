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

// linear equation of state coefficients, matching the ocean model
// namelist options config_eos_linear_*
const (
	eosAlpha      = 0.2    // kg/m³ per °C, thermal expansion
	eosBeta       = 0.8    // kg/m³ per PSU, haline contraction
	eosTref       = 10.0   // °C, reference temperature
	eosSref       = 35.0   // PSU, reference salinity
	eosDensityRef = 1000.0 // kg/m³, reference density
)

// TemperatureFromDensity inverts the ocean model's linear equation of
// state,
//
//	ρ = ρref − α (T − Tref) + β (S − Sref),
//
// returning the temperature [°C] that yields the given density [kg/m³]
// at the given salinity [PSU].
func TemperatureFromDensity(density, salinity float64) float64 {
	return eosTref - (density-eosDensityRef-eosBeta*(salinity-eosSref))/eosAlpha
}
