package main

import "math"

/*
Module and cell temperature from the Sandia Array Performance Model
(King et al., 2004).
*/

// SAPM open rack, glass/cell/polymer sheet construction.
const (
	_sapm_a       = -3.47
	_sapm_b       = -0.0594
	_sapm_delta_t = 3.0
)

/*
Back-of-module temperature.

	Args:
	    poa_global: plane-of-array irradiance, W/m2
	    temp_air: ambient air temperature, degree C
	    wind_speed: wind speed at 10 m, m/s

	Returns:
	    module back surface temperature, degree C
*/
func sapm_module(poa_global float64, temp_air float64, wind_speed float64) float64 {
	return poa_global*math.Exp(_sapm_a+_sapm_b*wind_speed) + temp_air
}

/*
Cell temperature.

	Args:
	    poa_global: plane-of-array irradiance, W/m2
	    temp_air: ambient air temperature, degree C
	    wind_speed: wind speed at 10 m, m/s

	Returns:
	    cell temperature, degree C

	Notes:
	    The cell runs delta_t degrees hotter than the module back at
	    1000 W/m2, scaled linearly with irradiance; at zero irradiance
	    both equal the ambient temperature.
*/
func sapm_cell(poa_global float64, temp_air float64, wind_speed float64) float64 {
	tm := sapm_module(poa_global, temp_air, wind_speed)
	return tm + poa_global/1000.0*_sapm_delta_t
}
