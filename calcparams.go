package main

import "math"

/*
Translation of reference single-diode parameters to operating
conditions after De Soto et al. (2006).
*/

// Boltzmann constant over elementary charge, eV/K
const _boltzmann_ev = 8.617332478e-05

// Reference single-diode parameters of a module at standard test
// conditions (1000 W/m2, 25 degree C).
type ModuleParameters struct {
	alpha_sc float64 // short-circuit current temperature coefficient, A/K
	a_ref    float64 // modified ideality factor n*Ns*Vth at reference, V
	i_l_ref  float64 // light-generated current at reference, A
	i_o_ref  float64 // diode saturation current at reference, A
	r_sh_ref float64 // shunt resistance at reference, ohm
	r_s      float64 // series resistance, ohm

	// bifacial combination factors
	bifaciality         float64 // back side over front side efficiency
	shade_factor        float64 // back side rack shading loss, negative
	transmission_factor float64 // back side transmission loss, negative or 0

	// ASHRAE incidence angle modifier
	b0      float64 // modifier coefficient
	max_aoi float64 // cutoff incidence angle, degree
}

/*
Single-diode parameters at the given effective irradiance and cell
temperature.

	Args:
	    effective_irradiance: irradiance reaching the cells, W/m2
	    temp_cell: cell temperature, degree C
	    params: reference parameters at standard test conditions

	Returns:
	    (1) light-generated current IL, A
	    (2) diode saturation current I0, A
	    (3) series resistance Rs, ohm
	    (4) shunt resistance Rsh, ohm
	    (5) modified ideality factor nNsVth, V

	Notes:
	    Band gap EgRef = 1.121 eV with temperature coefficient
	    dEgdT = -0.0002677 1/K (crystalline silicon). The shunt
	    resistance scales inversely with irradiance and is infinite in
	    the dark.
*/
func calcparams_desoto(effective_irradiance float64, temp_cell float64, params *ModuleParameters) (float64, float64, float64, float64, float64) {
	const (
		eg_ref    = 1.121
		d_egd_t   = -0.0002677
		irrad_ref = 1000.0
		temp_ref  = 25.0
	)

	t_ref := temp_ref + 273.15
	t := temp_cell + 273.15

	e_g := eg_ref * (1.0 + d_egd_t*(t-t_ref))
	n_ns_vth := params.a_ref * (t / t_ref)
	i_l := effective_irradiance / irrad_ref * (params.i_l_ref + params.alpha_sc*(t-t_ref))
	i_o := params.i_o_ref * math.Pow(t/t_ref, 3.0) *
		math.Exp(eg_ref/(_boltzmann_ev*t_ref)-e_g/(_boltzmann_ev*t))

	r_sh := math.Inf(1)
	if effective_irradiance > 0.0 {
		r_sh = params.r_sh_ref * (irrad_ref / effective_irradiance)
	}

	return i_l, i_o, params.r_s, r_sh, n_ns_vth
}
