package main

import "log"

/*
Annual yield calculation: weather and solar position in, bifacial
plane-of-array irradiance, cell temperature and maximum power point
per step out.
*/

// Row geometry of the simulated array.
type ArrayGeometry struct {
	surface_tilt    float64 // front surface tilt, degree, 0 to 90
	surface_azimuth float64 // azimuth the front surface faces, degree
	gcr             float64 // ground coverage ratio
	height          float64 // row center height above ground, m
	pitch           float64 // row spacing, m
	albedo          float64 // ground reflectance, 0 to 1
	max_rows        int     // rows per side in the ground-to-sky view factor
	npoints         int     // view factor integration grid size
}

/*
Annual simulation over every step of the weather series.

	Args:
	    w: weather series
	    site: array location
	    year: calendar year of the series
	    geometry: array row geometry
	    module: module reference parameters

	Returns:
	    per-step results, or an error when the diode solver fails on a
	    step with both methods
*/
func calc(w *Weather, site Site, year int, geometry *ArrayGeometry, module *ModuleParameters) (*Recorder, error) {
	itv := w._itv
	n := w.number_of_data()

	log.Printf("calculate solar position")
	phi_loc, lambda_loc := site.get_phi_loc_and_lambda_loc()
	h_sun_ns, a_sun_ns := calc_solar_position(phi_loc, lambda_loc, site.get_lambda_loc_mer(), year, itv)
	zenith_ns, azimuth_ns := sun_to_zenith_azimuth(h_sun_ns, a_sun_ns)

	// incidence angle modifier series for both sides
	var iam_front, iam_back []float64
	if module.b0 > 0.0 {
		iam_front = make([]float64, n)
		iam_back = make([]float64, n)
		backside_tilt := 180.0 - geometry.surface_tilt
		backside_azimuth := geometry.surface_azimuth + 180.0
		for i := 0; i < n; i++ {
			iam_front[i] = iam_ashrae(aoi(geometry.surface_tilt, geometry.surface_azimuth, zenith_ns[i], azimuth_ns[i]), module.b0, module.max_aoi)
			iam_back[i] = iam_ashrae(aoi(backside_tilt, backside_azimuth, zenith_ns[i], azimuth_ns[i]), module.b0, module.max_aoi)
		}
	}

	log.Printf("calculate plane of array irradiance")
	irr := get_irradiance(
		geometry.surface_tilt, geometry.surface_azimuth,
		zenith_ns, azimuth_ns,
		geometry.gcr, geometry.height, geometry.pitch,
		w.ghi_ns, w.dhi_ns, w.dni_ns,
		geometry.albedo, iam_front, iam_back,
		module.bifaciality, module.shade_factor, module.transmission_factor,
		geometry.max_rows, geometry.npoints)

	log.Printf("solve maximum power point per step")
	r := NewRecorder(n, year, itv)
	for i := 0; i < n; i++ {
		r.h_sun_ns[i] = h_sun_ns[i] * to_deg
		r.a_sun_ns[i] = a_sun_ns[i] * to_deg
		r.ghi_ns[i] = w.ghi_ns[i]
		r.dhi_ns[i] = w.dhi_ns[i]
		r.dni_ns[i] = w.dni_ns[i]

		poa_global := irr.poa_global.AtVec(i)
		r.poa_front_ns[i] = irr.poa_front.AtVec(i)
		r.poa_back_ns[i] = irr.poa_back.AtVec(i)
		r.poa_global_ns[i] = poa_global

		if poa_global <= 0.0 {
			r.temp_cell_ns[i] = w.temp_air_ns[i]
			continue
		}

		temp_cell := sapm_cell(poa_global, w.temp_air_ns[i], w.wind_speed_ns[i])
		r.temp_cell_ns[i] = temp_cell

		i_l, i_o, r_s, r_sh, n_ns_vth := calcparams_desoto(poa_global, temp_cell, module)

		i_mp, v_mp, p_mp, err := fast_mppt(i_l, i_o, r_s, r_sh, n_ns_vth)
		if err != nil {
			// retry with the bracketed solver before giving up
			i_mp, v_mp, p_mp, err = slow_mppt(i_l, i_o, r_s, r_sh, n_ns_vth)
			if err != nil {
				return nil, err
			}
		}
		r.i_mp_ns[i] = i_mp
		r.v_mp_ns[i] = v_mp
		r.p_mp_ns[i] = p_mp
	}

	return r, nil
}
