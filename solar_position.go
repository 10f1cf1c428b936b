package main

import "math"

/*
Sun altitude and azimuth series over one non-leap year at a fixed
interval, from closed-form orbital elements. Accuracy is a few tenths
of a degree, sufficient for irradiance transposition.
*/

/*
Solar position series for every step of the year.

	Args:
	    phi_loc: latitude, rad
	    lambda_loc: longitude, rad
	    lambda_loc_mer: longitude of the time zone standard meridian, rad
	    year: calendar year of the series (non-leap formulas)
	    itv: time step of the series

	Returns:
	    (1) sun altitude, rad, [n], negative below the horizon
	    (2) sun azimuth, rad, [n], south = 0, west positive, NaN when
	        the sun is at the zenith
*/
func calc_solar_position(phi_loc float64, lambda_loc float64, lambda_loc_mer float64, year int, itv Interval) ([]float64, []float64) {

	// day of year per step (1/1 = 1), [n]
	d_ns := _get_d_ns(itv)

	// years since 1968
	n := year - 1968

	// perihelion passage day offset, d
	d_0 := _get_d_0(n)

	// mean anomaly, rad, [n]
	m_ns := _get_m_ns(d_ns, d_0)

	// angle between perihelion and winter solstice, rad, [n]
	epsilon_ns := _get_epsilon_ns(m_ns, n)

	// true anomaly, rad, [n]
	v_ns := _get_v_ns(m_ns)

	// equation of time, rad, [n]
	e_t_ns := _get_e_t_ns(m_ns, epsilon_ns, v_ns)

	// solar declination, rad, [n]
	delta_ns := _get_delta_ns(epsilon_ns, v_ns)

	// local standard time per step, h, [n]
	t_m_ns := _get_t_m_ns(itv)

	// hour angle, rad, [n]
	omega_ns := _get_omega_ns(t_m_ns, lambda_loc, lambda_loc_mer, e_t_ns)

	// sun altitude, rad, [n]
	h_sun_ns := _get_h_sun_ns(phi_loc, omega_ns, delta_ns)

	// sun azimuth, rad, [n]
	a_sun_ns := _get_a_sun_ns(phi_loc, delta_ns, omega_ns, h_sun_ns)

	return h_sun_ns, a_sun_ns
}

/*
Day of year for every step.

	Args:
	    itv: time step of the series

	Returns:
	    day of year (1/1 = 1), d, [n]
*/
func _get_d_ns(itv Interval) []float64 {
	n_hour := itv.get_n_hour()

	d_ns := make([]float64, 365*24*n_hour)
	off := 0
	for i := 0; i < 365; i++ {
		dd := float64(i + 1)
		for j := 0; j < 24*n_hour; j++ {
			d_ns[off] = dd
			off++
		}
	}
	return d_ns
}

/*
Perihelion passage day, referenced to noon 1968-01-01 ephemeris time.

	Args:
	    n: years since 1968

	Returns:
	    perihelion passage day offset, d
*/
func _get_d_0(n int) float64 {
	return 3.71 + 0.2596*float64(n) - float64(int((n+3)/4))
}

/*
Mean anomaly for every step.

	Args:
	    d_ns: day of year, d, [n]
	    d_0: perihelion passage day offset, d

	Returns:
	    mean anomaly, rad, [n]
*/
func _get_m_ns(d_ns []float64, d_0 float64) []float64 {
	// anomalistic year, d
	const d_ay = 365.2596

	m_ns := make([]float64, len(d_ns))
	for i, d := range d_ns {
		m_ns[i] = 2.0 * math.Pi * (d - d_0) / d_ay
	}
	return m_ns
}

/*
Angle between perihelion and winter solstice for every step.

	Args:
	    m_ns: mean anomaly, rad, [n]
	    n: years since 1968

	Returns:
	    perihelion-solstice angle, rad, [n]
*/
func _get_epsilon_ns(m_ns []float64, n int) []float64 {
	epsilon_ns := make([]float64, len(m_ns))
	for i, m := range m_ns {
		epsilon_ns[i] = (12.3901 + 0.0172*(float64(n)+m/(2.0*math.Pi))) * math.Pi / 180.0
	}
	return epsilon_ns
}

/*
True anomaly for every step.

	Args:
	    m_ns: mean anomaly, rad, [n]

	Returns:
	    true anomaly, rad, [n]
*/
func _get_v_ns(m_ns []float64) []float64 {
	v_ns := make([]float64, len(m_ns))
	for i, m := range m_ns {
		v_ns[i] = m + (1.914*math.Sin(m)+0.02*math.Sin(2.0*m))*math.Pi/180.0
	}
	return v_ns
}

/*
Equation of time for every step.

	Args:
	    m_ns: mean anomaly, rad, [n]
	    epsilon_ns: perihelion-solstice angle, rad, [n]
	    v_ns: true anomaly, rad, [n]

	Returns:
	    equation of time, rad, [n]
*/
func _get_e_t_ns(m_ns []float64, epsilon_ns []float64, v_ns []float64) []float64 {
	e_t_ns := make([]float64, len(m_ns))
	for i, m := range m_ns {
		ve := v_ns[i] + epsilon_ns[i]
		e_t_ns[i] = (m - v_ns[i]) - math.Atan(0.043*math.Sin(2.0*ve)/(1.0-0.043*math.Cos(2.0*ve)))
	}
	return e_t_ns
}

/*
Solar declination for every step.

	Args:
	    epsilon_ns: perihelion-solstice angle, rad, [n]
	    v_ns: true anomaly, rad, [n]

	Returns:
	    declination, rad, [n], between -23.44 and +23.44 degree
*/
func _get_delta_ns(epsilon_ns []float64, v_ns []float64) []float64 {
	// declination at the northern winter solstice, rad
	const delta_0 = -23.4393 * math.Pi / 180.0

	delta_ns := make([]float64, len(epsilon_ns))
	for i, epsilon := range epsilon_ns {
		delta_ns[i] = math.Asin(math.Cos(v_ns[i]+epsilon) * math.Sin(delta_0))
	}
	return delta_ns
}

/*
Local standard time for every step.

	Args:
	    itv: time step of the series

	Returns:
	    local standard time, h, [n], 0 to 24 repeating daily
*/
func _get_t_m_ns(itv Interval) []float64 {
	n_hour := itv.get_n_hour()
	dt := itv.get_time()

	day := make([]float64, 24*n_hour)
	for i := range day {
		day[i] = float64(i) * dt
	}

	year := make([]float64, 365*24*n_hour)
	off := 0
	for d := 0; d < 365; d++ {
		copy(year[off:off+24*n_hour], day)
		off += 24 * n_hour
	}
	return year
}

/*
Hour angle for every step.

	Args:
	    t_m_ns: local standard time, h, [n]
	    lambda_loc: longitude, rad
	    lambda_loc_mer: standard meridian longitude, rad
	    e_t_ns: equation of time, rad, [n]

	Returns:
	    hour angle, rad, [n]
*/
func _get_omega_ns(t_m_ns []float64, lambda_loc float64, lambda_loc_mer float64, e_t_ns []float64) []float64 {
	omega_ns := make([]float64, len(t_m_ns))
	for i, t_m := range t_m_ns {
		omega_ns[i] = (t_m-12.0)*15.0*math.Pi/180.0 + (lambda_loc - lambda_loc_mer) + e_t_ns[i]
	}
	return omega_ns
}

/*
Sun altitude for every step.

	Args:
	    phi_loc: latitude, rad
	    omega_ns: hour angle, rad, [n]
	    delta_ns: declination, rad, [n]

	Returns:
	    sun altitude, rad, [n], negative when the sun is below the horizon
*/
func _get_h_sun_ns(phi_loc float64, omega_ns []float64, delta_ns []float64) []float64 {
	sin_phi := math.Sin(phi_loc)
	cos_phi := math.Cos(phi_loc)

	h_sun_ns := make([]float64, len(omega_ns))
	for i, omega := range omega_ns {
		h_sun_ns[i] = math.Asin(sin_phi*math.Sin(delta_ns[i]) + cos_phi*math.Cos(delta_ns[i])*math.Cos(omega))
	}
	return h_sun_ns
}

/*
Sun azimuth for every step.

	Args:
	    phi_loc: latitude, rad
	    delta_ns: declination, rad, [n]
	    omega_ns: hour angle, rad, [n]
	    h_sun_ns: sun altitude, rad, [n]

	Returns:
	    sun azimuth, rad, [n], south = 0, west positive; NaN when the
	    sun is exactly at the zenith, where the azimuth is undefined
*/
func _get_a_sun_ns(phi_loc float64, delta_ns []float64, omega_ns []float64, h_sun_ns []float64) []float64 {
	sin_phi := math.Sin(phi_loc)
	cos_phi := math.Cos(phi_loc)

	a_sun_ns := make([]float64, len(h_sun_ns))
	for i, h_sun := range h_sun_ns {
		if h_sun == math.Pi/2.0 {
			a_sun_ns[i] = math.NaN()
			continue
		}
		sin_a := math.Cos(delta_ns[i]) * math.Sin(omega_ns[i]) / math.Cos(h_sun)
		cos_a := (math.Sin(h_sun)*sin_phi - math.Sin(delta_ns[i])) / (math.Cos(h_sun) * cos_phi)
		a_sun_ns[i] = math.Atan2(sin_a, cos_a)
	}
	return a_sun_ns
}

/*
Altitude/azimuth series converted to the zenith/azimuth convention of
the irradiance functions.

	Args:
	    h_sun_ns: sun altitude, rad, [n]
	    a_sun_ns: sun azimuth, rad, south = 0, west positive, [n]

	Returns:
	    (1) solar zenith angle, degree, [n]
	    (2) solar azimuth angle, degree, north = 0, east = 90, [n]
*/
func sun_to_zenith_azimuth(h_sun_ns []float64, a_sun_ns []float64) ([]float64, []float64) {
	zenith_ns := make([]float64, len(h_sun_ns))
	azimuth_ns := make([]float64, len(h_sun_ns))
	for i, h_sun := range h_sun_ns {
		zenith_ns[i] = 90.0 - h_sun*to_deg
		azimuth_ns[i] = math.Mod(a_sun_ns[i]*to_deg+180.0, 360.0)
	}
	return zenith_ns, azimuth_ns
}
