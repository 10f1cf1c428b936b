package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Irradiance on the front and back surfaces of an infinite row of
single-axis or fixed-tilt collectors, following Marion et al. (2017)
and Mikofski et al. (2018). The rows are assumed long enough that edge
effects vanish and opaque apart from an explicit transmission factor.
*/

// Plane-of-array irradiance series for one side of the collector, [n].
type PoaResult struct {
	poa_global         *mat.VecDense // total plane-of-array irradiance, W/m2
	poa_direct         *mat.VecDense // direct beam component, W/m2
	poa_diffuse        *mat.VecDense // total diffuse component, W/m2
	poa_ground_diffuse *mat.VecDense // ground-reflected diffuse component, W/m2
	poa_sky_diffuse    *mat.VecDense // sky diffuse component, W/m2
}

// Bifacial irradiance series for both sides of the collector, [n].
type IrradianceResult struct {
	poa_global *mat.VecDense // bifacial equivalent irradiance, W/m2
	poa_front  *mat.VecDense // front side plane-of-array irradiance, W/m2
	poa_back   *mat.VecDense // back side plane-of-array irradiance, W/m2
	front      *PoaResult
	back       *PoaResult
}

/*
Rotation of the row cross-section from horizontal, signed by the side
of the axis the surface faces.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    axis_azimuth: azimuth of the row axis, degree, or NaN for fixed
	        tilt where the axis is taken perpendicular to surface_azimuth

	Returns:
	    rotation angle, degree, signed
*/
func _tilt_to_rotation(surface_tilt float64, surface_azimuth float64, axis_azimuth float64) float64 {
	if math.IsNaN(axis_azimuth) {
		axis_azimuth = math.Mod(surface_azimuth+90.0+360.0, 360.0)
	}
	if math.Mod(surface_azimuth-axis_azimuth+360.0, 360.0) < 180.0 {
		return surface_tilt
	}
	return -surface_tilt
}

/*
Ground-to-sky view factor averaged over the row-to-row gap.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    gcr: ground coverage ratio
	    height: height of the row center above the ground, m
	    pitch: row spacing, m
	    axis_azimuth: azimuth of the row axis, degree, or NaN for fixed tilt
	    max_rows: rows accounted for on each side of a ground point
	    npoints: integration grid size across the gap

	Returns:
	    average fraction of sky visible from the ground, 0 to 1
*/
func _vf_ground_sky_integ(surface_tilt float64, surface_azimuth float64, gcr float64, height float64, pitch float64, axis_azimuth float64, max_rows int, npoints int) float64 {
	rotation := _tilt_to_rotation(surface_tilt, surface_azimuth, axis_azimuth)
	z := linspace(0.0, 1.0, npoints)
	fz := make([]float64, npoints)
	for i, x := range z {
		fz[i] = _vf_ground_sky_2d(x, rotation, gcr, pitch, height, max_rows)
	}
	return trapz(z, fz)
}

/*
Row-to-sky view factors averaged over the shaded and unshaded segments
of the row slant.

	Args:
	    f_x: shaded fraction of the slant height, 0 to 1
	    surface_tilt: surface tilt from horizontal, degree
	    gcr: ground coverage ratio
	    npoints: integration grid size per segment

	Returns:
	    (1) average view factor of the shaded segment [0, f_x]
	    (2) average view factor of the unshaded segment [f_x, 1]

	Notes:
	    The pointwise view factor is
	    0.5 * (cos(masking_angle) + cos(surface_tilt)). When a segment
	    has zero length the trapezoid average degenerates to 0; the
	    composition in get_irradiance_poa weights that segment by zero.
*/
func _vf_row_sky_integ(f_x float64, surface_tilt float64, gcr float64, npoints int) (float64, float64) {
	cst := cosd(surface_tilt)
	point_vf := func(x float64) float64 {
		return 0.5 * (cosd(masking_angle(surface_tilt, gcr, x)) + cst)
	}

	x := linspace(0.0, f_x, npoints)
	y := make([]float64, npoints)
	for i, xx := range x {
		y[i] = point_vf(xx)
	}
	vf_shade_sky := trapz(x, y)

	x = linspace(f_x, 1.0, npoints)
	for i, xx := range x {
		y[i] = point_vf(xx)
	}
	vf_noshade_sky := trapz(x, y)

	return vf_shade_sky, vf_noshade_sky
}

/*
View factor from a point on the row slant to the unobstructed ground
in front of the row.

	Args:
	    x: normalized position on the row slant, 0 at the bottom edge
	    surface_tilt: surface tilt from horizontal, degree
	    gcr: ground coverage ratio

	Returns:
	    view factor to the visible ground strip, 0 to 1
*/
func _vf_row_ground(x float64, surface_tilt float64, gcr float64) float64 {
	cst := cosd(surface_tilt)
	psi := ground_angle(surface_tilt, gcr, x)
	return 0.5 * (cosd(psi) - cst)
}

/*
Row-to-ground view factors averaged over the shaded and unshaded
segments of the row slant.

	Args:
	    f_x: shaded fraction of the slant height, 0 to 1
	    surface_tilt: surface tilt from horizontal, degree
	    gcr: ground coverage ratio
	    npoints: integration grid size per segment

	Returns:
	    (1) average view factor of the shaded segment [0, f_x]
	    (2) average view factor of the unshaded segment [f_x, 1]
*/
func _vf_row_ground_integ(f_x float64, surface_tilt float64, gcr float64, npoints int) (float64, float64) {
	x := linspace(0.0, f_x, npoints)
	y := make([]float64, npoints)
	for i, xx := range x {
		y[i] = _vf_row_ground(xx, surface_tilt, gcr)
	}
	f_gnd_pv_shade := trapz(x, y)

	x = linspace(f_x, 1.0, npoints)
	for i, xx := range x {
		y[i] = _vf_row_ground(xx, surface_tilt, gcr)
	}
	f_gnd_pv_noshade := trapz(x, y)

	return f_gnd_pv_shade, f_gnd_pv_noshade
}

/*
Fraction of the row slant height shaded by the row in front of it.

	Args:
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    gcr: ground coverage ratio

	Returns:
	    shaded fraction measured from the bottom edge, 0 to 1

	Notes:
	    When the sun is behind the surface (angle of incidence >= 90
	    degrees) the whole slant counts as shaded so that the direct
	    component vanishes.
*/
func shaded_fraction(solar_zenith float64, solar_azimuth float64, surface_tilt float64, surface_azimuth float64, gcr float64) float64 {
	tan_phi := _solar_projection_tangent(solar_zenith, solar_azimuth, surface_azimuth)
	x := gcr * (sind(surface_tilt)*tan_phi + cosd(surface_tilt))
	var f_x float64
	if x != 0.0 {
		f_x = 1.0 - 1.0/x
	} else {
		f_x = math.Inf(-1)
	}
	if aoi(surface_tilt, surface_azimuth, solar_zenith, solar_azimuth) >= 90.0 {
		f_x = 1.0
	}
	return clip(f_x, 0.0, 1.0)
}

/*
Ground irradiance reduced for the row shadows, averaged over the
row-to-row gap.

	Args:
	    poa_ground: ground-reflected irradiance for unobstructed ground, W/m2
	    f_gnd_beam: unshaded fraction of the ground, 0 to 1
	    df: diffuse fraction, DHI / GHI
	    vf_gnd_sky: average ground-to-sky view factor, 0 to 1

	Returns:
	    average irradiance from the ground between rows, W/m2

	Notes:
	    A non-finite diffuse fraction only arises from GHI = 0, where the
	    ground term is zero regardless; it is replaced with 0.
*/
func _poa_ground_shadows(poa_ground float64, f_gnd_beam float64, df float64, vf_gnd_sky float64) float64 {
	if math.IsNaN(df) || math.IsInf(df, 0) {
		df = 0.0
	}
	return poa_ground * (f_gnd_beam*(1.0-df) + df*vf_gnd_sky)
}

/*
Sky diffuse irradiance on the row, composed from the shaded and
unshaded segment view factors weighted by the shaded fraction.

	Args:
	    dhi: diffuse horizontal irradiance, W/m2
	    f_x: shaded fraction of the slant height, 0 to 1
	    vf_shade_sky: average row-to-sky view factor of the shaded segment
	    vf_noshade_sky: average row-to-sky view factor of the unshaded
	        segment

	Returns:
	    sky diffuse irradiance on the row, W/m2
*/
func _poa_sky_diffuse_pv(dhi float64, f_x float64, vf_shade_sky float64, vf_noshade_sky float64) float64 {
	return dhi * (f_x*vf_shade_sky + (1.0-f_x)*vf_noshade_sky)
}

/*
Ground-reflected irradiance on the row, composed from the shaded and
unshaded segment view factors weighted by the shaded fraction.

	Args:
	    poa_gnd_sky: average irradiance from the ground between rows, W/m2
	    f_x: shaded fraction of the slant height, 0 to 1
	    f_gnd_pv_shade: average row-to-ground view factor of the shaded
	        segment
	    f_gnd_pv_noshade: average row-to-ground view factor of the
	        unshaded segment

	Returns:
	    ground-reflected irradiance on the row, W/m2
*/
func _poa_ground_pv(poa_gnd_sky float64, f_x float64, f_gnd_pv_shade float64, f_gnd_pv_noshade float64) float64 {
	return poa_gnd_sky * (f_x*f_gnd_pv_shade + (1.0-f_x)*f_gnd_pv_noshade)
}

/*
Plane-of-array irradiance series on one side of the collector.

	Args:
	    surface_tilt: surface tilt from horizontal, degree; between 90
	        and 180 the surface faces downward (back side convention)
	    surface_azimuth: azimuth the surface faces, degree
	    solar_zenith: solar zenith angle, degree, [n]
	    solar_azimuth: solar azimuth angle, degree, [n]
	    gcr: ground coverage ratio
	    height: height of the row center above the ground, m
	    pitch: row spacing, m
	    ghi: global horizontal irradiance, W/m2, [n]
	    dhi: diffuse horizontal irradiance, W/m2, [n]
	    dni: direct normal irradiance, W/m2, [n]
	    albedo: ground reflectance, 0 to 1
	    iam: incidence angle modifier applied to the direct beam, [n],
	        nil for 1.0 everywhere
	    axis_azimuth: azimuth of the row axis, degree, NaN for fixed tilt
	    max_rows: rows accounted for on each side in the ground-to-sky
	        view factor
	    npoints: integration grid size for the view factor averages

	Returns:
	    plane-of-array irradiance series, [n]
*/
func get_irradiance_poa(
	surface_tilt float64, surface_azimuth float64,
	solar_zenith []float64, solar_azimuth []float64,
	gcr float64, height float64, pitch float64,
	ghi []float64, dhi []float64, dni []float64,
	albedo float64, iam []float64, axis_azimuth float64,
	max_rows int, npoints int,
) *PoaResult {
	n := len(solar_zenith)

	// geometry-only term, constant over the series
	vf_gnd_sky := _vf_ground_sky_integ(surface_tilt, surface_azimuth, gcr, height, pitch, axis_azimuth, max_rows, npoints)

	poa_global := make([]float64, n)
	poa_direct := make([]float64, n)
	poa_diffuse := make([]float64, n)
	poa_gnd_pv := make([]float64, n)
	poa_sky_pv := make([]float64, n)

	for i := 0; i < n; i++ {
		f_gnd_beam := _unshaded_ground_fraction(gcr, surface_tilt, surface_azimuth, solar_zenith[i], solar_azimuth[i])
		f_x := shaded_fraction(solar_zenith[i], solar_azimuth[i], surface_tilt, surface_azimuth, gcr)

		vf_shade_sky, vf_noshade_sky := _vf_row_sky_integ(f_x, surface_tilt, gcr, npoints)
		f_gnd_pv_shade, f_gnd_pv_noshade := _vf_row_ground_integ(f_x, surface_tilt, gcr, npoints)

		df := dhi[i] / ghi[i]

		poa_ground := get_ground_diffuse(surface_tilt, ghi[i], albedo)
		poa_gnd_sky := _poa_ground_shadows(poa_ground, f_gnd_beam, df, vf_gnd_sky)

		poa_sky_pv[i] = _poa_sky_diffuse_pv(dhi[i], f_x, vf_shade_sky, vf_noshade_sky)
		poa_gnd_pv[i] = _poa_ground_pv(poa_gnd_sky, f_x, f_gnd_pv_shade, f_gnd_pv_noshade)
		poa_diffuse[i] = poa_gnd_pv[i] + poa_sky_pv[i]

		poa_beam := beam_component(surface_tilt, surface_azimuth, solar_zenith[i], solar_azimuth[i], dni[i])
		iam_i := 1.0
		if iam != nil {
			iam_i = iam[i]
		}
		poa_direct[i] = poa_beam * (1.0 - f_x) * iam_i
		poa_global[i] = poa_direct[i] + poa_diffuse[i]
	}

	return &PoaResult{
		poa_global:         mat.NewVecDense(n, poa_global),
		poa_direct:         mat.NewVecDense(n, poa_direct),
		poa_diffuse:        mat.NewVecDense(n, poa_diffuse),
		poa_ground_diffuse: mat.NewVecDense(n, poa_gnd_pv),
		poa_sky_diffuse:    mat.NewVecDense(n, poa_sky_pv),
	}
}

/*
Bifacial plane-of-array irradiance series for both sides of the
collector, combined into a bifacial equivalent irradiance.

	Args:
	    surface_tilt: front surface tilt from horizontal, degree, 0 to 90
	    surface_azimuth: azimuth the front surface faces, degree
	    solar_zenith: solar zenith angle, degree, [n]
	    solar_azimuth: solar azimuth angle, degree, [n]
	    gcr: ground coverage ratio
	    height: height of the row center above the ground, m
	    pitch: row spacing, m
	    ghi: global horizontal irradiance, W/m2, [n]
	    dhi: diffuse horizontal irradiance, W/m2, [n]
	    dni: direct normal irradiance, W/m2, [n]
	    albedo: ground reflectance, 0 to 1
	    iam_front: incidence angle modifier series for the front side,
	        [n], nil for 1.0
	    iam_back: incidence angle modifier series for the back side,
	        [n], nil for 1.0
	    bifaciality: back side efficiency over front side efficiency
	    shade_factor: fraction of back side irradiance lost to rack
	        shading, negative, e.g. -0.02
	    transmission_factor: fraction of back side irradiance lost to
	        cell or module transmission, negative or 0
	    max_rows: rows accounted for in the ground-to-sky view factor
	    npoints: integration grid size for the view factor averages

	Returns:
	    combined and per-side irradiance series, [n]

	Notes:
	    The back surface is the same plane seen from behind, so its tilt
	    is 180 - surface_tilt and its azimuth is opposite the front
	    azimuth.
*/
func get_irradiance(
	surface_tilt float64, surface_azimuth float64,
	solar_zenith []float64, solar_azimuth []float64,
	gcr float64, height float64, pitch float64,
	ghi []float64, dhi []float64, dni []float64,
	albedo float64, iam_front []float64, iam_back []float64,
	bifaciality float64, shade_factor float64, transmission_factor float64,
	max_rows int, npoints int,
) *IrradianceResult {
	backside_tilt := 180.0 - surface_tilt
	backside_azimuth := math.Mod(surface_azimuth+180.0, 360.0)

	front := get_irradiance_poa(
		surface_tilt, surface_azimuth, solar_zenith, solar_azimuth,
		gcr, height, pitch, ghi, dhi, dni, albedo, iam_front,
		math.NaN(), max_rows, npoints)
	back := get_irradiance_poa(
		backside_tilt, backside_azimuth, solar_zenith, solar_azimuth,
		gcr, height, pitch, ghi, dhi, dni, albedo, iam_back,
		math.NaN(), max_rows, npoints)

	effects := (1.0 + shade_factor) * (1.0 + transmission_factor)

	n := len(solar_zenith)
	poa_global := mat.NewVecDense(n, nil)
	poa_global.AddScaledVec(front.poa_global, bifaciality*effects, back.poa_global)

	return &IrradianceResult{
		poa_global: poa_global,
		poa_front:  front.poa_global,
		poa_back:   back.poa_global,
		front:      front,
		back:       back,
	}
}
