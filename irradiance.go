package main

import "math"

/*
Plane-of-array irradiance fragments used by the sheds model: incidence
angle, ground-reflected diffuse, beam transposition and the ASHRAE
incidence angle modifier.
*/

/*
Dot product of the solar unit vector and the surface normal.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree

	Returns:
	    cosine of the angle of incidence, negative when the sun is
	    behind the surface
*/
func aoi_projection(surface_tilt float64, surface_azimuth float64, solar_zenith float64, solar_azimuth float64) float64 {
	return cosd(surface_tilt)*cosd(solar_zenith) +
		sind(surface_tilt)*sind(solar_zenith)*cosd(solar_azimuth-surface_azimuth)
}

/*
Angle of incidence of the direct beam on the surface.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree

	Returns:
	    angle of incidence, degree, 0 to 180
*/
func aoi(surface_tilt float64, surface_azimuth float64, solar_zenith float64, solar_azimuth float64) float64 {
	return acosd(aoi_projection(surface_tilt, surface_azimuth, solar_zenith, solar_azimuth))
}

/*
Ground-reflected diffuse irradiance on the surface assuming an
unobstructed, uniformly bright ground.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    ghi: global horizontal irradiance, W/m2
	    albedo: ground reflectance, 0 to 1

	Returns:
	    ground-reflected irradiance on the surface, W/m2
*/
func get_ground_diffuse(surface_tilt float64, ghi float64, albedo float64) float64 {
	return ghi * albedo * (1.0 - cosd(surface_tilt)) * 0.5
}

/*
Direct beam irradiance on the surface.

	Args:
	    surface_tilt: surface tilt from horizontal, degree
	    surface_azimuth: azimuth the surface faces, degree
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree
	    dni: direct normal irradiance, W/m2

	Returns:
	    beam irradiance on the surface, W/m2, clipped at 0 when the sun
	    is behind the surface
*/
func beam_component(surface_tilt float64, surface_azimuth float64, solar_zenith float64, solar_azimuth float64, dni float64) float64 {
	return math.Max(dni*aoi_projection(surface_tilt, surface_azimuth, solar_zenith, solar_azimuth), 0.0)
}

/*
ASHRAE incidence angle modifier for the direct beam.

	Args:
	    aoi: angle of incidence, degree
	    b0: modifier coefficient, typically 0.05
	    max_aoi: cutoff angle beyond which the modifier is 0, degree

	Returns:
	    incidence angle modifier, 0 to 1
*/
func iam_ashrae(aoi float64, b0 float64, max_aoi float64) float64 {
	if aoi >= max_aoi {
		return 0.0
	}
	iam := 1.0 - b0*(1.0/cosd(aoi)-1.0)
	return math.Max(iam, 0.0)
}
