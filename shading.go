package main

import "math"

/*
Row-to-row shading geometry for regularly spaced rows of rectangular
collectors. Angles are in degrees at every boundary; slant heights are
normalized by the collector slant height so that gcr carries all of the
length information.
*/

/*
Angle from a point on the ground between two rows up to the top of the
row in front of it.

	Args:
	    surface_tilt: row tilt from horizontal, degree
	    gcr: ground coverage ratio, collector width over pitch
	    slant_height: normalized position of the ground point, 0 at the
	        bottom of the facing row, 1 at the bottom of the next row

	Returns:
	    angle from horizontal up to the top of the facing row, degree

	Notes:
	    atan2 is used so that the degenerate case gcr = 0 or
	    slant_height = 0 (both projections zero) returns 0 rather than NaN.
*/
func ground_angle(surface_tilt float64, gcr float64, slant_height float64) float64 {
	x1 := gcr * slant_height * sind(surface_tilt)
	x2 := gcr*slant_height*cosd(surface_tilt) + 1.0
	return atan2d(x1, x2)
}

/*
Angle from a point on the row surface up to the top of the row in front
of it, measured from the surface plane's horizontal projection.

	Args:
	    surface_tilt: row tilt from horizontal, degree
	    gcr: ground coverage ratio
	    slant_height: normalized position on the row slant, 0 at the
	        bottom edge, 1 at the top edge

	Returns:
	    masking angle, degree

	Notes:
	    At slant_height = 1 the sight line grazes the top of the front row
	    and the angle is 0. atan2 keeps the top-edge case finite when the
	    denominator vanishes (possible for gcr > 1).
*/
func masking_angle(surface_tilt float64, gcr float64, slant_height float64) float64 {
	num := gcr * (1.0 - slant_height) * sind(surface_tilt)
	den := 1.0 - gcr*(1.0-slant_height)*cosd(surface_tilt)
	return atan2d(num, den)
}

/*
Average masking angle over the full row slant, closed form after
Passias and Källbäck (1984).

	Args:
	    surface_tilt: row tilt from horizontal, degree
	    gcr: ground coverage ratio

	Returns:
	    average masking angle, degree

	Notes:
	    The closed form integrates masking_angle analytically over the
	    slant. It holds for gcr*cos(surface_tilt) <= 1, that is whenever
	    the horizontal projection of a row does not overlap the next row's
	    position. surface_tilt = 0 is a removable singularity of the
	    formula (the true average is 0); any non-finite intermediate is
	    therefore replaced with 0.
*/
func masking_angle_passias(surface_tilt float64, gcr float64) float64 {
	beta := surface_tilt * to_rad
	sb := math.Sin(beta)
	cb := math.Cos(beta)
	x := 1.0 / gcr

	t1 := -x * sb * math.Log(math.Abs(2.0*x*cb-(x*x+1.0))) / 2.0
	t2 := (x*cb - 1.0) * math.Atan((x*cb-1.0)/(x*sb))
	t3 := (1.0 - x*cb) * math.Atan(cb/sb)
	t4 := x * math.Log(x) * sb

	psi := t1 + t2 + t3 + t4
	if math.IsNaN(psi) || math.IsInf(psi, 0) {
		psi = 0.0
	}
	return psi * to_deg
}

/*
Fraction of isotropic sky diffuse lost to row-to-row masking, after
Passias and Källbäck (1984).

	Args:
	    masking_angle: average masking angle, degree

	Returns:
	    fraction of sky diffuse irradiance lost, 0 to 1
*/
func sky_diffuse_passias(masking_angle float64) float64 {
	c := cosd(masking_angle / 2.0)
	return 1.0 - c*c
}

/*
Solar zenith angle projected into the plane perpendicular to a tracker
axis (or row axis, for fixed tilt).

	Args:
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree, north = 0, east = 90
	    axis_tilt: axis tilt from horizontal, degree
	    axis_azimuth: azimuth of the axis direction, degree

	Returns:
	    projected solar zenith angle, degree, signed

	Notes:
	    The sun vector is expressed in the axis-aligned frame by two
	    rotations (about z by the axis azimuth, then about x by the axis
	    tilt) and the projected angle is recovered with atan2, which keeps
	    the sun-at-zenith, horizontal-axis case (0/... projections) well
	    defined and preserves the sign of the cross-axis component.
*/
func projected_solar_zenith_angle(solar_zenith float64, solar_azimuth float64, axis_tilt float64, axis_azimuth float64) float64 {
	// sun vector in the global frame, x east, y north, z up
	sz := sind(solar_zenith)
	sx := sz * sind(solar_azimuth)
	sy := sz * cosd(solar_azimuth)
	szn := cosd(solar_zenith)

	// rotate into the axis frame, keep only the two components that
	// span the plane perpendicular to the axis
	sxp := sx*cosd(axis_azimuth) - sy*sind(axis_azimuth)
	szp := sx*sind(axis_azimuth)*sind(axis_tilt) +
		sy*sind(axis_tilt)*cosd(axis_azimuth) +
		szn*cosd(axis_tilt)

	return atan2d(sxp, szp)
}
