package main

import "math"

/*
Ground-level geometry shared by the sheds model: projection of the sun
onto the row cross-section, the unshaded ground fraction between rows,
and the view factor from a ground point to the visible sky between rows.
*/

/*
Tangent of the solar angle projected into the plane perpendicular to
the row axis.

	Args:
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree
	    surface_azimuth: azimuth the row surface faces, degree

	Returns:
	    tangent of the projected solar zenith angle
*/
func _solar_projection_tangent(solar_zenith float64, solar_azimuth float64, surface_azimuth float64) float64 {
	rotation := solar_azimuth - surface_azimuth
	return cosd(rotation) * tand(solar_zenith)
}

/*
Fraction of the ground between rows that receives direct beam
irradiance.

	Args:
	    gcr: ground coverage ratio
	    surface_tilt: row tilt from horizontal, degree
	    surface_azimuth: azimuth the row surface faces, degree
	    solar_zenith: solar zenith angle, degree
	    solar_azimuth: solar azimuth angle, degree

	Returns:
	    unshaded fraction of the ground, 0 to 1

	Notes:
	    The shadow length per unit pitch is
	    gcr * |cos(tilt) + sin(tilt) * tan(phi)| where phi is the
	    projected solar zenith; it saturates at 1 when adjacent row
	    shadows merge.
*/
func _unshaded_ground_fraction(gcr float64, surface_tilt float64, surface_azimuth float64, solar_zenith float64, solar_azimuth float64) float64 {
	tan_phi := _solar_projection_tangent(solar_zenith, solar_azimuth, surface_azimuth)
	f_gnd_beam := gcr * math.Abs(cosd(surface_tilt)+sind(surface_tilt)*tan_phi)
	return 1.0 - math.Min(1.0, f_gnd_beam)
}

/*
View factor from a point on the ground to the sky, accounting for
blocking by a finite number of rows on each side.

	Args:
	    x: normalized position of the ground point within its row-to-row
	        gap, 0 to 1 in units of pitch
	    rotation: row rotation from horizontal in the cross-section
	        plane, degree, signed
	    gcr: ground coverage ratio
	    pitch: row spacing, m
	    height: height of the row center above the ground, m
	    max_rows: number of rows accounted for on each side of the point

	Returns:
	    fraction of the sky dome visible from the point, 0 to 1

	Notes:
	    Each row k in [-max_rows, max_rows] subtends an angular interval
	    at the ground point; the sky wedges between consecutive intervals
	    contribute 0.5*(cos(theta_hi) - cos(theta_lo)) each. Wedges with
	    non-positive width are overlapped by a nearer row and contribute
	    nothing.
*/
func _vf_ground_sky_2d(x float64, rotation float64, gcr float64, pitch float64, height float64, max_rows int) float64 {
	// half width of the row cross-section projected on the ground frame
	width := gcr * pitch / 2.0

	a1 := height + width*sind(rotation)
	a2 := height - width*sind(rotation)

	n := 2*max_rows + 1
	lo := make([]float64, n)
	hi := make([]float64, n)
	for j := 0; j < n; j++ {
		k := float64(j - max_rows)
		b1 := (k-x)*pitch + width*cosd(rotation)
		b2 := (k-x)*pitch - width*cosd(rotation)
		p1 := math.Atan2(a1, b1)
		p2 := math.Atan2(a2, b2)
		lo[j] = math.Min(p1, p2)
		hi[j] = math.Max(p1, p2)
	}

	// rows are visited left to right, so the subtended angles decrease
	// monotonically and the sky wedge between row j and row j+1 is
	// bounded by lo[j] above and hi[j+1] below
	vf := 0.0
	for j := 0; j < n-1; j++ {
		wedge := 0.5 * (math.Cos(hi[j+1]) - math.Cos(lo[j]))
		if wedge > 0.0 {
			vf += wedge
		}
	}
	return vf
}
