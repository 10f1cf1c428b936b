package main

// Geographic location of the simulated array.
type Site struct {
	name       string
	latitude   float64 // degree, north positive
	longitude  float64 // degree, east positive
	utc_offset float64 // h, local standard time minus UTC
}

/*
Named demo site.

	Args:
	    name: site identifier

	Returns:
	    site coordinates
*/
func get_site(name string) Site {
	switch name {
	case "berkeley":
		return Site{name: name, latitude: 37.85, longitude: -122.25, utc_offset: -8.0}
	case "albuquerque":
		return Site{name: name, latitude: 35.05, longitude: -106.54, utc_offset: -7.0}
	case "tokyo":
		return Site{name: name, latitude: 35.68, longitude: 139.77, utc_offset: 9.0}
	default:
		panic(name)
	}
}

/*
Latitude and longitude in radians.

	Returns:
	    (1) latitude, rad
	    (2) longitude, rad
*/
func (s Site) get_phi_loc_and_lambda_loc() (phi_loc float64, lambda_loc float64) {
	phi_loc = s.latitude * to_rad
	lambda_loc = s.longitude * to_rad
	return
}

/*
Longitude of the standard meridian of the site's time zone.

	Returns:
	    standard meridian, rad
*/
func (s Site) get_lambda_loc_mer() float64 {
	return s.utc_offset * 15.0 * to_rad
}
