package main

import (
	"log"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

// Irradiance and ambient weather series over one year, [n].
type Weather struct {
	ghi_ns        []float64 // global horizontal irradiance, W/m2, [n]
	dhi_ns        []float64 // diffuse horizontal irradiance, W/m2, [n]
	dni_ns        []float64 // direct normal irradiance, W/m2, [n]
	temp_air_ns   []float64 // ambient air temperature, degree C, [n]
	wind_speed_ns []float64 // wind speed, m/s, [n]
	_itv          Interval
}

// One hourly record of the weather input CSV.
type WeatherRow struct {
	Ghi       float64 `csv:"ghi"`
	Dhi       float64 `csv:"dhi"`
	Dni       float64 `csv:"dni"`
	TempAir   float64 `csv:"temp_air"`
	WindSpeed float64 `csv:"wind_speed"`
}

/*
Weather series built by the selected method.

	Args:
	    method: "file" to load an hourly CSV, "demo" for the built-in
	        synthetic clear-sky series
	    itv: time step of the produced series
	    file_path: CSV path, required for method "file"
	    site: array location, used by method "demo"
	    year: calendar year, used by method "demo"

	Returns:
	    weather series
*/
func make_weather(method string, itv Interval, file_path string, site Site, year int) *Weather {
	if method == "file" {
		log.Printf("Load weather data from `%s`", file_path)
		return _make_weather_from_csv(file_path, itv)
	} else if method == "demo" {
		log.Printf("make synthetic weather data for site `%s`", site.name)
		return _make_weather_demo(site, year, itv)
	} else {
		panic(method)
	}
}

// Number of steps in the series.
func (w *Weather) number_of_data() int {
	return w._itv.get_n_hour() * 8760
}

/*
Weather series loaded from an hourly CSV with columns ghi, dhi, dni,
temp_air and wind_speed, 8760 records, interpolated to the requested
interval.
*/
func _make_weather_from_csv(file_path string, itv Interval) *Weather {
	f, err := os.Open(file_path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rows := []*WeatherRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Fatal(err)
	}
	if len(rows) != 8760 {
		log.Fatalf("weather file `%s` has %d records, expected 8760", file_path, len(rows))
	}

	ghi := make([]float64, 8760)
	dhi := make([]float64, 8760)
	dni := make([]float64, 8760)
	temp_air := make([]float64, 8760)
	wind_speed := make([]float64, 8760)
	for i, r := range rows {
		ghi[i] = r.Ghi
		dhi[i] = r.Dhi
		dni[i] = r.Dni
		temp_air[i] = r.TempAir
		wind_speed[i] = r.WindSpeed
	}

	return &Weather{
		ghi_ns:        _interpolate(ghi, itv),
		dhi_ns:        _interpolate(dhi, itv),
		dni_ns:        _interpolate(dni, itv),
		temp_air_ns:   _interpolate(temp_air, itv),
		wind_speed_ns: _interpolate(wind_speed, itv),
		_itv:          itv,
	}
}

/*
Hourly data linearly interpolated to the requested interval.

	Args:
	    data: hourly values, [8760]
	    itv: target interval

	Returns:
	    interpolated values, [8760 * n_hour]

	Notes:
	    The last sub-hour steps interpolate toward the first value of
	    the series, closing the annual cycle.
*/
func _interpolate(data []float64, itv Interval) []float64 {
	n_hour := itv.get_n_hour()
	if n_hour == 1 {
		return data
	}

	out := make([]float64, len(data)*n_hour)
	for i, v0 := range data {
		v1 := data[(i+1)%len(data)]
		for j := 0; j < n_hour; j++ {
			f := float64(j) / float64(n_hour)
			out[i*n_hour+j] = v0*(1.0-f) + v1*f
		}
	}
	return out
}

/*
Synthetic clear-sky-shaped weather series derived from the sun
altitude at the site: a Beer-Lambert style direct component, a diffuse
component growing with the square root of the zenith cosine, and
sinusoidal daily/seasonal air temperature.
*/
func _make_weather_demo(site Site, year int, itv Interval) *Weather {
	phi_loc, lambda_loc := site.get_phi_loc_and_lambda_loc()
	h_sun_ns, _ := calc_solar_position(phi_loc, lambda_loc, site.get_lambda_loc_mer(), year, itv)

	n_hour := itv.get_n_hour()
	dt := itv.get_time()

	n := len(h_sun_ns)
	ghi := make([]float64, n)
	dhi := make([]float64, n)
	dni := make([]float64, n)
	temp_air := make([]float64, n)
	wind_speed := make([]float64, n)

	for i, h_sun := range h_sun_ns {
		cz := 0.0
		if h_sun > 0.0 {
			cz = math.Sin(h_sun)
		}
		if cz > 0.0 {
			dni[i] = 950.0 * math.Exp(-0.13/cz)
			dhi[i] = 110.0 * math.Sqrt(cz)
		}
		ghi[i] = dni[i]*cz + dhi[i]

		d := float64(i/(24*n_hour) + 1)
		hour := float64(i%(24*n_hour)) * dt
		temp_air[i] = 12.0 - 8.0*math.Cos(2.0*math.Pi*(d-31.0)/365.0) - 4.0*math.Cos(2.0*math.Pi*(hour-14.0)/24.0)
		wind_speed[i] = 2.0 + 1.5*cz
	}

	return &Weather{
		ghi_ns:        ghi,
		dhi_ns:        dhi,
		dni_ns:        dni,
		temp_air_ns:   temp_air,
		wind_speed_ns: wind_speed,
		_itv:          itv,
	}
}
