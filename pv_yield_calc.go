package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

/*
Annual bifacial PV yield calculation for an infinite-sheds array with a
single-diode module model.
*/

// CEC-style crystalline silicon module, reference conditions.
func default_module() *ModuleParameters {
	return &ModuleParameters{
		alpha_sc:            0.004539,
		a_ref:               2.6373,
		i_l_ref:             5.114,
		i_o_ref:             8.196e-10,
		r_sh_ref:            381.68,
		r_s:                 1.065,
		bifaciality:         0.7,
		shade_factor:        -0.02,
		transmission_factor: 0.0,
		b0:                  0.05,
		max_aoi:             85.0,
	}
}

/*
Yield calculation run.

	Args:
	    output_data_dir: output directory for the results CSV
	    weather_specify_method: weather source, "file" or "demo"
	    weather_file_path: weather CSV path for method "file"
	    site_name: named site for solar position and demo weather
	    geometry: array row geometry
*/
func run(
	output_data_dir string,
	weather_specify_method string,
	weather_file_path string,
	site_name string,
	geometry *ArrayGeometry,
) {
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	site := get_site(site_name)
	year := 1989

	log.Printf("make weather data")
	w := make_weather(weather_specify_method, IntervalH1, weather_file_path, site, year)

	module := default_module()

	r, err := calc(w, site, year, geometry, module)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("annual DC energy: %.1f kWh", r.annual_energy()/1000.0)

	if err := r.save_csv(output_data_dir); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output directory")

	var weather string
	flag.StringVar(&weather, "weather", "demo", "weather source, `file` or `demo`")

	var weather_path string
	flag.StringVar(&weather_path, "weather_path", "", "weather CSV path, required when -weather=file")

	var site_name string
	flag.StringVar(&site_name, "site", "berkeley", "site name for solar position and demo weather")

	var surface_tilt float64
	flag.Float64Var(&surface_tilt, "tilt", 20.0, "front surface tilt, degree")

	var surface_azimuth float64
	flag.Float64Var(&surface_azimuth, "azimuth", 180.0, "front surface azimuth, degree")

	var gcr float64
	flag.Float64Var(&gcr, "gcr", 0.45, "ground coverage ratio")

	var height float64
	flag.Float64Var(&height, "height", 1.5, "row center height above ground, m")

	var pitch float64
	flag.Float64Var(&pitch, "pitch", 4.0, "row spacing, m")

	var albedo float64
	flag.Float64Var(&albedo, "albedo", 0.2, "ground albedo")

	flag.Parse()

	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("weather: %s\n", weather)
	fmt.Printf("weather_path: %s\n", weather_path)
	fmt.Printf("site: %s\n", site_name)

	geometry := &ArrayGeometry{
		surface_tilt:    surface_tilt,
		surface_azimuth: surface_azimuth,
		gcr:             gcr,
		height:          height,
		pitch:           pitch,
		albedo:          albedo,
		max_rows:        5,
		npoints:         100,
	}

	start := time.Now()

	run(output_data_dir, weather, weather_path, site_name, geometry)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
