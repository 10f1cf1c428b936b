package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Per-step simulation results, column per quantity, [n] each.
type Recorder struct {
	YEAR int
	_itv Interval

	h_sun_ns []float64 // sun altitude, degree, [n]
	a_sun_ns []float64 // sun azimuth, degree, south = 0, [n]

	ghi_ns []float64 // global horizontal irradiance, W/m2, [n]
	dhi_ns []float64 // diffuse horizontal irradiance, W/m2, [n]
	dni_ns []float64 // direct normal irradiance, W/m2, [n]

	poa_front_ns  []float64 // front side plane-of-array irradiance, W/m2, [n]
	poa_back_ns   []float64 // back side plane-of-array irradiance, W/m2, [n]
	poa_global_ns []float64 // bifacial equivalent irradiance, W/m2, [n]

	temp_cell_ns []float64 // cell temperature, degree C, [n]

	i_mp_ns []float64 // maximum power point current, A, [n]
	v_mp_ns []float64 // maximum power point voltage, V, [n]
	p_mp_ns []float64 // maximum power, W, [n]
}

// One record of the results CSV.
type ResultRow struct {
	Step      int     `csv:"step"`
	HSun      float64 `csv:"h_sun"`
	Ghi       float64 `csv:"ghi"`
	PoaFront  float64 `csv:"poa_front"`
	PoaBack   float64 `csv:"poa_back"`
	PoaGlobal float64 `csv:"poa_global"`
	TempCell  float64 `csv:"temp_cell"`
	IMp       float64 `csv:"i_mp"`
	VMp       float64 `csv:"v_mp"`
	PMp       float64 `csv:"p_mp"`
}

func NewRecorder(n_step int, year int, itv Interval) *Recorder {
	return &Recorder{
		YEAR:          year,
		_itv:          itv,
		h_sun_ns:      make([]float64, n_step),
		a_sun_ns:      make([]float64, n_step),
		ghi_ns:        make([]float64, n_step),
		dhi_ns:        make([]float64, n_step),
		dni_ns:        make([]float64, n_step),
		poa_front_ns:  make([]float64, n_step),
		poa_back_ns:   make([]float64, n_step),
		poa_global_ns: make([]float64, n_step),
		temp_cell_ns:  make([]float64, n_step),
		i_mp_ns:       make([]float64, n_step),
		v_mp_ns:       make([]float64, n_step),
		p_mp_ns:       make([]float64, n_step),
	}
}

/*
Annual DC energy at the maximum power point.

	Returns:
	    annual energy, Wh
*/
func (r *Recorder) annual_energy() float64 {
	dt := r._itv.get_time()
	var e float64
	for _, p := range r.p_mp_ns {
		e += p * dt
	}
	return e
}

/*
Results written as a CSV file into the output directory.

	Args:
	    output_data_dir: directory for result files

	Returns:
	    error when the file cannot be written
*/
func (r *Recorder) save_csv(output_data_dir string) error {
	rows := make([]*ResultRow, len(r.p_mp_ns))
	for i := range rows {
		rows[i] = &ResultRow{
			Step:      i,
			HSun:      r.h_sun_ns[i],
			Ghi:       r.ghi_ns[i],
			PoaFront:  r.poa_front_ns[i],
			PoaBack:   r.poa_back_ns[i],
			PoaGlobal: r.poa_global_ns[i],
			TempCell:  r.temp_cell_ns[i],
			IMp:       r.i_mp_ns[i],
			VMp:       r.v_mp_ns[i],
			PMp:       r.p_mp_ns[i],
		}
	}

	result_path := filepath.Join(output_data_dir, "result_pv_yield.csv")
	log.Printf("Save calculation results to `%s`", result_path)

	f, err := os.Create(result_path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
