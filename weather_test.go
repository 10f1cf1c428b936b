package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_make_weather_demo(t *testing.T) {
	site := get_site("berkeley")
	w := make_weather("demo", IntervalH1, "", site, 1989)

	require.Equal(t, 8760, w.number_of_data())
	require.Len(t, w.ghi_ns, 8760)

	// solstice noon values
	assert.InDelta(t, 912.0162035400991, w.ghi_ns[_solstice_noon], 1e-6)
	assert.InDelta(t, 108.21206438286931, w.dhi_ns[_solstice_noon], 1e-6)
	assert.InDelta(t, 830.5853067756384, w.dni_ns[_solstice_noon], 1e-6)
	assert.InDelta(t, 14.579844897443687, w.temp_air_ns[_solstice_noon], 1e-6)
	assert.InDelta(t, 3.4516344063639157, w.wind_speed_ns[_solstice_noon], 1e-6)

	// irradiance is dark at midnight, never negative
	assert.Equal(t, 0.0, w.ghi_ns[0])
	assert.Equal(t, 0.0, w.dni_ns[0])
	for i := range w.ghi_ns {
		assert.GreaterOrEqual(t, w.ghi_ns[i], 0.0)
		assert.GreaterOrEqual(t, w.dhi_ns[i], 0.0)
		assert.GreaterOrEqual(t, w.dni_ns[i], 0.0)
	}
}

// GHI decomposes into its components with the sun altitude of the site.
func Test_make_weather_demo_closure(t *testing.T) {
	site := get_site("berkeley")
	phi_loc, lambda_loc := site.get_phi_loc_and_lambda_loc()
	h_sun_ns, _ := calc_solar_position(phi_loc, lambda_loc, site.get_lambda_loc_mer(), 1989, IntervalH1)

	w := make_weather("demo", IntervalH1, "", site, 1989)
	for _, i := range []int{_solstice_noon, _winter_noon, 9, 15} {
		cz := 0.0
		if h_sun_ns[i] > 0.0 {
			cz = sind(h_sun_ns[i] * to_deg)
		}
		assert.InDelta(t, w.dni_ns[i]*cz+w.dhi_ns[i], w.ghi_ns[i], 1e-9, "step %d", i)
	}
}

func Test_make_weather_unknown_method(t *testing.T) {
	assert.Panics(t, func() { make_weather("tmy", IntervalH1, "", get_site("berkeley"), 1989) })
}

func Test_interpolate(t *testing.T) {
	hourly := make([]float64, 8760)
	for i := range hourly {
		hourly[i] = float64(i % 24)
	}

	// identity at 1h
	assert.Equal(t, hourly, _interpolate(hourly, IntervalH1))

	half := _interpolate(hourly, IntervalM30)
	require.Len(t, half, 17520)
	assert.Equal(t, 0.0, half[0])
	assert.Equal(t, 0.5, half[1])
	assert.Equal(t, 1.0, half[2])

	// last half hour wraps toward the start of the year
	assert.Equal(t, 23.0, half[17518])
	assert.Equal(t, 11.5, half[17519])
}

func Test_make_weather_from_csv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weather.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = f.WriteString("ghi,dhi,dni,temp_air,wind_speed\n")
	require.NoError(t, err)
	for i := 0; i < 8760; i++ {
		if i%24 == 12 {
			_, err = f.WriteString("800,100,700,20,3\n")
		} else {
			_, err = f.WriteString("0,0,0,10,2\n")
		}
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())

	w := make_weather("file", IntervalH1, path, Site{}, 1989)
	require.Equal(t, 8760, w.number_of_data())
	assert.Equal(t, 800.0, w.ghi_ns[12])
	assert.Equal(t, 100.0, w.dhi_ns[12])
	assert.Equal(t, 700.0, w.dni_ns[12])
	assert.Equal(t, 20.0, w.temp_air_ns[12])
	assert.Equal(t, 3.0, w.wind_speed_ns[12])
	assert.Equal(t, 0.0, w.ghi_ns[0])
}
