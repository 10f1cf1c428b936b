package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_sapm_cell(t *testing.T) {
	assert.InDelta(t, 40.89705865214733, sapm_cell(800.0, 20.0, 5.0), 1e-9)

	// no irradiance, cell at ambient
	assert.Equal(t, 20.0, sapm_cell(0.0, 20.0, 5.0))
}

func Test_sapm_cell_wind_cooling(t *testing.T) {
	calm := sapm_cell(800.0, 20.0, 0.0)
	windy := sapm_cell(800.0, 20.0, 10.0)
	assert.Greater(t, calm, windy)
}

func Test_sapm_cell_above_module(t *testing.T) {
	tm := sapm_module(800.0, 20.0, 5.0)
	tc := sapm_cell(800.0, 20.0, 5.0)
	assert.InDelta(t, 800.0/1000.0*3.0, tc-tm, 1e-12)
}
