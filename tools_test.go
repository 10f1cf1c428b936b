package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_degree_trig(t *testing.T) {
	assert.InDelta(t, 1.0, cosd(0.0), 1e-12)
	assert.InDelta(t, 0.0, cosd(90.0), 1e-12)
	assert.InDelta(t, 1.0, sind(90.0), 1e-12)
	assert.InDelta(t, 1.0, tand(45.0), 1e-12)
	assert.InDelta(t, 90.0, acosd(0.0), 1e-12)

	// acosd clips out-of-range arguments instead of returning NaN
	assert.Equal(t, 0.0, acosd(1.0+1e-12))
	assert.Equal(t, 180.0, acosd(-1.0-1e-12))

	// atan2d resolves 0/0 to 0
	assert.Equal(t, 0.0, atan2d(0.0, 0.0))
	assert.InDelta(t, 45.0, atan2d(1.0, 1.0), 1e-12)
	assert.InDelta(t, 135.0, atan2d(1.0, -1.0), 1e-12)
}

func Test_clip(t *testing.T) {
	assert.Equal(t, 0.0, clip(-0.5, 0.0, 1.0))
	assert.Equal(t, 1.0, clip(1.5, 0.0, 1.0))
	assert.Equal(t, 0.5, clip(0.5, 0.0, 1.0))
}

func Test_linspace(t *testing.T) {
	x := linspace(0.0, 1.0, 5)
	assert.Len(t, x, 5)
	assert.Equal(t, 0.0, x[0])
	assert.Equal(t, 1.0, x[4])
	assert.InDelta(t, 0.25, x[1], 1e-12)
}

func Test_logspace(t *testing.T) {
	x := logspace(11.0, 1.0, 5)
	assert.Len(t, x, 5)
	assert.InDelta(t, 11.0, x[0], 1e-9)
	assert.InDelta(t, 1.0, x[4], 1e-9)
	// geometric progression
	assert.InDelta(t, x[1]/x[0], x[2]/x[1], 1e-9)
}

func Test_trapz(t *testing.T) {
	// exact for linear integrands
	x := linspace(0.0, 2.0, 11)
	f := make([]float64, len(x))
	for i, xx := range x {
		f[i] = 3.0*xx + 1.0
	}
	assert.InDelta(t, 8.0, trapz(x, f), 1e-12)

	// quadratic integrand converges with grid refinement
	g := func(x float64) float64 { return x * x }
	coarse := linspace(0.0, 1.0, 11)
	fine := linspace(0.0, 1.0, 1001)
	fc := make([]float64, len(coarse))
	ff := make([]float64, len(fine))
	for i, xx := range coarse {
		fc[i] = g(xx)
	}
	for i, xx := range fine {
		ff[i] = g(xx)
	}
	assert.True(t, math.Abs(trapz(fine, ff)-1.0/3.0) < math.Abs(trapz(coarse, fc)-1.0/3.0))
	assert.InDelta(t, 1.0/3.0, trapz(fine, ff), 1e-6)
}
