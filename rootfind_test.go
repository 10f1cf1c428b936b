package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_brentq(t *testing.T) {
	root, err := brentq(func(x float64) float64 { return x*x - 4.0 }, 0.0, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-10)

	// root at a bracket bound
	root, err = brentq(func(x float64) float64 { return x }, 0.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, root)

	// transcendental
	root, err = brentq(func(x float64) float64 { return math.Cos(x) - x }, 0.0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, root, 1e-10)
}

func Test_brentq_bad_bracket(t *testing.T) {
	_, err := brentq(func(x float64) float64 { return x*x + 1.0 }, 0.0, 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same sign")
}

func Test_newton(t *testing.T) {
	root, err := newton(
		func(x float64) float64 { return math.Cos(x) - x },
		func(x float64) float64 { return -math.Sin(x) - 1.0 },
		0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, root, 1e-8)
}

func Test_newton_no_convergence(t *testing.T) {
	// no real root, the iteration never settles
	_, err := newton(
		func(x float64) float64 { return x*x + 1.0 },
		func(x float64) float64 { return 2.0 * x },
		0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no convergence")
}
