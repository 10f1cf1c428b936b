package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// 度をラジアンに変換する係数 / degree-to-radian conversion factor
const to_rad = math.Pi / 180.0

// ラジアンを度に変換する係数 / radian-to-degree conversion factor
const to_deg = 180.0 / math.Pi

/*
Cosine with angle input in degrees.

	Args:
	    angle: angle, degree

	Returns:
	    cosine of the angle
*/
func cosd(angle float64) float64 {
	return math.Cos(angle * to_rad)
}

/*
Sine with angle input in degrees.

	Args:
	    angle: angle, degree

	Returns:
	    sine of the angle
*/
func sind(angle float64) float64 {
	return math.Sin(angle * to_rad)
}

/*
Tangent with angle input in degrees.

	Args:
	    angle: angle, degree

	Returns:
	    tangent of the angle
*/
func tand(angle float64) float64 {
	return math.Tan(angle * to_rad)
}

/*
Inverse cosine returning an angle in degrees.

	Args:
	    number: cosine value, clipped to [-1, 1] before evaluation

	Returns:
	    angle, degree
*/
func acosd(number float64) float64 {
	return math.Acos(clip(number, -1.0, 1.0)) * to_deg
}

/*
Two-argument arctangent returning an angle in degrees.

atan2 resolves the 0/0 indeterminate form to 0 instead of NaN, which is
relied on by the degenerate-geometry handling of the view factor
functions.

	Args:
	    y: numerator projection
	    x: denominator projection

	Returns:
	    angle, degree
*/
func atan2d(y, x float64) float64 {
	return math.Atan2(y, x) * to_deg
}

/*
Clip a value to the interval [lo, hi].

	Args:
	    v: value
	    lo: lower bound
	    hi: upper bound

	Returns:
	    clipped value
*/
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

/*
n equally spaced points over [l, u], endpoints included.

	Args:
	    l: lower endpoint
	    u: upper endpoint
	    n: number of points (n >= 2)

	Returns:
	    grid, [n]
*/
func linspace(l, u float64, n int) []float64 {
	dst := make([]float64, n)
	floats.Span(dst, l, u)
	return dst
}

/*
n logarithmically spaced points over [l, u], endpoints included.

	Args:
	    l: lower endpoint (> 0)
	    u: upper endpoint (> 0)
	    n: number of points (n >= 2)

	Returns:
	    grid, [n]
*/
func logspace(l, u float64, n int) []float64 {
	dst := make([]float64, n)
	floats.LogSpan(dst, l, u)
	return dst
}

/*
Trapezoidal-rule integral of the samples f over the abscissae x.

All view factor integrations go through this single helper so that the
quadrature rule can be swapped without touching the geometry formulas.

	Args:
	    x: abscissae, sorted ascending, [n]
	    f: samples at x, [n]

	Returns:
	    approximate integral
*/
func trapz(x, f []float64) float64 {
	return integrate.Trapezoidal(x, f)
}

/*
Fill a slice of length n with the value v.

	Args:
	    v: fill value
	    n: length

	Returns:
	    slice, [n]
*/
func full(v float64, n int) []float64 {
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = v
	}
	return dst
}
