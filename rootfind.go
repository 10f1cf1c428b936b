package main

import (
	"fmt"
	"math"
)

/*
Scalar root finding used by the single-diode solver: a bracketing Brent
solver and a Newton iteration with a caller-supplied derivative.
*/

const (
	// bracketing solver absolute and relative step tolerances
	_brentq_xtol = 2e-12
	_brentq_rtol = 8.881784197001252e-16 // 4 * machine epsilon

	_brentq_maxiter = 100

	// newton step tolerance and iteration cap
	_newton_tol     = 1.48e-8
	_newton_maxiter = 50
)

/*
Root of f on the bracket [xa, xb] by Brent's method.

	Args:
	    f: function whose root is sought
	    xa: lower bracket bound
	    xb: upper bracket bound

	Returns:
	    root of f within the bracket

	Notes:
	    Combines bisection with secant and inverse quadratic
	    interpolation steps, falling back to bisection whenever an
	    interpolated step would leave the bracket or converge too
	    slowly. An error is returned when f(xa) and f(xb) have the same
	    sign, so the caller can distinguish a bad bracket from a root at
	    a bound.
*/
func brentq(f func(float64) float64, xa float64, xb float64) (float64, error) {
	fa := f(xa)
	fb := f(xb)
	if fa*fb > 0.0 {
		return 0.0, fmt.Errorf("brentq: f(%g)=%g and f(%g)=%g have the same sign", xa, fa, xb, fb)
	}
	if fa == 0.0 {
		return xa, nil
	}
	if fb == 0.0 {
		return xb, nil
	}

	xpre, xcur := xa, xb
	fpre, fcur := fa, fb
	var xblk, fblk, spre, scur float64

	for iter := 0; iter < _brentq_maxiter; iter++ {
		if fpre*fcur < 0.0 {
			xblk = xpre
			fblk = fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (_brentq_xtol + _brentq_rtol*math.Abs(xcur)) / 2.0
		sbis := (xblk - xcur) / 2.0
		if fcur == 0.0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant step
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// inverse quadratic interpolation
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2.0*math.Abs(stry) < math.Min(math.Abs(spre), 3.0*math.Abs(sbis)-delta) {
				spre = scur
				scur = stry
			} else {
				spre = sbis
				scur = sbis
			}
		} else {
			spre = sbis
			scur = sbis
		}

		xpre = xcur
		fpre = fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0.0 {
			xcur += delta
		} else {
			xcur -= delta
		}
		fcur = f(xcur)
	}
	return xcur, nil
}

/*
Root of f near x0 by Newton's method with an analytic derivative.

	Args:
	    f: function whose root is sought
	    fprime: derivative of f
	    x0: initial guess

	Returns:
	    root of f

	Notes:
	    Convergence is declared when the step falls below the tolerance,
	    which can accept a wrong root if the iteration wanders to another
	    basin; callers trading robustness for speed accept this. An error
	    is returned when the iteration cap is reached without the step
	    shrinking below tolerance.
*/
func newton(f func(float64) float64, fprime func(float64) float64, x0 float64) (float64, error) {
	p0 := x0
	for iter := 0; iter < _newton_maxiter; iter++ {
		fv := f(p0)
		if fv == 0.0 {
			return p0, nil
		}
		fd := fprime(p0)
		p := p0 - fv/fd
		if math.Abs(p-p0) <= _newton_tol {
			return p, nil
		}
		p0 = p
	}
	return 0.0, fmt.Errorf("newton: no convergence after %d iterations starting from %g", _newton_maxiter, x0)
}
