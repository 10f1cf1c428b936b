package main

import "math"

/*
Explicit single-diode model solver after Bishop (1988). The IV curve is
parameterized by the diode voltage vd, which makes current, voltage and
power explicit functions and turns every operating point query into a
one-dimensional root-finding problem in vd.
*/

// One point of an IV curve and its power.
type IVCurve struct {
	i []float64 // current, A, [n]
	v []float64 // voltage, V, [n]
	p []float64 // power, W, [n]
}

// Operating point summary of a single-diode IV curve.
type SingleDiodeResult struct {
	i_sc  float64 // short-circuit current, A
	v_oc  float64 // open-circuit voltage, V
	i_mp  float64 // current at maximum power, A
	v_mp  float64 // voltage at maximum power, V
	p_mp  float64 // maximum power, W
	i_x   float64 // current at v = v_oc / 2, A
	i_xx  float64 // current at v = (v_oc + v_mp) / 2, A
	curve *IVCurve
}

/*
Current, voltage and power at the diode voltage vd.

	Args:
	    vd: diode voltage, V
	    photocurrent: light-generated current IL, A
	    saturation_current: diode reverse saturation current I0, A
	    resistance_series: series resistance Rs, ohm
	    resistance_shunt: shunt resistance Rsh, ohm
	    nNsVth: product of ideality factor, cells in series and cell
	        thermal voltage, V

	Returns:
	    (1) terminal current, A
	    (2) terminal voltage, V
	    (3) power, W
*/
func bishop88(vd float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, float64, float64) {
	i := photocurrent - saturation_current*(math.Exp(vd/nNsVth)-1.0) - vd/resistance_shunt
	v := vd - i*resistance_series
	return i, v, i * v
}

/*
Current, voltage and power at the diode voltage vd together with the
analytic derivatives used by the fast solvers.

	Args:
	    as bishop88

	Returns:
	    (1) terminal current, A
	    (2) terminal voltage, V
	    (3) power, W
	    (4) di/dvd
	    (5) dv/dvd
	    (6) di/dv
	    (7) dp/dv
	    (8) d2p/dv/dvd
*/
func bishop88_gradients(vd float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, float64, float64, float64, float64, float64, float64, float64) {
	a := math.Exp(vd / nNsVth)
	b := 1.0 / resistance_shunt
	i := photocurrent - saturation_current*(a-1.0) - vd*b
	v := vd - i*resistance_series

	c := saturation_current * a / nNsVth
	grad_i := -c - b
	grad_v := 1.0 - grad_i*resistance_series
	grad := grad_i / grad_v
	grad_p := v*grad + i
	grad2i := -c / nNsVth
	grad2v := -grad2i * resistance_series
	grad2p := grad_v*grad + v*(grad2i/grad_v-grad_i*grad2v/(grad_v*grad_v)) + grad_i

	return i, v, i * v, grad_i, grad_v, grad, grad_p, grad2p
}

/*
Rough estimate of the open-circuit voltage, ignoring the shunt
resistance.

	Args:
	    photocurrent: light-generated current IL, A
	    saturation_current: diode reverse saturation current I0, A
	    nNsVth: product of ideality factor, cells in series and cell
	        thermal voltage, V

	Returns:
	    estimated open-circuit voltage, V

	Notes:
	    Overestimates the true Voc because the neglected shunt current is
	    positive, so [0, est_voc] always brackets every operating point
	    on the power quadrant of the curve.
*/
func est_voc(photocurrent float64, saturation_current float64, nNsVth float64) float64 {
	return nNsVth * math.Log(photocurrent/saturation_current+1.0)
}

/*
Current at the terminal voltage v, found by bracketed search over the
diode voltage.

	Args:
	    v: terminal voltage, V
	    remaining args as bishop88

	Returns:
	    terminal current, A
*/
func slow_i_from_v(v float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, error) {
	voc := est_voc(photocurrent, saturation_current, nNsVth)
	vd, err := brentq(func(x float64) float64 {
		_, vx, _ := bishop88(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return v - vx
	}, 0.0, voc)
	if err != nil {
		return 0.0, err
	}
	i, _, _ := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return i, nil
}

/*
Current at the terminal voltage v, found by Newton iteration started
at vd = v.
*/
func fast_i_from_v(v float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, error) {
	vd, err := newton(func(x float64) float64 {
		_, vx, _ := bishop88(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return vx - v
	}, func(x float64) float64 {
		_, _, _, _, grad_v, _, _, _ := bishop88_gradients(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return grad_v
	}, v)
	if err != nil {
		return 0.0, err
	}
	i, _, _ := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return i, nil
}

/*
Voltage at the terminal current i, found by bracketed search over the
diode voltage.

	Args:
	    i: terminal current, A
	    remaining args as bishop88

	Returns:
	    terminal voltage, V
*/
func slow_v_from_i(i float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, error) {
	voc := est_voc(photocurrent, saturation_current, nNsVth)
	vd, err := brentq(func(x float64) float64 {
		ix, _, _ := bishop88(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return i - ix
	}, 0.0, voc)
	if err != nil {
		return 0.0, err
	}
	_, v, _ := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return v, nil
}

/*
Voltage at the terminal current i, found by Newton iteration started
at the estimated open-circuit voltage.
*/
func fast_v_from_i(i float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, error) {
	voc := est_voc(photocurrent, saturation_current, nNsVth)
	vd, err := newton(func(x float64) float64 {
		ix, _, _ := bishop88(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return ix - i
	}, func(x float64) float64 {
		_, _, _, grad_i, _, _, _, _ := bishop88_gradients(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return grad_i
	}, voc)
	if err != nil {
		return 0.0, err
	}
	_, v, _ := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return v, nil
}

/*
Maximum power point, found by bracketed search for the zero of dp/dv.

	Returns:
	    (1) current at maximum power, A
	    (2) voltage at maximum power, V
	    (3) maximum power, W
*/
func slow_mppt(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, float64, float64, error) {
	voc := est_voc(photocurrent, saturation_current, nNsVth)
	vd, err := brentq(func(x float64) float64 {
		_, _, _, _, _, _, grad_p, _ := bishop88_gradients(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return grad_p
	}, 0.0, voc)
	if err != nil {
		return 0.0, 0.0, 0.0, err
	}
	i, v, p := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return i, v, p, nil
}

/*
Maximum power point, found by Newton iteration on dp/dv started at the
estimated open-circuit voltage.
*/
func fast_mppt(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64) (float64, float64, float64, error) {
	voc := est_voc(photocurrent, saturation_current, nNsVth)
	vd, err := newton(func(x float64) float64 {
		_, _, _, _, _, _, grad_p, _ := bishop88_gradients(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return grad_p
	}, func(x float64) float64 {
		_, _, _, _, _, _, _, grad2p := bishop88_gradients(x, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		return grad2p
	}, voc)
	if err != nil {
		return 0.0, 0.0, 0.0, err
	}
	i, v, p := bishop88(vd, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	return i, v, p, nil
}

/*
Current at the terminal voltage v with the solver selected by name.

	Args:
	    v: terminal voltage, V
	    method: "brentq" for the bracketed solver, "newton" for the
	        fast solver
	    remaining args as bishop88

	Returns:
	    terminal current, A
*/
func i_from_v(v float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, method string) (float64, error) {
	switch method {
	case "brentq":
		return slow_i_from_v(v, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	case "newton":
		return fast_i_from_v(v, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	default:
		panic(method)
	}
}

// Voltage at the terminal current i with the solver selected by name.
func v_from_i(i float64, photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, method string) (float64, error) {
	switch method {
	case "brentq":
		return slow_v_from_i(i, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	case "newton":
		return fast_v_from_i(i, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	default:
		panic(method)
	}
}

// Maximum power point with the solver selected by name.
func mppt(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, method string) (float64, float64, float64, error) {
	switch method {
	case "brentq":
		return slow_mppt(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	case "newton":
		return fast_mppt(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
	default:
		panic(method)
	}
}

/*
Diode voltage grid for an IV curve of n points, dense near the
open-circuit voltage where the curve bends.

	Args:
	    voc: open-circuit diode voltage bound, V
	    n: number of points

	Returns:
	    diode voltages from ~0 to voc, ascending, [n]
*/
func _ivcurve_vd(voc float64, n int) []float64 {
	u := logspace(11.0, 1.0, n)
	vd := make([]float64, n)
	for j, uu := range u {
		vd[j] = voc * (11.0 - uu) / 10.0
	}
	return vd
}

func _summarize(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, ivcurve_pnts int,
	iv func(float64) (float64, error),
	vi func(float64) (float64, error),
	mp func() (float64, float64, float64, error),
) (*SingleDiodeResult, error) {
	i_sc, err := iv(0.0)
	if err != nil {
		return nil, err
	}
	v_oc, err := vi(0.0)
	if err != nil {
		return nil, err
	}
	i_mp, v_mp, p_mp, err := mp()
	if err != nil {
		return nil, err
	}
	i_x, err := iv(v_oc / 2.0)
	if err != nil {
		return nil, err
	}
	i_xx, err := iv((v_oc + v_mp) / 2.0)
	if err != nil {
		return nil, err
	}

	out := &SingleDiodeResult{
		i_sc: i_sc,
		v_oc: v_oc,
		i_mp: i_mp,
		v_mp: v_mp,
		p_mp: p_mp,
		i_x:  i_x,
		i_xx: i_xx,
	}

	if ivcurve_pnts > 0 {
		vd := _ivcurve_vd(v_oc, ivcurve_pnts)
		curve := &IVCurve{
			i: make([]float64, ivcurve_pnts),
			v: make([]float64, ivcurve_pnts),
			p: make([]float64, ivcurve_pnts),
		}
		for j, vdj := range vd {
			curve.i[j], curve.v[j], curve.p[j] = bishop88(vdj, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		}
		out.curve = curve
	}
	return out, nil
}

/*
IV curve summary with every operating point found by the bracketed
solver.

	Args:
	    args as bishop88
	    ivcurve_pnts: number of IV curve points to evaluate, 0 for none

	Returns:
	    operating point summary and optional IV curve
*/
func slower_way(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, ivcurve_pnts int) (*SingleDiodeResult, error) {
	return _summarize(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth, ivcurve_pnts,
		func(v float64) (float64, error) {
			return slow_i_from_v(v, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		},
		func(i float64) (float64, error) {
			return slow_v_from_i(i, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		},
		func() (float64, float64, float64, error) {
			return slow_mppt(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		})
}

/*
IV curve summary with every operating point found by the fast Newton
solver.
*/
func faster_way(photocurrent float64, saturation_current float64, resistance_series float64, resistance_shunt float64, nNsVth float64, ivcurve_pnts int) (*SingleDiodeResult, error) {
	return _summarize(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth, ivcurve_pnts,
		func(v float64) (float64, error) {
			return fast_i_from_v(v, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		},
		func(i float64) (float64, error) {
			return fast_v_from_i(i, photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		},
		func() (float64, float64, float64, error) {
			return fast_mppt(photocurrent, saturation_current, resistance_series, resistance_shunt, nNsVth)
		})
}
