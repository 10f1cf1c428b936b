package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func _reference_module() *ModuleParameters {
	return &ModuleParameters{
		alpha_sc: 0.004539,
		a_ref:    2.6373,
		i_l_ref:  5.114,
		i_o_ref:  8.196e-10,
		r_sh_ref: 381.68,
		r_s:      1.065,
	}
}

// At standard test conditions the translation is the identity.
func Test_calcparams_desoto_stc(t *testing.T) {
	m := _reference_module()
	i_l, i_o, r_s, r_sh, n_ns_vth := calcparams_desoto(1000.0, 25.0, m)

	assert.InDelta(t, m.i_l_ref, i_l, 1e-12)
	assert.InDelta(t, m.i_o_ref, i_o, 1e-20)
	assert.Equal(t, m.r_s, r_s)
	assert.InDelta(t, m.r_sh_ref, r_sh, 1e-9)
	assert.InDelta(t, m.a_ref, n_ns_vth, 1e-12)
}

func Test_calcparams_desoto_operating(t *testing.T) {
	m := _reference_module()
	i_l, i_o, r_s, r_sh, n_ns_vth := calcparams_desoto(894.0, 55.0, m)

	assert.InDelta(t, 4.69365198, i_l, 1e-8)
	assert.InDelta(t, 8.111707807428692e-08, i_o, 1e-15)
	assert.Equal(t, 1.065, r_s)
	assert.InDelta(t, 426.9351230425056, r_sh, 1e-6)
	assert.InDelta(t, 2.902666426295489, n_ns_vth, 1e-9)
}

func Test_calcparams_desoto_dark(t *testing.T) {
	m := _reference_module()
	i_l, _, _, r_sh, _ := calcparams_desoto(0.0, 25.0, m)

	assert.Equal(t, 0.0, i_l)
	assert.True(t, math.IsInf(r_sh, 1))
}

// Translated parameters feed straight into the diode solver.
func Test_calcparams_desoto_mppt_chain(t *testing.T) {
	m := _reference_module()
	i_l, i_o, r_s, r_sh, n_ns_vth := calcparams_desoto(894.0, 55.0, m)

	i_mp, v_mp, p_mp, err := slow_mppt(i_l, i_o, r_s, r_sh, n_ns_vth)
	assert.NoError(t, err)
	assert.InDelta(t, 4.246916968418007, i_mp, 1e-7)
	assert.InDelta(t, 39.76404635885985, v_mp, 1e-7)
	assert.InDelta(t, 168.87460321440216, p_mp, 1e-6)
}
