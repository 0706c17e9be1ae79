// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package synapses_test

import (
	"testing"

	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/synapses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func TestSynapses(t *testing.T) {
	l := synapses.NewLowpass(0.005)
	assert.Equal(t, "Lowpass", l.Kind())
	assert.Equal(t, "Lowpass(tau=0.005)", l.String())
	assert.Equal(t, synapses.Lowpass{Tau: 0.005}, l)

	a := synapses.NewAlpha(0.1)
	assert.Equal(t, "Alpha", a.Kind())
	assert.Equal(t, "Alpha(tau=0.1)", a.String())
}

func TestParam(t *testing.T) {
	p := synapses.NewParam("pre_synapse", synapses.NewLowpass(0.005))
	assert.True(t, p.IsOptional())

	s, err := p.Coerce("PES", params.Default[synapses.Synapse]())
	require.NoError(t, err)
	assert.Equal(t, synapses.NewLowpass(0.005), s)

	s, err = p.Coerce("PES", params.Value[synapses.Synapse](nil))
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = p.Coerce("PES", params.Value[synapses.Synapse](synapses.NewAlpha(0.01)))
	require.NoError(t, err)
	assert.Equal(t, synapses.NewAlpha(0.01), s)

	_, err = p.Coerce("PES", params.Value[synapses.Synapse](synapses.NewLowpass(-1)))
	assert.ErrorContains(t, err, "PES.pre_synapse: synapse Lowpass(tau=-1) must have a non-negative time constant")

	// Numbers are converted to Lowpass filters.
	v, err := p.Validate("PES", 0.01)
	require.NoError(t, err)
	assert.Equal(t, synapses.NewLowpass(0.01), v)
	v, err = p.Validate("PES", 1)
	require.NoError(t, err)
	assert.Equal(t, synapses.NewLowpass(1), v)

	_, err = p.Validate("PES", "lowpass")
	assert.Error(t, err)

	v, err = p.Validate("PES", nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}
