// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/synapses"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureWarnings replaces warnf for the duration of the test.
func captureWarnings(t *testing.T) *[]string {
	var warnings []string
	previous := warnf
	warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { warnf = previous })
	return &warnings
}

func TestPES(t *testing.T) {
	warnings := captureWarnings(t)

	pes := must.M1(NewPES().Done())
	assert.Equal(t, "PES", pes.TypeName())
	assert.Equal(t, ModifiesDecoders, pes.Modifies())
	assert.Equal(t, "decoders", pes.Modifies().String())
	assert.Equal(t, Symbol(SizeInPostState), pes.SizeIn())
	assert.Equal(t, "post_state", pes.SizeIn().String())
	assert.Equal(t, 1e-4, pes.LearningRate())
	assert.Equal(t, synapses.NewLowpass(0.005), pes.PreSynapse())
	assert.Equal(t, []string{"error", "activities", "delta"}, pes.Probeable())
	assert.Empty(t, pes.ArgReprs())
	assert.Equal(t, "PES()", pes.String())
	assert.Equal(t, PESClass, pes.Class())
	assert.True(t, pes.Class().IsA(RuleTypeClass))

	sizeIn, found := pes.Field("size_in")
	require.True(t, found)
	assert.Equal(t, Symbol(SizeInPostState), sizeIn)

	pes = must.M1(NewPES().LearningRate(2e-4).Done())
	assert.Equal(t, []string{"learning_rate=0.0002"}, pes.ArgReprs())
	assert.Equal(t, "PES(learning_rate=0.0002)", pes.String())

	pes = must.M1(NewPES().PreSynapse(nil).Done())
	assert.Nil(t, pes.PreSynapse())
	assert.Equal(t, "PES(pre_synapse=None)", pes.String())

	_, err := NewPES().PreSynapse(synapses.NewLowpass(-0.1)).Done()
	assert.ErrorContains(t, err, "PES.pre_synapse")
	assert.Empty(t, *warnings)

	// High learning rates only warn.
	pes, err = NewPES().LearningRate(1.5).Done()
	require.NoError(t, err)
	assert.Equal(t, 1.5, pes.LearningRate())
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "1.5")

	_, err = NewPES().LearningRate(-1.5).Done()
	assert.ErrorContains(t, err, "PES.learning_rate: value must be greater than or equal to 0 (got -1.5)")
	must.M1(NewPES().LearningRate(0.5).Done())
	assert.Len(t, *warnings, 1)
}

func TestBCM(t *testing.T) {
	bcm := must.M1(NewBCM().Done())
	assert.Equal(t, ModifiesWeights, bcm.Modifies())
	assert.Equal(t, Dims(0), bcm.SizeIn())
	assert.Equal(t, 1e-9, bcm.LearningRate())
	assert.Equal(t, synapses.NewLowpass(0.005), bcm.PreSynapse())
	assert.Equal(t, bcm.PreSynapse(), bcm.PostSynapse())
	assert.Equal(t, synapses.NewLowpass(1.0), bcm.ThetaSynapse())
	assert.Equal(t, []string{"theta", "pre_filtered", "post_filtered", "delta"}, bcm.Probeable())
	assert.Equal(t, "BCM()", bcm.String())

	// post_synapse follows pre_synapse, unless given.
	pre := synapses.NewLowpass(0.01)
	bcm = must.M1(NewBCM().PreSynapse(pre).Done())
	assert.Equal(t, pre, bcm.PreSynapse())
	assert.Equal(t, pre, bcm.PostSynapse())
	assert.Equal(t, "BCM(pre_synapse=Lowpass(tau=0.01))", bcm.String())

	post := synapses.NewAlpha(0.02)
	bcm = must.M1(NewBCM().PreSynapse(pre).PostSynapse(post).Done())
	assert.Equal(t, pre, bcm.PreSynapse())
	assert.Equal(t, post, bcm.PostSynapse())
	assert.Equal(t, "BCM(pre_synapse=Lowpass(tau=0.01), post_synapse=Alpha(tau=0.02))", bcm.String())

	bcm = must.M1(NewBCM().ThetaSynapse(synapses.NewLowpass(2)).LearningRate(1e-8).Done())
	assert.Equal(t, "BCM(learning_rate=1e-08, theta_synapse=Lowpass(tau=2))", bcm.String())

	_, err := NewBCM().ThetaSynapse(synapses.NewLowpass(-2)).Done()
	assert.ErrorContains(t, err, "BCM.theta_synapse")
}

func TestOja(t *testing.T) {
	oja := must.M1(NewOja().Done())
	assert.Equal(t, ModifiesWeights, oja.Modifies())
	assert.Equal(t, Dims(0), oja.SizeIn())
	assert.Equal(t, 1e-6, oja.LearningRate())
	assert.Equal(t, 1.0, oja.Beta())
	assert.Equal(t, oja.PreSynapse(), oja.PostSynapse())
	assert.Equal(t, []string{"pre_filtered", "post_filtered", "delta"}, oja.Probeable())
	assert.Equal(t, "Oja()", oja.String())

	pre := synapses.NewAlpha(0.01)
	oja = must.M1(NewOja().PreSynapse(pre).Done())
	assert.Equal(t, pre, oja.PostSynapse())

	post := synapses.NewLowpass(0.1)
	oja = must.M1(NewOja().PreSynapse(pre).PostSynapse(post).Beta(0.5).Done())
	assert.Equal(t, pre, oja.PreSynapse())
	assert.Equal(t, post, oja.PostSynapse())
	assert.Equal(t, 0.5, oja.Beta())
	assert.Equal(t, "Oja(pre_synapse=Alpha(tau=0.01), post_synapse=Lowpass(tau=0.1), beta=0.5)", oja.String())

	oja = must.M1(NewOja().Beta(0).Done())
	assert.Equal(t, 0.0, oja.Beta())

	_, err := NewOja().Beta(-0.5).Done()
	assert.ErrorContains(t, err, "Oja.beta: value must be greater than or equal to 0 (got -0.5)")
}

func TestVoja(t *testing.T) {
	voja := must.M1(NewVoja().Done())
	assert.Equal(t, ModifiesEncoders, voja.Modifies())
	assert.Equal(t, Dims(1), voja.SizeIn())
	assert.Equal(t, 1e-2, voja.LearningRate())
	assert.Equal(t, synapses.NewLowpass(0.005), voja.PostSynapse())
	assert.Equal(t, []string{"post_filtered", "scaled_encoders", "delta"}, voja.Probeable())
	assert.Equal(t, "Voja()", voja.String())

	voja = must.M1(NewVoja().LearningRate(0.1).PostSynapse(nil).Done())
	assert.Equal(t, "Voja(learning_rate=0.1, post_synapse=None)", voja.String())
}

func TestRuleTypeFieldOrder(t *testing.T) {
	// Sub-classes keep the inherited fields in place, and append their own.
	var names []string
	for _, d := range BCMClass.Params() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"learning_rate", "size_in", "pre_synapse", "post_synapse", "theta_synapse"}, names)

	d, found := PESClass.Lookup("learning_rate")
	require.True(t, found)
	def, _ := d.Default()
	assert.Equal(t, 1e-4, def)
	d, _ = RuleTypeClass.Lookup("learning_rate")
	def, _ = d.Default()
	assert.Equal(t, 1e-6, def)
}

func TestConcurrentReaders(t *testing.T) {
	defaults := params.NewDefaults()
	require.NoError(t, defaults.Set(OjaClass, "beta", 2))
	oja := must.M1(NewOja().WithDefaults(defaults).Done())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "Oja(beta=2)", oja.String())
				_ = must.M1(NewOja().WithDefaults(defaults).Done())
			}
		}()
	}
	wg.Wait()
}
