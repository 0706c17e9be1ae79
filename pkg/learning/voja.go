// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/support/sets"
	"github.com/gomlx/plasticity/pkg/synapses"
)

var (
	// VojaLearningRate is the learning rate descriptor of Voja: non-negative, defaults to 1e-2.
	VojaLearningRate = params.NewNumber[float64]("learning_rate").Low(0).WithDefault(1e-2).Readonly()

	// VojaPostSynapse filters the post-synaptic activities, defaults to Lowpass(tau=0.005).
	VojaPostSynapse = synapses.NewParam("post_synapse", synapses.NewLowpass(0.005)).Readonly()

	// VojaClass declares the fields of Voja.
	VojaClass = params.NewClass("Voja", RuleTypeClass, VojaLearningRate, VojaPostSynapse)

	vojaProbeable = sets.MakeOrdered("post_filtered", "scaled_encoders", "delta")
)

// Voja is the Vector Oja learning rule.
//
// It modifies an ensemble's encoders to be selective to its inputs.
//
// A connection to the learning rule provides a scalar weight for the learning rate, minus 1: 0 is normal learning,
// -1 is no learning, and less than -1 causes anti-learning or "forgetting".
type Voja struct {
	RuleType
	postSynapse synapses.Synapse
}

var _ Rule = (*Voja)(nil)

// Modifies implements Rule: Voja targets encoders.
func (v *Voja) Modifies() Modifies { return ModifiesEncoders }

// Probeable implements Rule.
func (v *Voja) Probeable() []string { return vojaProbeable.Values() }

// PostSynapse filters the post-synaptic activities.
func (v *Voja) PostSynapse() synapses.Synapse { return v.postSynapse }

// VojaConfig configures a Voja rule. Create it with NewVoja, and call Done to create the rule.
type VojaConfig struct {
	configBase
	learningRate params.Arg[float64]
	postSynapse  params.Arg[synapses.Synapse]
}

// NewVoja returns the configuration of a Voja learning rule, with all arguments set to their defaults.
func NewVoja() *VojaConfig {
	return &VojaConfig{configBase: configBase{typeName: VojaClass.Name()}}
}

// WithDefaults sets the default overrides used for the arguments that are not set.
func (c *VojaConfig) WithDefaults(defaults *params.Defaults) *VojaConfig {
	if c.modifiable("defaults") {
		c.defaults = defaults
	}
	return c
}

// LearningRate sets the rate at which encoders are adjusted. It must be non-negative, and defaults to 1e-2.
func (c *VojaConfig) LearningRate(value float64) *VojaConfig {
	if c.modifiable(VojaLearningRate.Name()) {
		c.learningRate = params.Value(value)
	}
	return c
}

// PostSynapse sets the filter of the post-synaptic activities.
func (c *VojaConfig) PostSynapse(synapse synapses.Synapse) *VojaConfig {
	if c.modifiable(VojaPostSynapse.Name()) {
		c.postSynapse = params.Value(synapse)
	}
	return c
}

// Done validates the configuration and creates the Voja rule.
// The configuration can't be changed afterward.
func (c *VojaConfig) Done() (*Voja, error) {
	if err := c.starting(); err != nil {
		return nil, err
	}
	f := params.NewFields(VojaClass, c.defaults)
	v := &Voja{}
	v.learningRate = params.Assign(f, VojaLearningRate, c.learningRate)
	v.sizeIn = params.Fix(f, ParamSizeIn, Dims(1))
	v.postSynapse = params.Assign(f, VojaPostSynapse, c.postSynapse)
	frozen, err := f.Freeze()
	if err != nil {
		return nil, err
	}
	v.fields = frozen
	c.done = true
	return v, nil
}
