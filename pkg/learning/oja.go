// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/support/sets"
	"github.com/gomlx/plasticity/pkg/synapses"
)

var (
	// OjaLearningRate is the learning rate descriptor of Oja: non-negative, defaults to 1e-6.
	OjaLearningRate = params.NewNumber[float64]("learning_rate").Low(0).WithDefault(1e-6).Readonly()

	// OjaPreSynapse filters the pre-synaptic activities, defaults to Lowpass(tau=0.005).
	OjaPreSynapse = synapses.NewParam("pre_synapse", synapses.NewLowpass(0.005)).Readonly()

	// OjaPostSynapse filters the post-synaptic activities. Its declared default is nil, which means the same
	// filter as pre_synapse. Since the default is derived, params.Defaults can't override it.
	OjaPostSynapse = synapses.NewParam("post_synapse", nil).Readonly().DerivedDefault()

	// OjaBeta is the weight of the forgetting term: non-negative, defaults to 1.0.
	OjaBeta = params.NewNumber[float64]("beta").Low(0).WithDefault(1.0).Readonly()

	// OjaClass declares the fields of Oja.
	OjaClass = params.NewClass("Oja", RuleTypeClass, OjaLearningRate, OjaPreSynapse, OjaPostSynapse, OjaBeta)

	ojaProbeable = sets.MakeOrdered("pre_filtered", "post_filtered", "delta")
)

// Oja is the Oja learning rule.
//
// It modifies connection weights according to the Hebbian Oja rule, which augments typical Hebbian coactivity
// with a "forgetting" term that is proportional to the weight of the connection and the square of the
// postsynaptic activity.
//
// As with BCM, it depends on neural activities and not decoded values, so one may want to scale the learning
// rate by `1 / post.n_neurons` when decoding from the post ensemble.
type Oja struct {
	RuleType
	preSynapse, postSynapse synapses.Synapse
	beta                    float64
}

var _ Rule = (*Oja)(nil)

// Modifies implements Rule: Oja targets weights.
func (o *Oja) Modifies() Modifies { return ModifiesWeights }

// Probeable implements Rule.
func (o *Oja) Probeable() []string { return ojaProbeable.Values() }

// PreSynapse filters the pre-synaptic activities.
func (o *Oja) PreSynapse() synapses.Synapse { return o.preSynapse }

// PostSynapse filters the post-synaptic activities. Unless configured otherwise, it is the same as PreSynapse.
func (o *Oja) PostSynapse() synapses.Synapse { return o.postSynapse }

// Beta is the weight of the forgetting term.
func (o *Oja) Beta() float64 { return o.beta }

// OjaConfig configures an Oja rule. Create it with NewOja, and call Done to create the rule.
type OjaConfig struct {
	configBase
	learningRate, beta      params.Arg[float64]
	preSynapse, postSynapse params.Arg[synapses.Synapse]
}

// NewOja returns the configuration of an Oja learning rule, with all arguments set to their defaults.
func NewOja() *OjaConfig {
	return &OjaConfig{configBase: configBase{typeName: OjaClass.Name()}}
}

// WithDefaults sets the default overrides used for the arguments that are not set.
func (c *OjaConfig) WithDefaults(defaults *params.Defaults) *OjaConfig {
	if c.modifiable("defaults") {
		c.defaults = defaults
	}
	return c
}

// LearningRate sets the rate at which weights are adjusted. It must be non-negative, and defaults to 1e-6.
func (c *OjaConfig) LearningRate(value float64) *OjaConfig {
	if c.modifiable(OjaLearningRate.Name()) {
		c.learningRate = params.Value(value)
	}
	return c
}

// PreSynapse sets the filter of the pre-synaptic activities.
func (c *OjaConfig) PreSynapse(synapse synapses.Synapse) *OjaConfig {
	if c.modifiable(OjaPreSynapse.Name()) {
		c.preSynapse = params.Value(synapse)
	}
	return c
}

// PostSynapse sets the filter of the post-synaptic activities. If not set, the pre-synaptic filter is used.
func (c *OjaConfig) PostSynapse(synapse synapses.Synapse) *OjaConfig {
	if c.modifiable(OjaPostSynapse.Name()) {
		c.postSynapse = params.Value(synapse)
	}
	return c
}

// Beta sets the weight of the forgetting term. It must be non-negative, and defaults to 1.0.
func (c *OjaConfig) Beta(value float64) *OjaConfig {
	if c.modifiable(OjaBeta.Name()) {
		c.beta = params.Value(value)
	}
	return c
}

// Done validates the configuration and creates the Oja rule.
// The configuration can't be changed afterward.
func (c *OjaConfig) Done() (*Oja, error) {
	if err := c.starting(); err != nil {
		return nil, err
	}
	f := params.NewFields(OjaClass, c.defaults)
	o := &Oja{}
	o.learningRate = params.Assign(f, OjaLearningRate, c.learningRate)
	o.sizeIn = params.Fix(f, ParamSizeIn, Dims(0))
	o.preSynapse = params.Assign(f, OjaPreSynapse, c.preSynapse)
	o.postSynapse = params.Assign(f, OjaPostSynapse, postSynapseArg(c.postSynapse, o.preSynapse))
	f.Derived(OjaPostSynapse.Name(), OjaPreSynapse.Name())
	o.beta = params.Assign(f, OjaBeta, c.beta)
	frozen, err := f.Freeze()
	if err != nil {
		return nil, err
	}
	o.fields = frozen
	c.done = true
	return o, nil
}
