// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/support/sets"
	"github.com/gomlx/plasticity/pkg/synapses"
)

var (
	// BCMLearningRate is the learning rate descriptor of BCM: non-negative, defaults to 1e-9.
	BCMLearningRate = params.NewNumber[float64]("learning_rate").Low(0).WithDefault(1e-9).Readonly()

	// BCMPreSynapse filters the pre-synaptic activities, defaults to Lowpass(tau=0.005).
	BCMPreSynapse = synapses.NewParam("pre_synapse", synapses.NewLowpass(0.005)).Readonly()

	// BCMPostSynapse filters the post-synaptic activities. Its declared default is nil, which means the same
	// filter as pre_synapse. Since the default is derived, params.Defaults can't override it.
	BCMPostSynapse = synapses.NewParam("post_synapse", nil).Readonly().DerivedDefault()

	// BCMThetaSynapse filters the theta signal, defaults to Lowpass(tau=1.0).
	BCMThetaSynapse = synapses.NewParam("theta_synapse", synapses.NewLowpass(1.0)).Readonly()

	// BCMClass declares the fields of BCM.
	BCMClass = params.NewClass("BCM", RuleTypeClass, BCMLearningRate, BCMPreSynapse, BCMPostSynapse, BCMThetaSynapse)

	bcmProbeable = sets.MakeOrdered("theta", "pre_filtered", "post_filtered", "delta")
)

// BCM is the Bienenstock-Cooper-Munroe learning rule.
//
// It modifies connection weights as a function of the presynaptic activity and the difference between the
// postsynaptic activity and the average postsynaptic activity.
//
// The BCM rule is dependent on pre and post neural activities, not decoded values, and so is not affected by
// changes in the size of pre and post ensembles. However, if you are decoding from the post ensemble, the BCM rule
// will have an increased effect on larger post ensembles because more connection weights are changing. In these
// cases, it may be advantageous to scale the learning rate by `1 / post.n_neurons`.
type BCM struct {
	RuleType
	preSynapse, postSynapse, thetaSynapse synapses.Synapse
}

var _ Rule = (*BCM)(nil)

// Modifies implements Rule: BCM targets weights.
func (b *BCM) Modifies() Modifies { return ModifiesWeights }

// Probeable implements Rule.
func (b *BCM) Probeable() []string { return bcmProbeable.Values() }

// PreSynapse filters the pre-synaptic activities.
func (b *BCM) PreSynapse() synapses.Synapse { return b.preSynapse }

// PostSynapse filters the post-synaptic activities. Unless configured otherwise, it is the same as PreSynapse.
func (b *BCM) PostSynapse() synapses.Synapse { return b.postSynapse }

// ThetaSynapse filters the theta signal.
func (b *BCM) ThetaSynapse() synapses.Synapse { return b.thetaSynapse }

// BCMConfig configures a BCM rule. Create it with NewBCM, and call Done to create the rule.
type BCMConfig struct {
	configBase
	learningRate                          params.Arg[float64]
	preSynapse, postSynapse, thetaSynapse params.Arg[synapses.Synapse]
}

// NewBCM returns the configuration of a BCM learning rule, with all arguments set to their defaults.
func NewBCM() *BCMConfig {
	return &BCMConfig{configBase: configBase{typeName: BCMClass.Name()}}
}

// WithDefaults sets the default overrides used for the arguments that are not set.
func (c *BCMConfig) WithDefaults(defaults *params.Defaults) *BCMConfig {
	if c.modifiable("defaults") {
		c.defaults = defaults
	}
	return c
}

// LearningRate sets the rate at which weights are adjusted. It must be non-negative, and defaults to 1e-9.
func (c *BCMConfig) LearningRate(value float64) *BCMConfig {
	if c.modifiable(BCMLearningRate.Name()) {
		c.learningRate = params.Value(value)
	}
	return c
}

// PreSynapse sets the filter of the pre-synaptic activities.
func (c *BCMConfig) PreSynapse(synapse synapses.Synapse) *BCMConfig {
	if c.modifiable(BCMPreSynapse.Name()) {
		c.preSynapse = params.Value(synapse)
	}
	return c
}

// PostSynapse sets the filter of the post-synaptic activities. If not set, the pre-synaptic filter is used.
func (c *BCMConfig) PostSynapse(synapse synapses.Synapse) *BCMConfig {
	if c.modifiable(BCMPostSynapse.Name()) {
		c.postSynapse = params.Value(synapse)
	}
	return c
}

// ThetaSynapse sets the filter of the theta signal.
func (c *BCMConfig) ThetaSynapse(synapse synapses.Synapse) *BCMConfig {
	if c.modifiable(BCMThetaSynapse.Name()) {
		c.thetaSynapse = params.Value(synapse)
	}
	return c
}

// Done validates the configuration and creates the BCM rule.
// The configuration can't be changed afterward.
func (c *BCMConfig) Done() (*BCM, error) {
	if err := c.starting(); err != nil {
		return nil, err
	}
	f := params.NewFields(BCMClass, c.defaults)
	b := &BCM{}
	b.learningRate = params.Assign(f, BCMLearningRate, c.learningRate)
	b.sizeIn = params.Fix(f, ParamSizeIn, Dims(0))
	b.preSynapse = params.Assign(f, BCMPreSynapse, c.preSynapse)
	b.postSynapse = params.Assign(f, BCMPostSynapse, postSynapseArg(c.postSynapse, b.preSynapse))
	f.Derived(BCMPostSynapse.Name(), BCMPreSynapse.Name())
	b.thetaSynapse = params.Assign(f, BCMThetaSynapse, c.thetaSynapse)
	frozen, err := f.Freeze()
	if err != nil {
		return nil, err
	}
	b.fields = frozen
	c.done = true
	return b, nil
}

// postSynapseArg resolves a post-synaptic filter argument left to its default to the pre-synaptic filter.
func postSynapseArg(post params.Arg[synapses.Synapse], pre synapses.Synapse) params.Arg[synapses.Synapse] {
	if post.IsDefault() {
		return params.Value(pre)
	}
	return post
}
