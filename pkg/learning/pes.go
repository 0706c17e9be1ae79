// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/gomlx/plasticity/pkg/support/sets"
	"github.com/gomlx/plasticity/pkg/synapses"
	"k8s.io/klog/v2"
)

// PESHighLearningRate is the learning rate from which PES warns about floating point errors.
const PESHighLearningRate = 1.0

var (
	// PESLearningRate is the learning rate descriptor of PES: non-negative, defaults to 1e-4.
	PESLearningRate = params.NewNumber[float64]("learning_rate").Low(0).WithDefault(1e-4).Readonly()

	// PESPreSynapse filters the pre-synaptic activities, defaults to Lowpass(tau=0.005).
	PESPreSynapse = synapses.NewParam("pre_synapse", synapses.NewLowpass(0.005)).Readonly()

	// PESClass declares the fields of PES.
	PESClass = params.NewClass("PES", RuleTypeClass, PESLearningRate, PESPreSynapse)

	pesProbeable = sets.MakeOrdered("error", "activities", "delta")
)

// warnf emits non-fatal advisories. It can be replaced (e.g. in tests).
var warnf = klog.Warningf

// PES is the Prescribed Error Sensitivity learning rule.
//
// It modifies a connection's decoders to minimize an error signal provided through a connection to the
// connection's learning rule. The error signal has the dimensionality of the post-synaptic ensemble
// (SizeInPostState).
type PES struct {
	RuleType
	preSynapse synapses.Synapse
}

var _ Rule = (*PES)(nil)

// Modifies implements Rule: PES targets decoders.
func (p *PES) Modifies() Modifies { return ModifiesDecoders }

// Probeable implements Rule.
func (p *PES) Probeable() []string { return pesProbeable.Values() }

// PreSynapse filters the pre-synaptic activities. It may be nil (no filtering).
func (p *PES) PreSynapse() synapses.Synapse { return p.preSynapse }

// PESConfig configures a PES rule. Create it with NewPES, and call Done to create the rule.
type PESConfig struct {
	configBase
	learningRate params.Arg[float64]
	preSynapse   params.Arg[synapses.Synapse]
}

// NewPES returns the configuration of a PES learning rule, with all arguments set to their defaults.
func NewPES() *PESConfig {
	return &PESConfig{configBase: configBase{typeName: PESClass.Name()}}
}

// WithDefaults sets the default overrides used for the arguments that are not set.
func (c *PESConfig) WithDefaults(defaults *params.Defaults) *PESConfig {
	if c.modifiable("defaults") {
		c.defaults = defaults
	}
	return c
}

// LearningRate sets the rate at which decoders are adjusted. It must be non-negative, and defaults to 1e-4.
//
// Values >= PESHighLearningRate are accepted, but can result in floating point errors from too much current:
// a warning is logged when the rule is created.
func (c *PESConfig) LearningRate(value float64) *PESConfig {
	if c.modifiable(PESLearningRate.Name()) {
		c.learningRate = params.Value(value)
	}
	return c
}

// PreSynapse sets the filter of the pre-synaptic activities, nil for no filtering.
func (c *PESConfig) PreSynapse(synapse synapses.Synapse) *PESConfig {
	if c.modifiable(PESPreSynapse.Name()) {
		c.preSynapse = params.Value(synapse)
	}
	return c
}

// Done validates the configuration and creates the PES rule.
// The configuration can't be changed afterward.
func (c *PESConfig) Done() (*PES, error) {
	if err := c.starting(); err != nil {
		return nil, err
	}
	f := params.NewFields(PESClass, c.defaults)
	p := &PES{}
	p.learningRate = params.Assign(f, PESLearningRate, c.learningRate)
	p.sizeIn = params.Fix(f, ParamSizeIn, Symbol(SizeInPostState))
	p.preSynapse = params.Assign(f, PESPreSynapse, c.preSynapse)
	frozen, err := f.Freeze()
	if err != nil {
		return nil, err
	}
	p.fields = frozen
	c.done = true

	if lr, ok := c.learningRate.Get(); ok && lr >= PESHighLearningRate {
		warnf("PES learning rate %g is very high, and can result in floating point errors from too much current", lr)
	}
	return p, nil
}
