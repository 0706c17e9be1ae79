// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"github.com/gomlx/plasticity/pkg/params"
)

// Rule is implemented by all learning rule types.
//
// Rules are immutable: they are created with a configuration builder (e.g. NewPES().LearningRate(1e-3).Done())
// and can be freely shared afterward.
//
// New rule types must embed RuleType, and override Modifies and Probeable.
type Rule interface {
	// TypeName is the name of the rule type, e.g. "PES".
	TypeName() string

	// Modifies is the signal targeted by the rule.
	Modifies() Modifies

	// Probeable returns the names of the internal quantities of the rule that can be probed.
	Probeable() []string

	// LearningRate is the rate at which the target signal is adjusted.
	LearningRate() float64

	// SizeIn is the dimensionality of the expected error signal.
	SizeIn() SizeIn

	// ArgReprs returns the canonical "name=value" list of the arguments that differ from their defaults.
	ArgReprs() []string

	// String returns the canonical representation of the rule, e.g. `PES(learning_rate=0.0002)`.
	String() string

	ruleType() *RuleType
}

var (
	// ParamLearningRate of RuleType: non-negative, defaults to 1e-6.
	ParamLearningRate = params.NewNumber[float64]("learning_rate").Low(0).WithDefault(1e-6).Readonly()

	// ParamSizeIn of RuleType: non-negative integer or one of SizeInSymbols. Defaults to 0.
	ParamSizeIn = NewSizeInParam("size_in").WithDefault(Dims(0))

	// RuleTypeClass declares the fields of RuleType, which are inherited by every rule type.
	// Use it (or a sub-class) to set default overrides with params.Defaults.
	RuleTypeClass = params.NewClass("RuleType", nil, ParamLearningRate, ParamSizeIn)
)

// RuleType is the base type of all learning rules, and can be used by itself as an abstract rule.
//
// It targets no signal (ModifiesNone), so it is rejected when attached to a connection: it serves as the
// embedded base of concrete rule types, which override Modifies and Probeable.
type RuleType struct {
	fields       params.Frozen
	learningRate float64
	sizeIn       SizeIn
}

var _ Rule = (*RuleType)(nil)

func (r *RuleType) ruleType() *RuleType { return r }

// TypeName implements Rule.
func (r *RuleType) TypeName() string {
	if r.isConstructed() {
		return r.fields.Class().Name()
	}
	return RuleTypeClass.Name()
}

// isConstructed returns whether the rule was created by a configuration's Done method.
func (r *RuleType) isConstructed() bool { return r != nil && r.fields.Class() != nil }

// Class returns the class describing the fields of the rule.
func (r *RuleType) Class() *params.Class { return r.fields.Class() }

// Modifies implements Rule. The base RuleType doesn't target any signal.
func (r *RuleType) Modifies() Modifies { return ModifiesNone }

// Probeable implements Rule. The base RuleType has no probeable quantities.
func (r *RuleType) Probeable() []string { return nil }

// LearningRate implements Rule.
func (r *RuleType) LearningRate() float64 { return r.learningRate }

// SizeIn implements Rule.
func (r *RuleType) SizeIn() SizeIn { return r.sizeIn }

// Field returns the value of the field with the given name, as recorded during construction.
func (r *RuleType) Field(name string) (any, bool) { return r.fields.Get(name) }

// ArgReprs implements Rule.
func (r *RuleType) ArgReprs() []string { return r.fields.ArgReprs() }

// String implements Rule.
func (r *RuleType) String() string { return r.fields.String() }

// configBase holds the state common to all rule configuration builders.
type configBase struct {
	typeName string
	defaults *params.Defaults
	done     bool
	err      error
}

// modifiable returns whether attr can still be changed, and records the error if not.
func (c *configBase) modifiable(attr string) bool {
	if c.done {
		if c.err == nil {
			c.err = params.FrozenError(attr, c.typeName)
		}
		return false
	}
	return true
}

// starting checks that the configuration can be finished.
func (c *configBase) starting() error {
	if c.err != nil {
		return c.err
	}
	if c.done {
		return params.FrozenError("", c.typeName)
	}
	return nil
}

// Err returns the error recorded by the configuration, if any: e.g. trying to change it after Done.
func (c *configBase) Err() error { return c.err }

// RuleTypeConfig configures a RuleType. Create it with NewRuleType, and call Done to create the rule.
type RuleTypeConfig struct {
	configBase
	learningRate params.Arg[float64]
	sizeIn       params.Arg[SizeIn]
}

// NewRuleType returns the configuration of a base RuleType.
func NewRuleType() *RuleTypeConfig {
	return &RuleTypeConfig{configBase: configBase{typeName: RuleTypeClass.Name()}}
}

// WithDefaults sets the default overrides used for the arguments that are not set.
func (c *RuleTypeConfig) WithDefaults(defaults *params.Defaults) *RuleTypeConfig {
	if c.modifiable("defaults") {
		c.defaults = defaults
	}
	return c
}

// LearningRate sets the learning rate. It must be non-negative, and defaults to 1e-6.
func (c *RuleTypeConfig) LearningRate(value float64) *RuleTypeConfig {
	if c.modifiable(ParamLearningRate.Name()) {
		c.learningRate = params.Value(value)
	}
	return c
}

// SizeIn sets the dimensionality of the error signal, see SizeIn. Defaults to 0.
func (c *RuleTypeConfig) SizeIn(value SizeIn) *RuleTypeConfig {
	if c.modifiable(ParamSizeIn.Name()) {
		c.sizeIn = params.Value(value)
	}
	return c
}

// Done validates the configuration and creates the RuleType.
// The configuration can't be changed afterward.
func (c *RuleTypeConfig) Done() (*RuleType, error) {
	if err := c.starting(); err != nil {
		return nil, err
	}
	f := params.NewFields(RuleTypeClass, c.defaults)
	r := &RuleType{}
	r.learningRate = params.Assign(f, ParamLearningRate, c.learningRate)
	r.sizeIn = params.Assign(f, ParamSizeIn, c.sizeIn)
	frozen, err := f.Freeze()
	if err != nil {
		return nil, err
	}
	r.fields = frozen
	c.done = true
	return r, nil
}
