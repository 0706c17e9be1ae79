// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning_test

import (
	"slices"
	"testing"

	"github.com/gomlx/plasticity/pkg/learning"
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	connectionRules = learning.NewCollectionParam("learning_rule_type")
	connectionClass = params.NewClass("Connection", nil, connectionRules)
)

// validateRules validates rules as if assigned to the learning rule field of a connection.
func validateRules(rules any) (learning.Collection, error) {
	v, err := connectionRules.Validate(connectionClass.Name(), rules)
	if err != nil {
		return learning.Collection{}, err
	}
	return v.(learning.Collection), nil
}

func TestCollectionAccepts(t *testing.T) {
	pes := must.M1(learning.NewPES().Done())
	bcm := must.M1(learning.NewBCM().Done())
	voja := must.M1(learning.NewVoja().Done())

	c := must.M1(validateRules(nil))
	assert.True(t, c.IsNone())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "None", c.String())

	c = must.M1(validateRules(pes))
	assert.Equal(t, learning.CollectionSingle, c.Kind())
	assert.Equal(t, 1, c.Len())
	assert.Same(t, pes, c.Rule())
	assert.Equal(t, "PES()", c.String())

	c = must.M1(validateRules([]learning.Rule{pes, bcm}))
	assert.Equal(t, learning.CollectionList, c.Kind())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []learning.Rule{pes, bcm}, slices.Collect(c.All()))
	assert.Equal(t, "[PES() BCM()]", c.String())

	// Slices and arrays of concrete rule types.
	c = must.M1(validateRules([]*learning.PES{pes}))
	assert.Equal(t, learning.CollectionList, c.Kind())
	assert.Equal(t, 1, c.Len())
	c = must.M1(validateRules([2]learning.Rule{voja, pes}))
	assert.Equal(t, []learning.Rule{voja, pes}, slices.Collect(c.All()))
	c = must.M1(validateRules([]any{}))
	assert.Equal(t, learning.CollectionList, c.Kind())
	assert.Equal(t, 0, c.Len())

	c = must.M1(validateRules(map[string]learning.Rule{"encoders": voja, "decoders": pes}))
	assert.Equal(t, learning.CollectionNamed, c.Kind())
	assert.Equal(t, []string{"decoders", "encoders"}, c.Names())
	rule, found := c.Get("encoders")
	require.True(t, found)
	assert.Same(t, voja, rule)
	_, found = c.Get("weights")
	assert.False(t, found)
	assert.Equal(t, []learning.Rule{pes, voja}, slices.Collect(c.All()))

	// Already built collections.
	c = must.M1(validateRules(learning.List(pes, bcm)))
	assert.Equal(t, 2, c.Len())
	c = must.M1(validateRules(learning.Named(map[string]learning.Rule{"pes": pes})))
	assert.Equal(t, []string{"pes"}, c.Names())

	// Through Fields, as a class field.
	f := params.NewFields(connectionClass, nil)
	c = params.Assign(f, connectionRules, params.Value(learning.Single(bcm)))
	frozen := must.M1(f.Freeze())
	assert.Same(t, bcm, c.Rule())
	assert.Equal(t, "Connection(learning_rule_type=BCM())", frozen.String())

	f = params.NewFields(connectionClass, nil)
	c = params.Assign(f, connectionRules, params.Default[learning.Collection]())
	assert.True(t, c.IsNone())
	assert.Equal(t, "Connection()", must.M1(f.Freeze()).String())
}

// embeddedRule satisfies learning.Rule through a nil embedded *learning.RuleType.
type embeddedRule struct {
	*learning.RuleType
}

func TestCollectionRejects(t *testing.T) {
	pes := must.M1(learning.NewPES().Done())
	base := must.M1(learning.NewRuleType().Done())

	_, err := validateRules([]any{pes, "not a rule"})
	require.Error(t, err)
	vErr, ok := params.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "learning_rule_type", vErr.Attr)
	assert.Equal(t, "Connection", vErr.Obj)
	assert.Equal(t,
		`Connection.learning_rule_type: "not a rule" must be a learning rule type or a map or list of such types`,
		vErr.Error())

	_, err = validateRules(3)
	assert.ErrorContains(t, err, "3 must be a learning rule type")

	_, err = validateRules([]*learning.PES{pes, nil})
	assert.ErrorContains(t, err, "None must be a learning rule type")

	_, err = validateRules(map[int]learning.Rule{1: pes})
	assert.ErrorContains(t, err, "must be a learning rule type or a map or list of such types")

	_, err = validateRules(map[string]any{"pes": pes, "other": 1.5})
	assert.ErrorContains(t, err, "1.5 must be a learning rule type")

	// The base rule type doesn't target any signal.
	_, err = validateRules(base)
	assert.ErrorContains(t, err, `Connection.learning_rule_type: unrecognized target "none" of learning rule RuleType()`)
	_, err = validateRules(learning.List(pes, base))
	assert.ErrorContains(t, err, "unrecognized target")

	// Rules must be created with Done.
	_, err = validateRules(&learning.PES{})
	assert.ErrorContains(t, err, "learning rule *learning.PES was not created with its configuration's Done()")
	require.NotPanics(t, func() { _, err = validateRules(embeddedRule{}) })
	assert.ErrorContains(t, err, "learning rule learning_test.embeddedRule was not created")

	f := params.NewFields(connectionClass, nil)
	params.Assign(f, connectionRules, params.Value(learning.Named(map[string]learning.Rule{"x": base})))
	_, err = f.Freeze()
	assert.ErrorContains(t, err, "unrecognized target")
}

func TestCollectionAllBreak(t *testing.T) {
	pes := must.M1(learning.NewPES().Done())
	oja := must.M1(learning.NewOja().Done())
	c := learning.List(pes, oja, pes)
	count := 0
	for range c.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, "list", c.Kind().String())
	assert.Nil(t, c.Names())
	assert.Nil(t, c.Rule())

	// Collections built directly are not validated, but still print.
	assert.Equal(t, "None", learning.Single(nil).String())
	assert.Equal(t, 1, learning.Single(nil).Len())
}
