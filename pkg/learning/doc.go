// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package learning defines the learning rule types that can be attached to a neural connection: PES, BCM, Oja and
// Voja, all derived from the base RuleType.
//
// Rules are only descriptions: they hold validated, immutable parameters, and the builder that consumes them is
// responsible for simulating the learning. Each rule type has a configuration builder, and its Done method
// validates the arguments and creates the rule:
//
//	pes, err := learning.NewPES().LearningRate(2e-4).Done()
//	if err != nil { ... }
//	fmt.Println(pes)  // PES(learning_rate=0.0002)
//
// Defaults can be changed for a rule type and its sub-types with params.Defaults, using the rule classes
// (e.g. PESClass, or RuleTypeClass for all rules):
//
//	defaults := params.NewDefaults()
//	err := defaults.Set(learning.RuleTypeClass, "learning_rate", 1e-3)
//	bcm, err := learning.NewBCM().WithDefaults(defaults).Done()
//
// A connection holds its rules in a Collection, validated by a CollectionParam field: a single rule, a list of rules
// or rules indexed by name.
package learning
