// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package params implements validated, immutable configuration objects.
//
// A configurable type declares its fields as parameter descriptors (Param, Number, Strings, or any
// implementation of Typed), grouped in declaration order in a Class. Construction is done in two phases:
//
//  1. A mutable builder (usually a `…Config` type with chainable setters, finished with `Done()`) collects
//     the arguments as Arg values: either an explicit value (Value) or "use the declared default" (Default).
//  2. `Done()` creates a Fields recorder, assigns every declared field through its descriptor, in declaration
//     order, and calls Fields.Freeze, which returns the immutable Frozen record.
//
// The constructed type exposes only getters, so it cannot be changed after construction. The builder that created
// it also refuses any further change: it fails with a ValidationError wrapping ErrFrozen.
//
// The Frozen record also provides the canonical representation of the object (Frozen.ArgReprs and Frozen.String),
// listing only the arguments that differ from their declared defaults.
//
// Declared defaults can be overridden per class (and for all its sub-classes) with Defaults.
//
// Example, using a hypothetical "Decay" class:
//
//	var (
//		rateParam  = params.NewNumber[float64]("rate").Low(0).WithDefault(0.1)
//		DecayClass = params.NewClass("Decay", nil, rateParam)
//	)
//
//	func (c *DecayConfig) Done() (*Decay, error) {
//		f := params.NewFields(DecayClass, c.defaults)
//		d := &Decay{rate: params.Assign(f, rateParam, c.rate)}
//		frozen, err := f.Freeze()
//		if err != nil {
//			return nil, err
//		}
//		d.fields = frozen
//		return d, nil
//	}
package params
