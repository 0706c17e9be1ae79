// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package synapses defines the synapse (filter) models referenced by configuration objects.
//
// The models here are only descriptions: simulating them is the job of the builder that consumes the
// configuration. Configuration objects store and compare them, and print them in their canonical representation.
package synapses

import (
	"fmt"

	"github.com/gomlx/plasticity/pkg/params"
)

// Synapse is a filter model applied to a signal.
type Synapse interface {
	fmt.Stringer

	// Kind of filter, e.g.: "Lowpass".
	Kind() string
}

// Lowpass is a standard first-order lowpass filter, with time constant Tau in seconds.
type Lowpass struct {
	Tau float64
}

// NewLowpass returns a Lowpass filter with the given time constant, in seconds.
func NewLowpass(tau float64) Lowpass { return Lowpass{Tau: tau} }

// Kind implements Synapse.
func (l Lowpass) Kind() string { return "Lowpass" }

// String implements fmt.Stringer.
func (l Lowpass) String() string { return fmt.Sprintf("Lowpass(tau=%v)", l.Tau) }

// Alpha is an alpha filter (two identical first-order lowpass filters in series), with time constant Tau in seconds.
type Alpha struct {
	Tau float64
}

// NewAlpha returns an Alpha filter with the given time constant, in seconds.
func NewAlpha(tau float64) Alpha { return Alpha{Tau: tau} }

// Kind implements Synapse.
func (a Alpha) Kind() string { return "Alpha" }

// String implements fmt.Stringer.
func (a Alpha) String() string { return fmt.Sprintf("Alpha(tau=%v)", a.Tau) }

// NewParam creates a descriptor for an optional Synapse field with the given default.
//
// Explicit time constants must be non-negative, and numbers (e.g. when setting a params.Defaults override) are
// converted to a Lowpass with that time constant.
func NewParam(name string, defaultValue Synapse) *params.Param[Synapse] {
	return params.NewParam[Synapse](name).
		WithDefault(defaultValue).
		Optional().
		WithCoerce(func(owner string, s Synapse) (Synapse, error) {
			var tau float64
			switch f := s.(type) {
			case Lowpass:
				tau = f.Tau
			case Alpha:
				tau = f.Tau
			default:
				return s, nil
			}
			if tau < 0 {
				return s, params.Errorf(name, owner, "synapse %s must have a non-negative time constant", s)
			}
			return s, nil
		}).
		WithFromAny(func(value any) (Synapse, bool) {
			switch tau := value.(type) {
			case float64:
				return NewLowpass(tau), true
			case float32:
				return NewLowpass(float64(tau)), true
			case int:
				return NewLowpass(float64(tau)), true
			}
			return nil, false
		})
}
