// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"maps"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/plasticity/pkg/params"
	"github.com/pkg/errors"
)

// KnownRules is a map of the known learning rule types by (lower case) name to their default constructors.
//
// The defaults given (it may be nil) are used to resolve the arguments of the rule.
var KnownRules = map[string]func(defaults *params.Defaults) (Rule, error){
	"pes":  func(defaults *params.Defaults) (Rule, error) { return asRule(NewPES().WithDefaults(defaults).Done()) },
	"bcm":  func(defaults *params.Defaults) (Rule, error) { return asRule(NewBCM().WithDefaults(defaults).Done()) },
	"oja":  func(defaults *params.Defaults) (Rule, error) { return asRule(NewOja().WithDefaults(defaults).Done()) },
	"voja": func(defaults *params.Defaults) (Rule, error) { return asRule(NewVoja().WithDefaults(defaults).Done()) },
}

// asRule converts the result of a Done method, making sure a failed construction returns a nil Rule (and not a
// typed nil pointer).
func asRule[R Rule](rule R, err error) (Rule, error) {
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// ByName returns a rule of the named type (case-insensitive, see KnownRules), with all arguments resolved from
// defaults (which can be nil).
func ByName(name string, defaults *params.Defaults) (Rule, error) {
	ctor, found := KnownRules[strings.ToLower(name)]
	if !found {
		return nil, errors.Errorf("unknown learning rule %q, valid values are %q",
			name, slices.Sorted(maps.Keys(KnownRules)))
	}
	return ctor(defaults)
}

// MustByName is like ByName, but panics with an error (with stack) if it fails.
func MustByName(name string, defaults *params.Defaults) Rule {
	rule, err := ByName(name, defaults)
	if err != nil {
		exceptions.Panicf("learning.MustByName(%q): %+v", name, err)
	}
	return rule
}
