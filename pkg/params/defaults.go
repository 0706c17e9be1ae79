// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import (
	"github.com/gomlx/plasticity/internal/scoped"
	"k8s.io/klog/v2"
)

// Defaults overrides the declared defaults of classes.
//
// An override set for a class is used by the class and all its sub-classes, unless a sub-class has its own override
// for the same field. E.g.: setting "learning_rate" for the base class of all learning rules changes the default
// learning rate of every rule, while setting it for the PES class only affects PES.
//
// Overrides only change how Default arguments are resolved: the canonical representation of objects
// (Frozen.ArgReprs) is still relative to the declared defaults.
//
// A nil *Defaults is valid and has no overrides. Defaults is not safe for concurrent modification: prepare it
// before using it to construct objects.
type Defaults struct {
	params *scoped.Params
}

// NewDefaults creates an empty set of default overrides.
func NewDefaults() *Defaults {
	return &Defaults{params: scoped.New()}
}

// Set overrides the default of the field name of class (and its sub-classes).
//
// The value is validated immediately by the field's descriptor, and converted to the field type. Fields whose
// default is derived from other fields (see Param.DerivedDefault) can't be overridden.
func (d *Defaults) Set(class *Class, name string, value any) error {
	if d == nil {
		return Errorf("", class.Name(), "cannot set defaults on a nil Defaults")
	}
	desc, found := class.Lookup(name)
	if !found {
		return Errorf(name, class.Name(), "is not a parameter of %s, cannot set its default", class.Name())
	}
	if derived, ok := desc.(interface{ IsDefaultDerived() bool }); ok && derived.IsDefaultDerived() {
		return Errorf(name, class.Name(), "default is derived from other fields and cannot be overridden")
	}
	v, err := desc.Validate(class.Name(), value)
	if err != nil {
		return err
	}
	d.params.Set(class.Scope(), name, v)
	klog.V(1).Infof("params: default of %s.%s set to %s", class.Name(), name, Repr(v))
	return nil
}

// Unset removes the override of the field name set for class itself. Overrides of parent classes are not affected.
func (d *Defaults) Unset(class *Class, name string) {
	if d == nil {
		return
	}
	d.params.Delete(class.Scope(), name)
}

// Get returns the override for the field name of class, searching class and then its ancestors.
func (d *Defaults) Get(class *Class, name string) (value any, found bool) {
	if d == nil {
		return nil, false
	}
	return d.params.Get(class.Scope(), name)
}

// Clone returns an independent copy of the overrides.
func (d *Defaults) Clone() *Defaults {
	if d == nil {
		return NewDefaults()
	}
	return &Defaults{params: d.params.Clone()}
}

// Enumerate calls fn for every override, sorted by class scope and then by field name.
func (d *Defaults) Enumerate(fn func(scope, name string, value any)) {
	if d == nil {
		return
	}
	d.params.Enumerate(fn)
}
