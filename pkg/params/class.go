// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/plasticity/internal/scoped"
)

// Class is the ordered list of field descriptors of a configurable type.
//
// A sub-class inherits the descriptors of its parent: a descriptor with the same name as an inherited one replaces
// it in place (e.g.: to declare a different default), and new descriptors are appended. The resulting order is the
// order in which fields must be assigned (see Fields) and in which they are listed by Frozen.ArgReprs.
type Class struct {
	name   string
	parent *Class
	scope  string
	params []Descriptor
	index  map[string]int
}

// NewClass creates a Class named name, inheriting the descriptors of parent (which can be nil).
//
// It panics if descriptors has two entries with the same name, since it's a programming error.
func NewClass(name string, parent *Class, descriptors ...Descriptor) *Class {
	c := &Class{name: name, parent: parent, index: make(map[string]int)}
	var parentScope string
	if parent != nil {
		c.params = slices.Clone(parent.params)
		for ii, d := range c.params {
			c.index[d.Name()] = ii
		}
		parentScope = parent.scope
	}
	c.scope = scoped.Join(parentScope, name)

	seen := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if seen[d.Name()] {
			exceptions.Panicf("params.NewClass(%q): field %q declared more than once", name, d.Name())
		}
		seen[d.Name()] = true
		if ii, found := c.index[d.Name()]; found {
			c.params[ii] = d
			continue
		}
		c.index[d.Name()] = len(c.params)
		c.params = append(c.params, d)
	}
	return c
}

// Name of the class.
func (c *Class) Name() string { return c.name }

// Parent class, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

// Scope used to look up default overrides, see Defaults.
func (c *Class) Scope() string { return c.scope }

// Params returns the descriptors in declaration order.
func (c *Class) Params() []Descriptor { return slices.Clone(c.params) }

// Lookup returns the descriptor of the field with the given name.
func (c *Class) Lookup(name string) (Descriptor, bool) {
	ii, found := c.index[name]
	if !found {
		return nil, false
	}
	return c.params[ii], true
}

// IsA returns whether c is other or one of its sub-classes.
func (c *Class) IsA(other *Class) bool {
	for ; c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// String returns the class name.
func (c *Class) String() string { return c.name }
