// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sets implement a set type as a `map[T]struct{}` but with better ergonomics, and an
// insertion-ordered variant for small closed sets of names.
package sets

import (
	"fmt"
	"strings"
)

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// Make returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func Make[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// MakeWith creates a Set[T] with the given elements inserted.
func MakeWith[T comparable](elements ...T) Set[T] {
	s := Make[T](len(elements))
	s.Insert(elements...)
	return s
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert keys into set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Ordered is a set that remembers the order in which elements were first inserted.
//
// It is meant for small, usually constant, sets like the names of the valid values
// of a parameter, where the order is used when reporting them.
// The zero value is an empty set ready to use.
type Ordered[T comparable] struct {
	index    Set[T]
	elements []T
}

// MakeOrdered creates an Ordered set with the given elements, duplicates are dropped.
func MakeOrdered[T comparable](elements ...T) *Ordered[T] {
	o := &Ordered[T]{}
	o.Insert(elements...)
	return o
}

// Insert appends the keys not yet in the set, preserving their order.
func (o *Ordered[T]) Insert(keys ...T) {
	if o.index == nil {
		o.index = Make[T](len(keys))
	}
	for _, key := range keys {
		if o.index.Has(key) {
			continue
		}
		o.index.Insert(key)
		o.elements = append(o.elements, key)
	}
}

// Has returns true if the set has the given key.
func (o *Ordered[T]) Has(key T) bool {
	if o == nil {
		return false
	}
	return o.index.Has(key)
}

// Len returns the number of elements in the set.
func (o *Ordered[T]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.elements)
}

// Values returns a copy of the elements in insertion order.
func (o *Ordered[T]) Values() []T {
	if o == nil || len(o.elements) == 0 {
		return nil
	}
	values := make([]T, len(o.elements))
	copy(values, o.elements)
	return values
}

// String lists the elements in insertion order, e.g.: `("pre", "post")` for strings.
func (o *Ordered[T]) String() string {
	parts := make([]string, 0, o.Len())
	for _, e := range o.Values() {
		parts = append(parts, fmt.Sprintf("%#v", e))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
