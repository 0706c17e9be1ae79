// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import "fmt"

// Arg is a constructor argument: either an explicit value or "use the declared default" for the field.
//
// The zero value of Arg is Default, so builders can store one Arg per field and only set the ones
// given by the user. An explicit nil (for pointer or interface types) is a legitimate value and is
// different from Default.
type Arg[T any] struct {
	value T
	set   bool
}

// Default returns the Arg that resolves to the field's declared default.
func Default[T any]() Arg[T] { return Arg[T]{} }

// Value returns an Arg holding an explicit value.
func Value[T any](value T) Arg[T] { return Arg[T]{value: value, set: true} }

// IsDefault returns whether the argument should be resolved to the field's declared default.
func (a Arg[T]) IsDefault() bool { return !a.set }

// Get returns the explicit value and true, or the zero value and false if a is Default.
func (a Arg[T]) Get() (T, bool) { return a.value, a.set }

// String implements fmt.Stringer.
func (a Arg[T]) String() string {
	if !a.set {
		return "Default"
	}
	return fmt.Sprintf("Value(%s)", Repr(a.value))
}
