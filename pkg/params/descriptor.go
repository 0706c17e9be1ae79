// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import (
	"reflect"

	"github.com/gomlx/plasticity/pkg/support/sets"
	"golang.org/x/exp/constraints"
)

// Descriptor describes one field of a configurable class: its name, its declared default and how to
// validate values given to it.
//
// Descriptors are created once (usually as package variables) and shared by all instances of the class:
// they hold no per-instance state.
type Descriptor interface {
	// Name of the field.
	Name() string

	// IsReadonly is a hint to the class author that no setter should be exposed for the field.
	// Constructed objects are always immutable, regardless of this flag.
	IsReadonly() bool

	// Default returns the declared default, and whether there is one.
	Default() (value any, ok bool)

	// Validate checks a dynamically typed value and returns it coerced to the field type.
	// owner is used for error reporting only.
	Validate(owner string, value any) (any, error)
}

// Typed is a Descriptor for fields of type T.
type Typed[T any] interface {
	Descriptor

	// DefaultValue returns the declared default, and whether there is one.
	DefaultValue() (value T, ok bool)

	// Coerce resolves arg to the declared default if it is Default, or validates it otherwise.
	// The declared default is trusted and not validated.
	Coerce(owner string, arg Arg[T]) (T, error)
}

// attr holds what is common to all descriptors.
type attr[T any] struct {
	name       string
	def        T
	hasDefault bool
	readonly   bool
}

// Name implements Descriptor.
func (a *attr[T]) Name() string { return a.name }

// IsReadonly implements Descriptor.
func (a *attr[T]) IsReadonly() bool { return a.readonly }

// Default implements Descriptor.
func (a *attr[T]) Default() (any, bool) {
	if !a.hasDefault {
		return nil, false
	}
	return a.def, true
}

// DefaultValue implements Typed.
func (a *attr[T]) DefaultValue() (T, bool) { return a.def, a.hasDefault }

func (a *attr[T]) resolve(owner string) (T, error) {
	if !a.hasDefault {
		var zero T
		return zero, Errorf(a.name, owner, "is not set and has no default")
	}
	return a.def, nil
}

// Param is a generic descriptor for fields of any type.
//
// Nil values (for pointer, interface, map and slice types) are only accepted if the Param is Optional.
// An optional coercion function can further validate or transform the values.
type Param[T any] struct {
	attr[T]
	optional       bool
	derivedDefault bool
	coerce         func(owner string, value T) (T, error)
	fromAny        func(value any) (T, bool)
}

var _ Typed[int] = (*Param[int])(nil)

// NewParam creates a Param descriptor with the given field name, without a default.
func NewParam[T any](name string) *Param[T] {
	return &Param[T]{attr: attr[T]{name: name}}
}

// WithDefault sets the declared default. It is not validated.
func (p *Param[T]) WithDefault(value T) *Param[T] {
	p.def, p.hasDefault = value, true
	return p
}

// Readonly marks the field as read-only, see Descriptor.IsReadonly.
func (p *Param[T]) Readonly() *Param[T] {
	p.readonly = true
	return p
}

// Optional allows the field to be set to nil.
func (p *Param[T]) Optional() *Param[T] {
	p.optional = true
	return p
}

// IsOptional returns whether the field accepts nil.
func (p *Param[T]) IsOptional() bool { return p.optional }

// DerivedDefault marks the default of the field as computed from other fields when the object is constructed.
// Defaults.Set rejects overrides of such fields, since they would never be used.
func (p *Param[T]) DerivedDefault() *Param[T] {
	p.derivedDefault = true
	return p
}

// IsDefaultDerived returns whether the default of the field is computed from other fields, see DerivedDefault.
func (p *Param[T]) IsDefaultDerived() bool { return p.derivedDefault }

// WithCoerce sets a function to validate and possibly transform non-nil explicit values.
func (p *Param[T]) WithCoerce(fn func(owner string, value T) (T, error)) *Param[T] {
	p.coerce = fn
	return p
}

// WithFromAny sets a conversion used by Validate for dynamically typed values that are not of type T.
// It should return false if it can't convert the value.
func (p *Param[T]) WithFromAny(fn func(value any) (T, bool)) *Param[T] {
	p.fromAny = fn
	return p
}

// Coerce implements Typed.
func (p *Param[T]) Coerce(owner string, arg Arg[T]) (T, error) {
	value, ok := arg.Get()
	if !ok {
		return p.resolve(owner)
	}
	return p.check(owner, value)
}

// Validate implements Descriptor.
func (p *Param[T]) Validate(owner string, value any) (any, error) {
	if p.fromAny != nil && value != nil {
		if _, isT := value.(T); !isT {
			if converted, ok := p.fromAny(value); ok {
				value = converted
			}
		}
	}
	v, err := convert[T](p.name, owner, value)
	if err != nil {
		return nil, err
	}
	return p.check(owner, v)
}

func (p *Param[T]) check(owner string, value T) (T, error) {
	if isNil(value) {
		if !p.optional {
			return value, Errorf(p.name, owner, "is not optional; cannot set to nil")
		}
		return value, nil
	}
	if p.coerce != nil {
		return p.coerce(owner, value)
	}
	return value, nil
}

// Numeric types accepted by Number.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number is a descriptor for numeric fields with optional lower and upper bounds.
//
// Bounds are inclusive by default, see LowOpen and HighOpen for exclusive ones.
// NaN values are always rejected.
type Number[T Numeric] struct {
	attr[T]
	low, high         T
	hasLow, hasHigh   bool
	lowOpen, highOpen bool
}

var _ Typed[float64] = (*Number[float64])(nil)

// NewNumber creates a Number descriptor with the given field name, unbounded and without a default.
func NewNumber[T Numeric](name string) *Number[T] {
	return &Number[T]{attr: attr[T]{name: name}}
}

// WithDefault sets the declared default. It is not validated.
func (n *Number[T]) WithDefault(value T) *Number[T] {
	n.def, n.hasDefault = value, true
	return n
}

// Readonly marks the field as read-only, see Descriptor.IsReadonly.
func (n *Number[T]) Readonly() *Number[T] {
	n.readonly = true
	return n
}

// Low sets the inclusive lower bound.
func (n *Number[T]) Low(low T) *Number[T] {
	n.low, n.hasLow, n.lowOpen = low, true, false
	return n
}

// LowOpen sets the exclusive lower bound.
func (n *Number[T]) LowOpen(low T) *Number[T] {
	n.low, n.hasLow, n.lowOpen = low, true, true
	return n
}

// High sets the inclusive upper bound.
func (n *Number[T]) High(high T) *Number[T] {
	n.high, n.hasHigh, n.highOpen = high, true, false
	return n
}

// HighOpen sets the exclusive upper bound.
func (n *Number[T]) HighOpen(high T) *Number[T] {
	n.high, n.hasHigh, n.highOpen = high, true, true
	return n
}

// Coerce implements Typed.
func (n *Number[T]) Coerce(owner string, arg Arg[T]) (T, error) {
	value, ok := arg.Get()
	if !ok {
		return n.resolve(owner)
	}
	return n.Check(owner, value)
}

// Validate implements Descriptor. Values of other numeric types are converted, as long as no precision is lost.
func (n *Number[T]) Validate(owner string, value any) (any, error) {
	v, err := convert[T](n.name, owner, value)
	if err != nil {
		return nil, err
	}
	return n.Check(owner, v)
}

// Check validates an explicit value against the bounds.
func (n *Number[T]) Check(owner string, value T) (T, error) {
	if value != value { // NaN
		return value, Errorf(n.name, owner, "must be a number (got NaN)")
	}
	if n.hasLow {
		if n.lowOpen && value <= n.low {
			return value, Errorf(n.name, owner, "value must be greater than %v (got %v)", n.low, value)
		} else if value < n.low {
			return value, Errorf(n.name, owner, "value must be greater than or equal to %v (got %v)", n.low, value)
		}
	}
	if n.hasHigh {
		if n.highOpen && value >= n.high {
			return value, Errorf(n.name, owner, "value must be less than %v (got %v)", n.high, value)
		} else if value > n.high {
			return value, Errorf(n.name, owner, "value must be less than or equal to %v (got %v)", n.high, value)
		}
	}
	return value, nil
}

// Strings is a descriptor for string fields restricted to a closed set of valid values.
type Strings struct {
	attr[string]
	valid *sets.Ordered[string]
}

var _ Typed[string] = (*Strings)(nil)

// NewStrings creates a Strings descriptor accepting only the given values, without a default.
func NewStrings(name string, valid ...string) *Strings {
	return &Strings{attr: attr[string]{name: name}, valid: sets.MakeOrdered(valid...)}
}

// WithDefault sets the declared default. It is not validated.
func (s *Strings) WithDefault(value string) *Strings {
	s.def, s.hasDefault = value, true
	return s
}

// Readonly marks the field as read-only, see Descriptor.IsReadonly.
func (s *Strings) Readonly() *Strings {
	s.readonly = true
	return s
}

// ValidStrings returns the accepted values, in the order they were declared.
func (s *Strings) ValidStrings() []string { return s.valid.Values() }

// Coerce implements Typed.
func (s *Strings) Coerce(owner string, arg Arg[string]) (string, error) {
	value, ok := arg.Get()
	if !ok {
		return s.resolve(owner)
	}
	return s.Check(owner, value)
}

// Validate implements Descriptor.
func (s *Strings) Validate(owner string, value any) (any, error) {
	v, err := convert[string](s.name, owner, value)
	if err != nil {
		return nil, err
	}
	return s.Check(owner, v)
}

// Check validates that value is one of the valid strings.
func (s *Strings) Check(owner, value string) (string, error) {
	if !s.valid.Has(value) {
		return value, Errorf(s.name, owner, "%q is not a valid string value (must be one of %s)", value, s.valid)
	}
	return value, nil
}

// convert value to T: it accepts values of type T, nil for nilable types, and numeric values that can be
// converted to a numeric T without loss.
func convert[T any](name, owner string, value any) (T, error) {
	var zero T
	typeOfT := reflect.TypeFor[T]()
	if value == nil {
		if isNilable(typeOfT.Kind()) {
			return zero, nil
		}
		return zero, Errorf(name, owner, "cannot be nil, it must be a %s", typeOfT)
	}
	if v, ok := value.(T); ok {
		return v, nil
	}
	v := reflect.ValueOf(value)
	if isNumeric(v.Kind()) && isNumeric(typeOfT.Kind()) {
		converted := v.Convert(typeOfT)
		if converted.Convert(v.Type()).Interface() == value {
			return converted.Interface().(T), nil
		}
		return zero, Errorf(name, owner, "value %v (%T) cannot be converted to %s without loss", value, value, typeOfT)
	}
	return zero, Errorf(name, owner, "must be a %s (got %v of type %T)", typeOfT, value, value)
}

func isNumeric(kind reflect.Kind) bool {
	return (kind >= reflect.Int && kind <= reflect.Uint64) || kind == reflect.Float32 || kind == reflect.Float64
}

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isNil[T any](value T) bool {
	v := reflect.ValueOf(any(value))
	if !v.IsValid() {
		return true
	}
	if isNilable(v.Kind()) {
		return v.IsNil()
	}
	return false
}
