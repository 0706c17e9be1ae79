// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Fields records the construction of an instance of a Class: it is the mutable phase of a configurable object.
//
// Every descriptor of the class must be assigned exactly once, in declaration order, with Assign (constructor
// arguments) or Fix (values fixed by the type). This lets later fields be defined in terms of earlier ones.
// The first error is kept, and further assignments become no-ops returning zero values: check it with Err or
// Freeze.
//
// Freeze ends the construction and returns the immutable Frozen record.
type Fields struct {
	class    *Class
	defaults *Defaults
	entries  []entry
	err      error
	frozen   bool
}

type entry struct {
	name        string
	value       any
	def         any
	hasDefault  bool
	fixed       bool
	derivedFrom string
}

// NewFields starts the construction of an instance of class.
// If defaults is not nil, it is used to override the declared defaults of the fields.
func NewFields(class *Class, defaults *Defaults) *Fields {
	return &Fields{class: class, defaults: defaults, entries: make([]entry, 0, len(class.params))}
}

// Err returns the first error that happened during the construction, if any.
func (f *Fields) Err() error { return f.err }

// Assign a constructor argument to the next declared field, through its descriptor d.
//
// If arg is Default, it resolves to the default override (see Defaults) if there is one, or to the declared default
// otherwise. It returns the stored value, or the zero value if the construction already failed.
func Assign[T any](f *Fields, d Typed[T], arg Arg[T]) T {
	var zero T
	if !f.next(d) {
		return zero
	}
	if arg.IsDefault() {
		if override, found := f.defaults.Get(f.class, d.Name()); found {
			// Overrides may come from a parent class with looser constraints, so they are validated again.
			valueAny, err := d.Validate(f.class.name, override)
			if err != nil {
				f.err = err
				return zero
			}
			value, ok := valueAny.(T)
			if !ok && valueAny != nil {
				f.err = Errorf(d.Name(), f.class.name, "default override %s is a %T, expected a %T", Repr(valueAny), valueAny, zero)
				return zero
			}
			f.record(d, value, false)
			return value
		}
	}
	value, err := d.Coerce(f.class.name, arg)
	if err != nil {
		f.err = err
		return zero
	}
	f.record(d, value, false)
	return value
}

// Fix assigns the next declared field with a value fixed by the type, not given by the user.
//
// The value is validated, but defaults are ignored and the field is not part of the canonical representation.
func Fix[T any](f *Fields, d Typed[T], value T) T {
	var zero T
	if !f.next(d) {
		return zero
	}
	value, err := d.Coerce(f.class.name, Value(value))
	if err != nil {
		f.err = err
		return zero
	}
	f.record(d, value, true)
	return value
}

// Derived marks the already assigned field name as mirroring the field from by default: it is omitted from the
// canonical representation when both have the same value.
func (f *Fields) Derived(name, from string) {
	if f.frozen {
		if f.err == nil {
			f.err = FrozenError(name, f.class.name)
		}
		return
	}
	for ii := range f.entries {
		if f.entries[ii].name == name {
			f.entries[ii].derivedFrom = from
			return
		}
	}
	if f.err == nil {
		f.err = Errorf(name, f.class.name, "cannot be derived from %q before being assigned", from)
	}
}

// next checks that d is the next field to be assigned.
func (f *Fields) next(d Descriptor) bool {
	if f.err != nil {
		return false
	}
	if f.frozen {
		f.err = FrozenError(d.Name(), f.class.name)
		return false
	}
	pos := len(f.entries)
	if pos >= len(f.class.params) {
		f.err = Errorf(d.Name(), f.class.name, "is not a field of %s, or it was already assigned", f.class.name)
		return false
	}
	if want := f.class.params[pos]; want != d {
		f.err = Errorf(d.Name(), f.class.name, "assigned out of declaration order, expected field %q", want.Name())
		return false
	}
	return true
}

func (f *Fields) record(d Descriptor, value any, fixed bool) {
	def, hasDefault := d.Default()
	f.entries = append(f.entries, entry{name: d.Name(), value: value, def: def, hasDefault: hasDefault, fixed: fixed})
}

// Freeze ends the construction and returns the immutable record of the assigned fields.
// It fails if there was an error during the construction, or if some declared field was not assigned.
func (f *Fields) Freeze() (Frozen, error) {
	if f.err != nil {
		return Frozen{}, f.err
	}
	if f.frozen {
		return Frozen{}, FrozenError("", f.class.name)
	}
	if pos := len(f.entries); pos < len(f.class.params) {
		f.err = Errorf(f.class.params[pos].Name(), f.class.name, "was never assigned")
		return Frozen{}, f.err
	}
	f.frozen = true
	return Frozen{class: f.class, entries: slices.Clone(f.entries)}, nil
}

// Frozen is the immutable record of the fields of a constructed object.
//
// It provides the canonical representation of the object, see ArgReprs.
type Frozen struct {
	class   *Class
	entries []entry
}

// Class of the recorded object.
func (fr Frozen) Class() *Class { return fr.class }

// Get returns the value stored for the field name.
func (fr Frozen) Get(name string) (any, bool) {
	for _, e := range fr.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return nil, false
}

// Names of the fields, in declaration order.
func (fr Frozen) Names() []string {
	names := make([]string, 0, len(fr.entries))
	for _, e := range fr.entries {
		names = append(names, e.name)
	}
	return names
}

// ArgReprs returns "name=value" for every constructor argument whose value differs from the field's declared
// default, in declaration order.
//
// Fixed fields are never listed, and a Derived field is omitted when it has the same value as the field it
// mirrors.
func (fr Frozen) ArgReprs() []string {
	var reprs []string
	for _, e := range fr.entries {
		if e.fixed {
			continue
		}
		if e.hasDefault && reflect.DeepEqual(e.value, e.def) {
			continue
		}
		if e.derivedFrom != "" {
			if from, found := fr.Get(e.derivedFrom); found && reflect.DeepEqual(e.value, from) {
				continue
			}
		}
		reprs = append(reprs, fmt.Sprintf("%s=%s", e.name, Repr(e.value)))
	}
	return reprs
}

// String returns the canonical representation, e.g.: `PES(learning_rate=0.0002)`.
func (fr Frozen) String() string {
	if fr.class == nil {
		return "<unset>"
	}
	return fr.class.name + "(" + strings.Join(fr.ArgReprs(), ", ") + ")"
}

// ArgReprer is implemented by values with a custom representation in Frozen.ArgReprs.
type ArgReprer interface {
	ArgRepr() string
}

// Repr returns the representation of a field value used in the canonical representation of objects:
// nil is "None", strings are quoted, and ArgReprer and fmt.Stringer are used if implemented.
func Repr(value any) string {
	if isNil(value) {
		return "None"
	}
	switch v := value.(type) {
	case ArgReprer:
		return v.ArgRepr()
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}
