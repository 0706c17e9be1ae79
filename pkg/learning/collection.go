// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"

	"github.com/gomlx/plasticity/pkg/params"
)

// CollectionKind tells how the rules of a Collection are organized.
type CollectionKind int

const (
	// CollectionNone holds no rule: no learning.
	CollectionNone CollectionKind = iota

	// CollectionSingle holds exactly one rule.
	CollectionSingle

	// CollectionList holds an ordered list of rules.
	CollectionList

	// CollectionNamed holds rules indexed by name.
	CollectionNamed
)

// String implements fmt.Stringer.
func (k CollectionKind) String() string {
	switch k {
	case CollectionNone:
		return "none"
	case CollectionSingle:
		return "single"
	case CollectionList:
		return "list"
	case CollectionNamed:
		return "named"
	default:
		return fmt.Sprintf("CollectionKind(%d)", int(k))
	}
}

// Collection holds the learning rules of a connection: none, a single rule, an ordered list of rules or rules
// indexed by name.
//
// The zero value is the empty (CollectionNone) collection. The constructors Single, List and Named don't
// validate the rules, that is done by CollectionParam when the collection is assigned to a field.
type Collection struct {
	kind   CollectionKind
	single Rule
	list   []Rule
	named  map[string]Rule
}

// Single returns a collection with one rule.
func Single(rule Rule) Collection {
	return Collection{kind: CollectionSingle, single: rule}
}

// List returns a collection with the given rules, in order.
func List(rules ...Rule) Collection {
	return Collection{kind: CollectionList, list: slices.Clone(rules)}
}

// Named returns a collection with the rules indexed by name.
func Named(rules map[string]Rule) Collection {
	return Collection{kind: CollectionNamed, named: maps.Clone(rules)}
}

// Kind of the collection.
func (c Collection) Kind() CollectionKind { return c.kind }

// IsNone returns whether the collection holds no rules at all.
func (c Collection) IsNone() bool { return c.kind == CollectionNone }

// Len returns the number of rules in the collection.
func (c Collection) Len() int {
	switch c.kind {
	case CollectionSingle:
		return 1
	case CollectionList:
		return len(c.list)
	case CollectionNamed:
		return len(c.named)
	default:
		return 0
	}
}

// Rule returns the rule of a CollectionSingle, or nil for other kinds.
func (c Collection) Rule() Rule { return c.single }

// Names returns the sorted names of the rules of a CollectionNamed, or nil for other kinds.
func (c Collection) Names() []string {
	if c.kind != CollectionNamed {
		return nil
	}
	return slices.Sorted(maps.Keys(c.named))
}

// Get returns the rule with the given name of a CollectionNamed.
func (c Collection) Get(name string) (Rule, bool) {
	rule, found := c.named[name]
	return rule, found
}

// All iterates over the rules of the collection: in order for CollectionList, sorted by name for CollectionNamed.
func (c Collection) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		switch c.kind {
		case CollectionSingle:
			yield(c.single)
		case CollectionList:
			for _, rule := range c.list {
				if !yield(rule) {
					return
				}
			}
		case CollectionNamed:
			for _, name := range c.Names() {
				if !yield(c.named[name]) {
					return
				}
			}
		default:
		}
	}
}

// String implements fmt.Stringer.
func (c Collection) String() string {
	switch c.kind {
	case CollectionSingle:
		return params.Repr(c.single)
	case CollectionList:
		return fmt.Sprintf("%v", c.list)
	case CollectionNamed:
		parts := make([]string, 0, len(c.named))
		for _, name := range c.Names() {
			parts = append(parts, fmt.Sprintf("%q: %s", name, c.named[name]))
		}
		return fmt.Sprintf("%v", parts)
	default:
		return "None"
	}
}

// CollectionParam is the descriptor of a field holding the learning rules of a connection.
//
// It accepts nil, a Rule, a Collection, any slice or array of rules and any string-keyed map of rules. Every rule
// must have been created by its configuration's Done method, and must target a recognized signal
// (see Modifies.IsRecognized). The rules themselves are never changed.
//
// Its default is the empty collection.
type CollectionParam struct {
	name     string
	readonly bool
}

var _ params.Typed[Collection] = (*CollectionParam)(nil)

// NewCollectionParam creates the descriptor of a learning rules field.
func NewCollectionParam(name string) *CollectionParam {
	return &CollectionParam{name: name}
}

// Readonly marks the field as read-only, see params.Descriptor.IsReadonly.
func (p *CollectionParam) Readonly() *CollectionParam {
	p.readonly = true
	return p
}

// Name implements params.Descriptor.
func (p *CollectionParam) Name() string { return p.name }

// IsReadonly implements params.Descriptor.
func (p *CollectionParam) IsReadonly() bool { return p.readonly }

// Default implements params.Descriptor.
func (p *CollectionParam) Default() (any, bool) { return Collection{}, true }

// DefaultValue implements params.Typed.
func (p *CollectionParam) DefaultValue() (Collection, bool) { return Collection{}, true }

// Coerce implements params.Typed.
func (p *CollectionParam) Coerce(owner string, arg params.Arg[Collection]) (Collection, error) {
	c, ok := arg.Get()
	if !ok {
		return Collection{}, nil
	}
	return p.Check(owner, c)
}

// Validate implements params.Descriptor, and returns a Collection.
func (p *CollectionParam) Validate(owner string, value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return Collection{}, nil
	case Collection:
		return p.Check(owner, v)
	case Rule:
		rule, err := p.checkRule(owner, v)
		if err != nil {
			return nil, err
		}
		return Single(rule), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		rules := make([]Rule, 0, v.Len())
		for ii := range v.Len() {
			rule, err := p.checkRule(owner, v.Index(ii).Interface())
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		return Collection{kind: CollectionList, list: rules}, nil
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			named := make(map[string]Rule, v.Len())
			entries := v.MapRange()
			for entries.Next() {
				rule, err := p.checkRule(owner, entries.Value().Interface())
				if err != nil {
					return nil, err
				}
				named[entries.Key().String()] = rule
			}
			return Collection{kind: CollectionNamed, named: named}, nil
		}
	default:
	}
	return nil, p.notARuleError(owner, value)
}

// Check validates every rule of the collection.
func (p *CollectionParam) Check(owner string, c Collection) (Collection, error) {
	for rule := range c.All() {
		if _, err := p.checkRule(owner, rule); err != nil {
			return Collection{}, err
		}
	}
	return c, nil
}

func (p *CollectionParam) checkRule(owner string, value any) (Rule, error) {
	rule, ok := value.(Rule)
	if !ok || isNilRule(rule) {
		return nil, p.notARuleError(owner, value)
	}
	if !rule.ruleType().isConstructed() {
		return nil, params.Errorf(p.name, owner, "learning rule %T was not created with its configuration's Done()",
			rule)
	}
	if m := rule.Modifies(); !m.IsRecognized() {
		return nil, params.Errorf(p.name, owner, "unrecognized target %q of learning rule %s", m, rule)
	}
	return rule, nil
}

func (p *CollectionParam) notARuleError(owner string, value any) error {
	return params.Errorf(p.name, owner, "%s must be a learning rule type or a map or list of such types",
		params.Repr(value))
}

func isNilRule(rule Rule) bool {
	if rule == nil {
		return true
	}
	v := reflect.ValueOf(rule)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
