// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scoped provides a mapping from a string to any data type that is "scoped" by a class lineage.
package scoped

import (
	"maps"
	"slices"
	"strings"
)

// Separator separates the class names that compose a scope.
const Separator = "/"

// Params provides a mapping from string to any data type that is "scoped":
//
//   - For every scope there is a map of string to data.
//   - Accessing a key triggers a search from the current scope up to the root scope, the
//     first result found is returned.
//
// Scopes are class lineages: a sub-class scope is its parent's scope plus its own name.
// Example: let's say the current Params hold:
//
//	Scope: "/RuleType": { "learning_rate": 1e-5, "size_in": 2 }
//	Scope: "/RuleType/PES": { "learning_rate": 1e-3 }
//
//	Params.Get("/RuleType/PES", "learning_rate") -> 1e-3
//	Params.Get("/RuleType/PES", "size_in") -> 2
//	Params.Get("/RuleType/BCM", "learning_rate") -> 1e-5
//	Params.Get("/RuleType/BCM", "beta") -> Not found.
//
// Every scope name must start with Separator, and the root scope is Separator itself.
type Params struct {
	scopeToMap map[string]map[string]any
}

// New creates an empty Params.
func New() *Params {
	return &Params{scopeToMap: make(map[string]map[string]any)}
}

// Join returns the scope of a class named name whose parent scope is parent.
func Join(parent, name string) string {
	if parent == "" || parent == Separator {
		return Separator + name
	}
	return parent + Separator + name
}

// Parent returns the enclosing scope, or "" if scope is already the root.
func Parent(scope string) string {
	if scope == Separator || scope == "" {
		return ""
	}
	idx := strings.LastIndex(scope, Separator)
	if idx <= 0 {
		return Separator
	}
	return scope[:idx]
}

// Clone returns a copy of p: values themselves are not copied.
func (p *Params) Clone() *Params {
	p2 := New()
	for scope, dataMap := range p.scopeToMap {
		p2.scopeToMap[scope] = maps.Clone(dataMap)
	}
	return p2
}

// Set sets the value for the given key, in the given scope.
func (p *Params) Set(scope, key string, value any) {
	dataMap, found := p.scopeToMap[scope]
	if !found {
		dataMap = make(map[string]any)
		p.scopeToMap[scope] = dataMap
	}
	dataMap[key] = value
}

// Delete removes the key from the given scope only. Parent scopes are not affected.
func (p *Params) Delete(scope, key string) {
	dataMap, found := p.scopeToMap[scope]
	if !found {
		return
	}
	delete(dataMap, key)
	if len(dataMap) == 0 {
		delete(p.scopeToMap, scope)
	}
}

// Get retrieves the value for the given key in the given scope or any parent scope.
// E.g: Get("/RuleType/PES", "learning_rate") will search in "/RuleType/PES", "/RuleType" and "/"
// consecutively until "learning_rate" is found.
//
// It returns the first value found if any, and whether some value was found.
func (p *Params) Get(scope, key string) (value any, found bool) {
	for ; scope != ""; scope = Parent(scope) {
		if dataMap, ok := p.scopeToMap[scope]; ok {
			if value, found = dataMap[key]; found {
				return
			}
		}
	}
	return nil, false
}

// Enumerate calls fn for every value stored, sorted by scope and then by key.
func (p *Params) Enumerate(fn func(scope, key string, value any)) {
	for _, scope := range slices.Sorted(maps.Keys(p.scopeToMap)) {
		keyValues := p.scopeToMap[scope]
		for _, key := range slices.Sorted(maps.Keys(keyValues)) {
			fn(scope, key, keyValues[key])
		}
	}
}
