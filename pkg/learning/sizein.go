// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import (
	"strconv"

	"github.com/gomlx/plasticity/pkg/params"
)

// Symbolic values of SizeIn: the builder derives the dimensionality of the error signal from the connection.
const (
	// SizeInPre is the dimensionality of the pre object.
	SizeInPre = "pre"

	// SizeInPost is the dimensionality of the post object.
	SizeInPost = "post"

	// SizeInMid is the dimensionality of the connection's mid space (`size_mid`).
	SizeInMid = "mid"

	// SizeInPreState is the dimensionality of the pre-synaptic ensemble, even if the pre object are its neurons.
	SizeInPreState = "pre_state"

	// SizeInPostState is the dimensionality of the post-synaptic ensemble, even if the post object are its neurons.
	SizeInPostState = "post_state"
)

// SizeInSymbols lists the valid symbolic values of SizeIn.
var SizeInSymbols = []string{SizeInPre, SizeInPost, SizeInMid, SizeInPreState, SizeInPostState}

// SizeIn is the dimensionality of the error (or modulatory) signal a learning rule expects: either a literal
// number of dimensions, or a symbolic name (see SizeInSymbols) that the builder resolves from the connection.
//
// The zero value is 0 dimensions.
type SizeIn struct {
	symbol   string
	dims     int
	symbolic bool
}

// Dims returns a SizeIn with a literal number of dimensions. It is validated when assigned to a rule.
func Dims(n int) SizeIn { return SizeIn{dims: n} }

// Symbol returns a symbolic SizeIn. It is validated when assigned to a rule.
func Symbol(name string) SizeIn { return SizeIn{symbol: name, symbolic: true} }

// IsSymbolic returns whether s is one of the symbolic names, as opposed to a literal dimension.
func (s SizeIn) IsSymbolic() bool { return s.symbolic }

// Symbol returns the symbolic name, or "" if s is a literal dimension.
func (s SizeIn) Symbol() string { return s.symbol }

// Dims returns the literal dimension, or 0 if s is symbolic.
func (s SizeIn) Dims() int { return s.dims }

// String implements fmt.Stringer.
func (s SizeIn) String() string {
	if s.symbolic {
		return s.symbol
	}
	return strconv.Itoa(s.dims)
}

// ArgRepr implements params.ArgReprer: symbolic names are quoted.
func (s SizeIn) ArgRepr() string {
	if s.symbolic {
		return strconv.Quote(s.symbol)
	}
	return strconv.Itoa(s.dims)
}

// SizeInParam is the descriptor of SizeIn fields: symbolic values must be one of SizeInSymbols, and literal
// dimensions are validated as a non-negative integer.
//
// The kind of the value (symbolic or literal) is preserved.
type SizeInParam struct {
	dims    *params.Number[int]
	symbols *params.Strings
	def     SizeIn
	hasDef  bool
}

var _ params.Typed[SizeIn] = (*SizeInParam)(nil)

// NewSizeInParam creates a SizeIn descriptor, without a default.
func NewSizeInParam(name string) *SizeInParam {
	return &SizeInParam{
		dims:    params.NewNumber[int](name).Low(0),
		symbols: params.NewStrings(name, SizeInSymbols...),
	}
}

// WithDefault sets the declared default. It is not validated.
func (p *SizeInParam) WithDefault(value SizeIn) *SizeInParam {
	p.def, p.hasDef = value, true
	return p
}

// Name implements params.Descriptor.
func (p *SizeInParam) Name() string { return p.dims.Name() }

// IsReadonly implements params.Descriptor.
func (p *SizeInParam) IsReadonly() bool { return false }

// Default implements params.Descriptor.
func (p *SizeInParam) Default() (any, bool) {
	if !p.hasDef {
		return nil, false
	}
	return p.def, true
}

// DefaultValue implements params.Typed.
func (p *SizeInParam) DefaultValue() (SizeIn, bool) { return p.def, p.hasDef }

// Coerce implements params.Typed.
func (p *SizeInParam) Coerce(owner string, arg params.Arg[SizeIn]) (SizeIn, error) {
	value, ok := arg.Get()
	if !ok {
		if !p.hasDef {
			return SizeIn{}, params.Errorf(p.Name(), owner, "is not set and has no default")
		}
		return p.def, nil
	}
	return p.Check(owner, value)
}

// Validate implements params.Descriptor. It accepts a SizeIn, a string or an integer value.
func (p *SizeInParam) Validate(owner string, value any) (any, error) {
	switch v := value.(type) {
	case SizeIn:
		return p.Check(owner, v)
	case string:
		return p.Check(owner, Symbol(v))
	}
	n, err := p.dims.Validate(owner, value)
	if err != nil {
		return nil, err
	}
	return Dims(n.(int)), nil
}

// Check validates an explicit value.
func (p *SizeInParam) Check(owner string, value SizeIn) (SizeIn, error) {
	if value.symbolic {
		if _, err := p.symbols.Check(owner, value.symbol); err != nil {
			return value, err
		}
		return value, nil
	}
	if _, err := p.dims.Check(owner, value.dims); err != nil {
		return value, err
	}
	return value, nil
}
