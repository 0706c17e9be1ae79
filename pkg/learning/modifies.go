// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package learning

import "github.com/gomlx/plasticity/pkg/support/sets"

// Modifies is the category of signal a learning rule type adjusts.
//
// It is converted to snake-format strings (e.g.: ModifiesDecoders -> "decoders"), and can be converted
// from string with ModifiesString.
type Modifies int

const (
	// ModifiesNone is used by rule types that don't target any signal (e.g. the abstract RuleType).
	// Such rules can't be attached to a connection.
	ModifiesNone Modifies = iota

	// ModifiesEncoders targets the encoders of the post-synaptic ensemble.
	ModifiesEncoders

	// ModifiesDecoders targets the decoders of the connection.
	ModifiesDecoders

	// ModifiesWeights targets the full connection weights matrix.
	ModifiesWeights
)

//go:generate go tool enumer -type=Modifies -trimprefix=Modifies -transform=snake -values -text -output=gen_modifies_enumer.go modifies.go

// IsRecognized returns whether m is one of the signal categories a learning rule can be attached to:
// encoders, decoders or weights.
func (m Modifies) IsRecognized() bool { return recognizedTargets.Has(m) }

var recognizedTargets = sets.MakeWith(ModifiesEncoders, ModifiesDecoders, ModifiesWeights)
