// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFrozen is the cause of the ValidationError returned when changing a configuration after it was finished
// with `Done()`. Test for it with `errors.Is(err, params.ErrFrozen)`.
var ErrFrozen = errors.New("cannot change configuration after Done()")

// ValidationError reports an invalid value for a field (Attr) of a configurable object (Obj).
//
// It is always returned wrapped with a stack trace, use errors.As (or AsValidationError) to retrieve it.
type ValidationError struct {
	// Attr is the name of the offending field.
	Attr string

	// Obj describes the owner of the field, usually its type name.
	Obj string

	// Msg describes the failure.
	Msg string

	cause error
}

// Error implements the error interface, in the form "Obj.Attr: Msg".
func (e *ValidationError) Error() string {
	switch {
	case e.Obj == "" && e.Attr == "":
		return e.Msg
	case e.Attr == "":
		return fmt.Sprintf("%s: %s", e.Obj, e.Msg)
	case e.Obj == "":
		return fmt.Sprintf("%s: %s", e.Attr, e.Msg)
	}
	return fmt.Sprintf("%s.%s: %s", e.Obj, e.Attr, e.Msg)
}

// Unwrap returns the underlying cause, if any (e.g.: ErrFrozen).
func (e *ValidationError) Unwrap() error { return e.cause }

// Errorf creates a ValidationError for the field attr of obj, with a formatted message.
func Errorf(attr, obj, format string, args ...any) error {
	return errors.WithStack(&ValidationError{Attr: attr, Obj: obj, Msg: fmt.Sprintf(format, args...)})
}

// FrozenError is the ValidationError returned when trying to change attr of obj after its construction.
func FrozenError(attr, obj string) error {
	return errors.WithStack(&ValidationError{Attr: attr, Obj: obj, Msg: ErrFrozen.Error(), cause: ErrFrozen})
}

// AsValidationError returns the ValidationError in err's chain, if there is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
