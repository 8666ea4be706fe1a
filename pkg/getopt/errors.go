// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds a parse can end with. The typed errors
// below match them with errors.Is.
var (
	// ErrMissingValue is returned when a value-taking option has no value.
	ErrMissingValue = errors.New("option needs a parameter")

	// ErrConversion is returned when a value cannot be converted to the
	// receiver's type.
	ErrConversion = errors.New("cannot convert option value")

	// ErrUnrecognized is returned when an argument still looks like an option
	// after every spec has been matched.
	ErrUnrecognized = errors.New("unrecognized option")

	// ErrInvalidSpec is returned for a spec string with an empty alias.
	ErrInvalidSpec = errors.New("invalid option spec")
)

// MissingValueError is returned when an option that requires a value was given
// none, or when a short option was not followed by attached text.
type MissingValueError struct {
	Option string // Option name as it appeared on the command line
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option needs a parameter: %s", e.Option)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// ConversionError is returned when a value cannot be parsed as the type the
// receiver expects. Err holds the underlying strconv or Value error.
type ConversionError struct {
	Option string
	Value  string
	Kind   string // "boolean", "integer", ...
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s for option %s", e.Value, e.Kind, e.Option)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// UnrecognizedOptionError is returned when an argument beginning with "-" is
// left over after all specs were tried and no "--" terminator preceded it.
type UnrecognizedOptionError struct {
	Arg string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option: %s", e.Arg)
}

func (e *UnrecognizedOptionError) Is(target error) bool {
	return target == ErrUnrecognized
}

// InvalidSpecError is returned for a spec with no aliases or an empty alias.
type InvalidSpecError struct {
	Spec string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid option spec: %q", e.Spec)
}

func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// CallbackError wraps the error returned by a Func, NameFunc or ValueFunc
// receiver.
type CallbackError struct {
	Option string
	Err    error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("option %s: %v", e.Option, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
