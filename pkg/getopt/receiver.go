// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"strconv"
	"strings"
	"time"
)

// Receiver stores or handles the value of a matched option. Receivers are
// created with Bool, Int, Float, String, Func, NameFunc, ValueFunc and the
// other constructors in this file; the set is closed.
type Receiver interface {
	// BoolStyle reports whether the option may appear without a value.
	BoolStyle() bool

	receive(m Match) error
}

// Value is a custom option value, set from the option's text.
type Value interface {
	Set(string) error
}

// Bool returns a receiver that sets *p to true when the option is present.
// An attached value of "true" or "false" (any case) sets *p explicitly.
func Bool(p *bool) Receiver { return boolReceiver{p} }

// Int returns a receiver that parses the value as an int. The base is taken
// from the prefix: "0x" for hex, "0" or "0o" for octal, "0b" for binary.
func Int(p *int) Receiver { return intReceiver{p} }

// Int64 is like Int for int64.
func Int64(p *int64) Receiver { return int64Receiver{p} }

// Uint is like Int for unsigned values.
func Uint(p *uint) Receiver { return uintReceiver{p} }

// Float returns a receiver that parses the value as a float64, in decimal or
// scientific notation.
func Float(p *float64) Receiver { return floatReceiver{p} }

// Duration returns a receiver that parses the value with time.ParseDuration.
func Duration(p *time.Duration) Receiver { return durationReceiver{p} }

// String returns a receiver that stores the value as-is.
func String(p *string) Receiver { return stringReceiver{p} }

// Var returns a receiver that passes the value to v.Set.
func Var(v Value) Receiver { return valueReceiver{v} }

// Func returns a receiver that calls fn when the option is present.
func Func(fn func() error) Receiver { return funcReceiver(fn) }

// NameFunc returns a receiver that calls fn with the matched alias. It lets
// several specs share one handler, e.g. "verbose" and "quiet".
func NameFunc(fn func(name string) error) Receiver { return nameFuncReceiver(fn) }

// ValueFunc returns a receiver that calls fn with the matched alias and its
// value. The option requires a value.
func ValueFunc(fn func(name, value string) error) Receiver { return valueFuncReceiver(fn) }

type boolReceiver struct{ p *bool }

func (boolReceiver) BoolStyle() bool { return true }

func (r boolReceiver) receive(m Match) error {
	if !m.HasValue {
		*r.p = true
		return nil
	}
	switch {
	case strings.EqualFold(m.Value, "true"):
		*r.p = true
	case strings.EqualFold(m.Value, "false"):
		*r.p = false
	default:
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "boolean"}
	}
	return nil
}

type intReceiver struct{ p *int }

func (intReceiver) BoolStyle() bool { return false }

func (r intReceiver) receive(m Match) error {
	n, err := strconv.ParseInt(m.Value, 0, strconv.IntSize)
	if err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "integer", Err: err}
	}
	*r.p = int(n)
	return nil
}

type int64Receiver struct{ p *int64 }

func (int64Receiver) BoolStyle() bool { return false }

func (r int64Receiver) receive(m Match) error {
	n, err := strconv.ParseInt(m.Value, 0, 64)
	if err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "integer", Err: err}
	}
	*r.p = n
	return nil
}

type uintReceiver struct{ p *uint }

func (uintReceiver) BoolStyle() bool { return false }

func (r uintReceiver) receive(m Match) error {
	n, err := strconv.ParseUint(m.Value, 0, strconv.IntSize)
	if err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "unsigned integer", Err: err}
	}
	*r.p = uint(n)
	return nil
}

type floatReceiver struct{ p *float64 }

func (floatReceiver) BoolStyle() bool { return false }

func (r floatReceiver) receive(m Match) error {
	f, err := strconv.ParseFloat(m.Value, 64)
	if err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "floating-point", Err: err}
	}
	*r.p = f
	return nil
}

type durationReceiver struct{ p *time.Duration }

func (durationReceiver) BoolStyle() bool { return false }

func (r durationReceiver) receive(m Match) error {
	d, err := time.ParseDuration(m.Value)
	if err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "duration", Err: err}
	}
	*r.p = d
	return nil
}

type stringReceiver struct{ p *string }

func (stringReceiver) BoolStyle() bool { return false }

func (r stringReceiver) receive(m Match) error {
	*r.p = m.Value
	return nil
}

type valueReceiver struct{ v Value }

func (valueReceiver) BoolStyle() bool { return false }

func (r valueReceiver) receive(m Match) error {
	if err := r.v.Set(m.Value); err != nil {
		return &ConversionError{Option: m.Flag(), Value: m.Value, Kind: "value", Err: err}
	}
	return nil
}

type funcReceiver func() error

func (funcReceiver) BoolStyle() bool { return true }

func (fn funcReceiver) receive(m Match) error {
	if err := fn(); err != nil {
		return &CallbackError{Option: m.Flag(), Err: err}
	}
	return nil
}

type nameFuncReceiver func(string) error

func (nameFuncReceiver) BoolStyle() bool { return true }

func (fn nameFuncReceiver) receive(m Match) error {
	if err := fn(m.Name); err != nil {
		return &CallbackError{Option: m.Flag(), Err: err}
	}
	return nil
}

type valueFuncReceiver func(string, string) error

func (valueFuncReceiver) BoolStyle() bool { return false }

func (fn valueFuncReceiver) receive(m Match) error {
	if err := fn(m.Name, m.Value); err != nil {
		return &CallbackError{Option: m.Flag(), Err: err}
	}
	return nil
}
