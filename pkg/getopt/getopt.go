// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import "fmt"

// Option pairs a spec string with the receiver for its value.
type Option struct {
	Spec     string
	Receiver Receiver
}

// Opt returns an Option for spec and r.
func Opt(spec string, r Receiver) Option {
	return Option{Spec: spec, Receiver: r}
}

// Parse matches opts against args and returns the program name followed by
// the positional arguments. args[0] is the program name.
//
// Options are processed in the order given. For each one, the first matching
// argument before "--" is consumed (plus its detached value, if any) and
// handed to the receiver. Each option is matched at most once; registering
// the same spec twice scans twice. The first error stops parsing; receivers
// that already ran keep their values.
//
// Once every option has been processed, an argument before "--" that still
// starts with "-" is an UnrecognizedOptionError. The first "--" is removed and
// everything after it is returned verbatim.
//
// Parse does not modify args.
func Parse(args []string, opts ...Option) ([]string, error) {
	specs := make([]Spec, len(opts))
	for i, opt := range opts {
		spec, err := ParseSpec(opt.Spec)
		if err != nil {
			return nil, err
		}
		if opt.Receiver == nil {
			return nil, fmt.Errorf("option %q has no receiver: %w", opt.Spec, ErrInvalidSpec)
		}
		specs[i] = spec
	}

	v := newVector(args)
	for i, opt := range opts {
		m, ok, err := v.find(specs[i], opt.Receiver.BoolStyle())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := opt.Receiver.receive(m); err != nil {
			return nil, err
		}
	}
	return v.compact()
}

// Set collects options for a later Parse.
//
//	var set getopt.Set
//	set.Bool("h|help", &help).String("o|out", &out)
//	args, err := set.Parse(os.Args)
type Set struct {
	opts []Option
}

// Add appends an option and returns s.
func (s *Set) Add(spec string, r Receiver) *Set {
	s.opts = append(s.opts, Opt(spec, r))
	return s
}

// Bool adds a boolean option stored in *p.
func (s *Set) Bool(spec string, p *bool) *Set { return s.Add(spec, Bool(p)) }

// Int adds an integer option stored in *p.
func (s *Set) Int(spec string, p *int) *Set { return s.Add(spec, Int(p)) }

// Float adds a floating-point option stored in *p.
func (s *Set) Float(spec string, p *float64) *Set { return s.Add(spec, Float(p)) }

// String adds an option whose value is stored verbatim in *p.
func (s *Set) String(spec string, p *string) *Set { return s.Add(spec, String(p)) }

// Func adds a flag that calls fn when present.
func (s *Set) Func(spec string, fn func() error) *Set { return s.Add(spec, Func(fn)) }

// NameFunc adds a flag that calls fn with the alias used on the command line.
func (s *Set) NameFunc(spec string, fn func(name string) error) *Set {
	return s.Add(spec, NameFunc(fn))
}

// ValueFunc adds an option that calls fn with the alias used and its value.
func (s *Set) ValueFunc(spec string, fn func(name, value string) error) *Set {
	return s.Add(spec, ValueFunc(fn))
}

// Options returns the options added so far.
func (s *Set) Options() []Option {
	out := make([]Option, len(s.opts))
	copy(out, s.opts)
	return out
}

// Parse calls Parse with the collected options.
func (s *Set) Parse(args []string) ([]string, error) {
	return Parse(args, s.opts...)
}
