// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import "strings"

// terminator ends option scanning; everything after it is positional.
const terminator = "--"

// vector is an argument vector together with the slots consumed so far.
// Slot 0 is the program name and is never scanned.
type vector struct {
	args     []string
	consumed []bool
}

func newVector(args []string) *vector {
	return &vector{
		args:     args,
		consumed: make([]bool, len(args)),
	}
}

// find returns the first unconsumed argument before the terminator that
// matches spec, and marks it consumed.
//
// If the match carries no value and boolStyle is false, a long option takes
// the next argument as its value when that argument is unconsumed and does not
// start with "-". A short option never takes a detached value.
func (v *vector) find(spec Spec, boolStyle bool) (Match, bool, error) {
	for i := 1; i < len(v.args); i++ {
		if v.consumed[i] {
			continue
		}
		arg := v.args[i]
		if arg == terminator {
			break
		}
		m, ok := spec.Match(arg)
		if !ok {
			continue
		}
		v.consumed[i] = true

		if m.HasValue || boolStyle {
			return m, true, nil
		}
		if !m.Long {
			return m, true, &MissingValueError{Option: m.Flag()}
		}
		next := i + 1
		if next >= len(v.args) || v.consumed[next] || strings.HasPrefix(v.args[next], "-") {
			return m, true, &MissingValueError{Option: m.Flag()}
		}
		v.consumed[next] = true
		m.Value, m.HasValue = v.args[next], true
		return m, true, nil
	}
	return Match{}, false, nil
}

// compact returns the program name followed by every unconsumed argument, in
// order. The first terminator is dropped and everything after it is kept
// as-is. Before the terminator, an unconsumed argument that starts with "-"
// is an unrecognized option.
func (v *vector) compact() ([]string, error) {
	out := make([]string, 0, len(v.args))
	if len(v.args) == 0 {
		return out, nil
	}
	out = append(out, v.args[0])

	i := 1
	for ; i < len(v.args); i++ {
		if v.consumed[i] {
			continue
		}
		arg := v.args[i]
		if arg == terminator {
			i++
			break
		}
		if strings.HasPrefix(arg, "-") {
			return nil, &UnrecognizedOptionError{Arg: arg}
		}
		out = append(out, arg)
	}
	for ; i < len(v.args); i++ {
		if !v.consumed[i] {
			out = append(out, v.args[i])
		}
	}
	return out, nil
}
