// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package getopt is a small declarative command-line option parser.
//
// Options are declared as (spec, receiver) pairs. A spec lists aliases
// separated by "|": single-character aliases are short options, longer ones
// are long options. Parse consumes every matched option and returns the
// program name followed by the remaining positional arguments.
//
//	var (
//	    help    bool
//	    level   int
//	    out     string
//	)
//	args, err := getopt.Parse(os.Args,
//	    getopt.Opt("h|help", getopt.Bool(&help)),
//	    getopt.Opt("O", getopt.Int(&level)),
//	    getopt.Opt("o|out", getopt.String(&out)),
//	)
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(2)
//	}
//
// # Syntax
//
//   - -x, --name: a flag with no value
//   - -xVALUE: a short option with an attached value
//   - --name=VALUE: a long option with an attached value
//   - --name VALUE: a long option with a detached value, taken only if VALUE
//     does not start with "-"
//   - --: ends option scanning; the "--" is dropped and the rest is positional
//
// Short options are not grouped: "-abc" is option "a" with value "bc".
//
// # Receivers
//
// Bool, Func and NameFunc receivers are boolean-style and may appear without
// a value. Bool also accepts an attached "true" or "false". Every other
// receiver requires a value and fails with a MissingValueError when none is
// available. Conversion failures are reported as ConversionError and callback
// failures as CallbackError.
package getopt
