// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// aliasSep separates the aliases of one option spec.
const aliasSep = "|"

// Spec is a parsed option spec: one or more aliases separated by "|". A
// single-character alias is matched as a short option (-x), any other alias
// as a long option (--name).
type Spec struct {
	raw     string
	aliases []string
}

// ParseSpec parses an option spec such as "o|out". It fails if the spec has an
// empty alias, which includes the empty spec itself.
func ParseSpec(spec string) (Spec, error) {
	aliases := strings.Split(spec, aliasSep)
	for _, alias := range aliases {
		if alias == "" {
			return Spec{}, &InvalidSpecError{Spec: spec}
		}
	}
	return Spec{raw: spec, aliases: aliases}, nil
}

// String returns the spec as it was written.
func (s Spec) String() string {
	return s.raw
}

// Aliases returns the aliases of the spec in declaration order.
func (s Spec) Aliases() []string {
	return slices.Clone(s.aliases)
}

// Match is the result of matching one argument against a spec.
type Match struct {
	// Name is the matched alias as written on the command line, without dashes.
	Name string
	// Value is the attached value ("-oFILE", "--out=FILE"), or the detached
	// value for long options once the scanner has consumed the next argument.
	Value string
	// HasValue reports whether Value was supplied. An explicit empty value
	// ("--out=") has HasValue set.
	HasValue bool
	// Long reports whether the argument used the "--name" form.
	Long bool
}

// Flag returns the option as it appeared on the command line, e.g. "-o" or
// "--out".
func (m Match) Flag() string {
	if m.Long {
		return "--" + m.Name
	}
	return "-" + m.Name
}

// Match reports whether arg names one of the spec's aliases and splits off an
// attached value.
//
// Long options ("--name") match an alias exactly; text after the first "="
// is the value. Short options ("-x") match a single-character alias against
// the first character of arg; everything after that character is the value
// verbatim, so "-o=FILE" yields the value "=FILE". The bare arguments "-" and
// "--" never match.
func (s Spec) Match(arg string) (Match, bool) {
	rest, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return Match{}, false
	}
	long := false
	if r, ok := strings.CutPrefix(rest, "-"); ok {
		rest, long = r, true
	}
	if rest == "" {
		return Match{}, false
	}

	if long {
		name, value, hasValue := strings.Cut(rest, "=")
		if slices.Contains(s.aliases, name) {
			return Match{Name: name, Value: value, HasValue: hasValue, Long: true}, true
		}
		return Match{}, false
	}

	for _, alias := range s.aliases {
		if utf8.RuneCountInString(alias) != 1 || !strings.HasPrefix(rest, alias) {
			continue
		}
		m := Match{Name: alias}
		if len(rest) > len(alias) {
			m.Value = rest[len(alias):]
			m.HasValue = true
		}
		return m, true
	}
	return Match{}, false
}

// MatchArg matches a single argument against a spec string. An invalid spec
// never matches.
func MatchArg(arg, spec string) (Match, bool) {
	s, err := ParseSpec(spec)
	if err != nil {
		return Match{}, false
	}
	return s.Match(arg)
}
