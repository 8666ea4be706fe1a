// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yeetrun/decopt/pkg/cli"
	"github.com/yeetrun/decopt/pkg/getopt"
	"github.com/yeetrun/decopt/pkg/tui"
	"gopkg.in/yaml.v3"
)

type matchResult struct {
	Spec    string   `json:"spec" yaml:"spec"`
	Arg     string   `json:"arg" yaml:"arg"`
	Matched bool     `json:"matched" yaml:"matched"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value   *string  `json:"value,omitempty" yaml:"value,omitempty"`
	Style   string   `json:"style,omitempty" yaml:"style,omitempty"`
	Aliases []string `json:"aliases" yaml:"aliases"`
}

func newMatchResult(spec getopt.Spec, arg string) matchResult {
	res := matchResult{Spec: spec.String(), Arg: arg, Aliases: spec.Aliases()}
	m, ok := spec.Match(arg)
	if !ok {
		return res
	}
	res.Matched = true
	res.Name = m.Name
	if m.HasValue {
		value := m.Value
		res.Value = &value
	}
	res.Style = "short"
	if m.Long {
		res.Style = "long"
	}
	return res
}

func (a *app) handleMatch(_ context.Context, args []string) error {
	format := "plain"
	rest, err := getopt.Parse(commandArgv(cli.CommandMatch, args),
		getopt.Opt("format", getopt.String(&format)),
	)
	if err != nil {
		return err
	}
	rest = rest[1:]
	if err := cli.RequireArgs(cli.CommandMatch, rest, 2); err != nil {
		return err
	}
	spec, err := getopt.ParseSpec(rest[0])
	if err != nil {
		return err
	}
	return writeMatch(a.stdout, a.color, format, newMatchResult(spec, rest[1]))
}

func writeMatch(w io.Writer, c tui.Colorizer, format string, res matchResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "plain":
		if !res.Matched {
			_, err := fmt.Fprintf(w, "%s does not match %s\n", c.Wrap(tui.ColorYellow, res.Arg), res.Spec)
			return err
		}
		fmt.Fprintf(w, " name: %s\n", c.Wrap(tui.ColorGreen, res.Name))
		if res.Value != nil {
			fmt.Fprintf(w, "value: %s\n", *res.Value)
		} else {
			fmt.Fprintf(w, "value: %s\n", c.Wrap(tui.ColorDim, "(none)"))
		}
		_, err := fmt.Fprintf(w, "style: %s\n", res.Style)
		return err
	default:
		return fmt.Errorf("unknown format %q (want plain, json or yaml)", format)
	}
}
