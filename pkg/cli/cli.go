// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/shayne/yargs"
	"github.com/yeetrun/decopt/pkg/getopt"
)

const ToolName = "decopt"

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

// OptionInfo documents one option of a command. Spec uses the getopt spec
// syntax; Arg names the value for options that take one.
type OptionInfo struct {
	Spec string
	Arg  string
	Help string
}

const (
	CommandDemo    = "demo"
	CommandMatch   = "match"
	CommandVersion = "version"
	CommandEnv     = "env"
)

var commandInfos = map[string]CommandInfo{
	CommandDemo: {Name: CommandDemo, Description: "Parse options like a compiler driver and print the result", Usage: "<inputs...>", Examples: []string{
		"decopt demo -O3 --quiet --threads=max foo.c bar.c -ohoge.exe",
		"decopt demo --double 2.5 -- -literal-input",
	}, Aliases: []string{"test"}},
	CommandMatch: {Name: CommandMatch, Description: "Show how one argument matches an option spec", Usage: "-- SPEC ARG", Examples: []string{
		"decopt match -- o|out -oFILE",
		"decopt match --format=json -- o|out --out=FILE",
	}},
	CommandVersion: {Name: CommandVersion, Description: "Show the decopt version"},
	CommandEnv: {Name: CommandEnv, Description: "Print the effective demo settings as DECOPT_* variables", Examples: []string{
		"decopt env",
		"decopt env --write=.env",
	}},
}

var commandOptions = map[string][]OptionInfo{
	CommandDemo: {
		{Spec: "h|help", Help: "Print this text"},
		{Spec: "O", Arg: "#", Help: "Integer value"},
		{Spec: "double", Arg: "#", Help: "Double value"},
		{Spec: "o|out", Arg: "#", Help: "String value"},
		{Spec: "verbose", Help: "print many log."},
		{Spec: "quiet", Help: "do not print log"},
		{Spec: "threads", Arg: "#", Help: "min, max, or integer number."},
	},
	CommandMatch: {
		{Spec: "format", Arg: "FMT", Help: "Output format: plain, json or yaml"},
	},
	CommandVersion: {
		{Spec: "json", Help: "Print as JSON"},
	},
	CommandEnv: {
		{Spec: "w|write", Arg: "FILE", Help: "Write the variables to FILE instead of stdout"},
	},
}

// CommandOptions returns the documented options of a command.
func CommandOptions(name string) []OptionInfo {
	return commandOptions[name]
}

func CommandRegistry() yargs.Registry {
	subcommands := make(map[string]yargs.CommandSpec, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = yargs.CommandSpec{
			Info: toSubCommandInfo(name, info),
		}
	}
	return yargs.Registry{
		Command: yargs.CommandInfo{
			Name:        ToolName,
			Description: "Declarative getopt-style option parsing",
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// FormatOption renders the option column of a usage line: every alias,
// short ones as "-x" and long ones as "--name", with the argument attached
// the way the parser expects it ("-x<#>", "--name=<#>").
func FormatOption(opt OptionInfo) (string, error) {
	spec, err := getopt.ParseSpec(opt.Spec)
	if err != nil {
		return "", err
	}
	aliases := spec.Aliases()
	forms := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		var form string
		if utf8.RuneCountInString(alias) == 1 {
			form = "-" + alias
			if opt.Arg != "" {
				form += "<" + opt.Arg + ">"
			}
		} else {
			form = "--" + alias
			if opt.Arg != "" {
				form += "=<" + opt.Arg + ">"
			}
		}
		forms = append(forms, form)
	}
	return strings.Join(forms, ", "), nil
}

// WriteUsage writes a usage block for a command to w.
func WriteUsage(w io.Writer, name string) error {
	info, ok := commandInfos[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	line := []string{"Usage:", ToolName, info.Name}
	if len(commandOptions[name]) > 0 {
		line = append(line, "[options]")
	}
	if info.Usage != "" {
		line = append(line, info.Usage)
	}
	fmt.Fprintln(w, strings.Join(line, " "))
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, opt := range commandOptions[name] {
		form, err := FormatOption(opt)
		if err != nil {
			return fmt.Errorf("option %q: %w", opt.Spec, err)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", form, opt.Help)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(info.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "example:")
		for _, ex := range info.Examples {
			fmt.Fprintf(w, "  %s\n", ex)
		}
	}
	return nil
}

func RequireArgs(subcmd string, args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("'%s' requires %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
