// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command decopt exercises the getopt package: a demo compiler-style
// command, a spec matcher explainer and an env exporter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/decopt/pkg/cli"
	"github.com/yeetrun/decopt/pkg/config"
	"github.com/yeetrun/decopt/pkg/getopt"
	"github.com/yeetrun/decopt/pkg/tui"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "0.1.0"

type globalFlagsParsed struct {
	Config  string `flag:"config" help:"Path to decopt.toml or decopt.yaml"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
	Debug   bool   `flag:"debug" help:"Log diagnostics to stderr"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// app carries what the command handlers share.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	color      tui.Colorizer
	configPath string
	lookupEnv  func(string) (string, bool)
	getwd      func() (string, error)
}

func (a *app) handlers() map[string]yargs.SubcommandHandler {
	return map[string]yargs.SubcommandHandler{
		cli.CommandDemo:    a.handleDemo,
		cli.CommandMatch:   a.handleMatch,
		cli.CommandVersion: a.handleVersion,
		cli.CommandEnv:     a.handleEnv,
	}
}

// loadConfig returns the config named by --config, or the nearest one above
// the working directory, or an empty config.
func (a *app) loadConfig() (*config.Config, error) {
	var (
		loc *config.Location
		err error
	)
	if a.configPath != "" {
		loc, err = config.Load(a.configPath)
	} else {
		var wd string
		wd, err = a.getwd()
		if err != nil {
			return nil, err
		}
		loc, err = config.LoadFromDir(wd)
	}
	if err != nil {
		return nil, err
	}
	if loc == nil {
		log.Printf("no config file found")
		return &config.Config{}, nil
	}
	log.Printf("config: %s", loc.Path)
	if err := loc.Config.CheckVersion(version); err != nil {
		return nil, err
	}
	return loc.Config, nil
}

// commandArgv turns the args yargs hands a subcommand into an argument
// vector for getopt: the command name is removed and "decopt NAME" becomes
// the program name.
func commandArgv(name string, args []string) []string {
	argv := []string{cli.ToolName + " " + name}
	removed := false
	for _, arg := range args {
		if !removed && arg == name {
			removed = true
			continue
		}
		argv = append(argv, arg)
	}
	return argv
}

// run dispatches args to a command handler. yargs looks for -h and --help
// anywhere in the args, including after "--", so commands are resolved here
// and handed their args directly. yargs keeps global help, unknown commands,
// and help placed before "--" for commands without their own help option.
func (a *app) run(ctx context.Context, args []string) error {
	helpConfig := cli.CommandRegistry().HelpConfig()
	handlers := a.handlers()
	if res, ok, err := yargs.ResolveCommand(args, helpConfig); err == nil && ok && len(res.Path) == 1 {
		name := res.Path[0]
		handler, found := handlers[name]
		help := flagBeforeTerminator(res.Args, "-h", "--help")
		if name == cli.CommandDemo {
			help = false
		}
		if found && !help && !flagBeforeTerminator(res.Args, "--help-llm") {
			log.Printf("dispatching %s", name)
			return handler(ctx, append([]string{name}, res.Args...))
		}
	}
	return yargs.RunSubcommandsWithGroups(ctx, args, helpConfig, globalFlagsParsed{}, handlers, nil)
}

// flagBeforeTerminator reports whether any of flags appears in args before
// the first "--".
func flagBeforeTerminator(args []string, flags ...string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if slices.Contains(flags, arg) {
			return true
		}
	}
	return false
}

func (a *app) printError(err error) {
	fmt.Fprintf(a.stderr, "%s %v\n", color.RedString("Error:"), err)
	if isUsageError(err) {
		fmt.Fprintf(a.stderr, "Try '%s <command> --help' for more information\n", cli.ToolName)
	}
}

func isUsageError(err error) bool {
	return errors.Is(err, getopt.ErrUnrecognized) ||
		errors.Is(err, getopt.ErrMissingValue) ||
		errors.Is(err, getopt.ErrConversion)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(cli.ToolName + ": ")

	globalFlags, remaining, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !globalFlags.Debug {
		log.SetOutput(io.Discard)
	}
	if globalFlags.NoColor {
		color.NoColor = true
	}

	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		color:      tui.NewColorizer(os.Stdout, !globalFlags.NoColor),
		configPath: globalFlags.Config,
		lookupEnv:  os.LookupEnv,
		getwd:      os.Getwd,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx, remaining); err != nil {
		a.printError(err)
		stop()
		os.Exit(1)
	}
}
