// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/yeetrun/decopt/pkg/cli"
	"github.com/yeetrun/decopt/pkg/config"
	"github.com/yeetrun/decopt/pkg/env"
	"github.com/yeetrun/decopt/pkg/getopt"
)

const (
	minThreads = 1
	maxThreads = 99
)

// demoValues are the settings the demo command reports.
type demoValues struct {
	Integer  int
	Double   float64
	Out      string
	LogLevel int
	Threads  int
}

func defaultDemoValues() demoValues {
	return demoValues{
		Double:   1.0,
		LogLevel: 1,
		Threads:  10,
	}
}

// overlay copies every setting present in d onto v.
func (v *demoValues) overlay(d config.Demo) {
	if d.Integer != nil {
		v.Integer = *d.Integer
	}
	if d.Double != nil {
		v.Double = *d.Double
	}
	if d.Out != nil {
		v.Out = *d.Out
	}
	if d.LogLevel != nil {
		v.LogLevel = *d.LogLevel
	}
	if d.Threads != nil {
		v.Threads = *d.Threads
	}
}

func (v demoValues) export() config.Demo {
	return config.Demo{
		Integer:  &v.Integer,
		Double:   &v.Double,
		Out:      &v.Out,
		LogLevel: &v.LogLevel,
		Threads:  &v.Threads,
	}
}

func (v *demoValues) setLogLevel(name string) error {
	switch name {
	case "verbose":
		v.LogLevel = 2
	case "quiet":
		v.LogLevel = 0
	}
	return nil
}

func (v *demoValues) setThreads(name, value string) error {
	switch value {
	case "max":
		v.Threads = maxThreads
	case "min":
		v.Threads = minThreads
	default:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > maxThreads {
			return fmt.Errorf("invalid parameter: %s = %s", name, value)
		}
		v.Threads = n
	}
	return nil
}

func (v *demoValues) options(help *bool) []getopt.Option {
	return []getopt.Option{
		getopt.Opt("h|help", getopt.Bool(help)),
		getopt.Opt("O", getopt.Int(&v.Integer)),
		getopt.Opt("double", getopt.Float(&v.Double)),
		getopt.Opt("o|out", getopt.String(&v.Out)),
		getopt.Opt("verbose", getopt.NameFunc(v.setLogLevel)),
		getopt.Opt("quiet", getopt.NameFunc(v.setLogLevel)),
		getopt.Opt("threads", getopt.ValueFunc(v.setThreads)),
	}
}

// resolveDemoValues applies defaults, the config file and the environment,
// in that order.
func (a *app) resolveDemoValues() (demoValues, error) {
	v := defaultDemoValues()
	cfg, err := a.loadConfig()
	if err != nil {
		return v, err
	}
	v.overlay(cfg.Demo)
	if err := v.validate(); err != nil {
		return v, fmt.Errorf("config: %w", err)
	}

	var fromEnv config.Demo
	if err := env.Apply(&fromEnv, a.lookupEnv); err != nil {
		return v, err
	}
	v.overlay(fromEnv)
	if err := v.validate(); err != nil {
		return v, fmt.Errorf("environment: %w", err)
	}
	return v, nil
}

// validate applies the checks --threads gets on the command line to values
// that came from elsewhere.
func (v demoValues) validate() error {
	if v.Threads < 0 || v.Threads > maxThreads {
		return fmt.Errorf("invalid parameter: threads = %d", v.Threads)
	}
	return nil
}

func (a *app) handleDemo(_ context.Context, args []string) error {
	argv := commandArgv(cli.CommandDemo, args)
	if len(argv) < 2 {
		return cli.WriteUsage(a.stdout, cli.CommandDemo)
	}

	v, err := a.resolveDemoValues()
	if err != nil {
		return err
	}
	var help bool
	rest, err := getopt.Parse(argv, v.options(&help)...)
	if err != nil {
		return err
	}
	log.Printf("parsed %d option slot(s), %d positional(s)", len(argv)-len(rest), len(rest)-1)
	if help {
		return cli.WriteUsage(a.stdout, cli.CommandDemo)
	}

	c := a.color
	fmt.Fprintf(a.stdout, "%s %d\n", c.Label(" integer value:"), v.Integer)
	fmt.Fprintf(a.stdout, "%s %f\n", c.Label("  double value:"), v.Double)
	fmt.Fprintf(a.stdout, "%s %s\n", c.Label("  string value:"), v.Out)
	fmt.Fprintf(a.stdout, "%s %d\n", c.Label("     log level:"), v.LogLevel)
	fmt.Fprintf(a.stdout, "%s %d\n", c.Label("       threads:"), v.Threads)
	fmt.Fprintln(a.stdout)

	fmt.Fprintf(a.stdout, "remains: %d\n", len(rest)-1)
	for _, arg := range rest[1:] {
		fmt.Fprintf(a.stdout, " - %s\n", arg)
	}
	return nil
}
