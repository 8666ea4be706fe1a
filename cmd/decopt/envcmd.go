// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/yeetrun/decopt/pkg/cli"
	"github.com/yeetrun/decopt/pkg/env"
	"github.com/yeetrun/decopt/pkg/getopt"
)

func (a *app) handleEnv(_ context.Context, args []string) error {
	var out string
	rest, err := getopt.Parse(commandArgv(cli.CommandEnv, args), getopt.Opt("w|write", getopt.String(&out)))
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("'%s' takes no arguments, got %d", cli.CommandEnv, len(rest)-1)
	}
	v, err := a.resolveDemoValues()
	if err != nil {
		return err
	}
	settings := v.export()
	if out == "" {
		return env.Marshal(a.stdout, &settings)
	}
	log.Printf("writing %s", out)
	return env.Write(out, &settings)
}
