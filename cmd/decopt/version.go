// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yeetrun/decopt/pkg/cli"
	"github.com/yeetrun/decopt/pkg/getopt"
)

func (a *app) handleVersion(_ context.Context, args []string) error {
	var asJSON bool
	if _, err := getopt.Parse(commandArgv(cli.CommandVersion, args), getopt.Opt("json", getopt.Bool(&asJSON))); err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(a.stdout).Encode(map[string]string{"version": version})
	}
	_, err := fmt.Fprintf(a.stdout, "%s %s\n", cli.ToolName, version)
	return err
}
