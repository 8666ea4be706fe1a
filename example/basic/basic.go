// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/yeetrun/decopt/pkg/getopt"
)

func main() {
	var (
		help    bool
		verbose bool
		count   = 1
		name    = "World"
	)
	args, err := getopt.Parse(os.Args,
		getopt.Opt("h|help", getopt.Bool(&help)),
		getopt.Opt("v|verbose", getopt.Bool(&verbose)),
		getopt.Opt("n|count", getopt.Int(&count)),
		getopt.Opt("name", getopt.String(&name)),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if help {
		fmt.Println("usage: basic [-v] [-nCOUNT] [--name=NAME] [args...]")
		return
	}
	for range count {
		fmt.Printf("Hello, %s!\n", name)
	}
	if verbose {
		fmt.Printf("%d positional argument(s): %q\n", len(args)-1, args[1:])
	}
}
