// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"golang.org/x/term"
)

const (
	ColorReset  = "\x1b[0m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorCyan   = "\x1b[36m"
	ColorDim    = "\x1b[90m"
)

type Colorizer struct {
	Enabled bool
}

var isTerminalFn = term.IsTerminal

// NewColorizer returns a Colorizer for f. Color is off when disabled, when f
// is not a terminal, or when NO_COLOR or a dumb TERM is set.
func NewColorizer(f *os.File, enabled bool) Colorizer {
	if !enabled || f == nil {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	if !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}

// Label colors a key in key/value output.
func (c Colorizer) Label(text string) string {
	return c.Wrap(ColorCyan, text)
}
