// contrastfix - WCAG contrast repair for colour pairs
//
// contrastfix checks text/background colour pairs against WCAG contrast
// targets and suggests the gentlest adjustments that make them pass.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrastfix/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
