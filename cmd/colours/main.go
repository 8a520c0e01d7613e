// colours - colour scheme, conversion and distance utility
//
// colours derives related colours from a single input colour, converts
// between colour models and measures perceptual colour difference.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colours/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
