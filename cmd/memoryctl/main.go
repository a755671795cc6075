// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Command memoryctl is the terminal client for Analogue Memory.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/analoguememory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
