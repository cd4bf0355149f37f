// Package main is the entry point for the streamdeals CLI.
package main

import (
	"os"

	"streamdeals/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
