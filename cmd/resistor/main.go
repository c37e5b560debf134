// Package main is the entry point for the resistor CLI.
package main

import (
	"os"

	"github.com/oovm/resistor/cmd/resistor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
