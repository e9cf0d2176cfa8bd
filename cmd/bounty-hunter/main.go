// Package main is the entry point for the bounty-hunter CLI.
package main

import (
	"os"

	"github.com/similigh/bounty-hunter/cmd/bounty-hunter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
