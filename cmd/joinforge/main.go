// Package main is the entry point for the joinforge CLI.
package main

import (
	"os"

	"github.com/joinforge-labs/joinforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
