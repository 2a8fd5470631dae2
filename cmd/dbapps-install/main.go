// Package main is the entry point for the dbapps-install CLI.
package main

import (
	"os"

	"github.com/claude-commands/dbapps/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
