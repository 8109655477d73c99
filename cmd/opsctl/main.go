// Command opsctl bundles operational chores: account repair, file
// integrity checks, smoke tests and schema migration.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}
