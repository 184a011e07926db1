// Command adv is the command-line front end for the abs-factorable
// automatic differentiation engine: it records one of a handful of
// built-in preset functions and runs the tape drivers over it.
package main

import (
	"os"

	"github.com/born-ml/adv/cmd/adv/commands"
)

var version = "dev"

func main() {
	commands.Version = version
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
