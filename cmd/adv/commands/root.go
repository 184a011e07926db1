// Package commands implements the adv command-line tree: a version
// command and an eval command that records one of a small set of
// built-in abs-factorable presets, runs the tape drivers over it, and
// prints or serializes the result.
package commands

import "github.com/spf13/cobra"

// RootCmd is the base command executed when adv is invoked with no
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "adv",
	Short: "adv - an abs-factorable automatic differentiation engine",
	Long: `adv records abs-factorable scalar functions onto a tape and evaluates
them with zero-order, forward, and reverse sweeps, dense Jacobians in
either direction, and the abs-normal decomposition that exposes
switching variables introduced by abs, min, and max.

Use "adv eval --help" to run a built-in preset function.`,
}

// Execute runs the command tree.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(evalCmd)
}
