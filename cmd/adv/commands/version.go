package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by the build, mirroring the teacher's own dev-default
// convention for an ldflags-injected version string.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the adv version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("adv version " + Version)
		return nil
	},
}
