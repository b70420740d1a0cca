// File: cmd/hhmmss.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edespino/scriptbox/scriptutil"
)

// hhmmssCmd converts a second count to HH:MM:SS. Non-numeric input is
// echoed unchanged and the process exits non-zero, so shell callers can
// pipe through it without losing their value.
var hhmmssCmd = &cobra.Command{
	Use:          "hhmmss SECONDS",
	Short:        "Convert a second count to HH:MM:SS",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := scriptutil.HHMMSS(args[0])
		fmt.Println(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(hhmmssCmd)
}
