// File: cmd/flags.go
package cmd

import (
	"fmt"
)

// Shared command flags
var (
	formatFlag string // Common flag for output format (yaml/json)
	configFlag string // Optional TOML config file seeding defaults
)

// validateFormat checks if the provided format is either "json" or "yaml".
// The empty string is allowed and means no structured report.
func validateFormat(format string) error {
	if format != "" && format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s. Valid options are 'json' or 'yaml'", format)
	}
	return nil
}

// initSharedFlags initializes flags that are shared across multiple commands
func initSharedFlags() {
	// Registered on the root command so they are available to all subcommands
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: yaml or json")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a TOML config file")
}
