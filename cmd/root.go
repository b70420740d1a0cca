// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point and base configuration for the
// `scriptbox` CLI. It defines the root command (`rootCmd`) that acts as the
// main command for the application and manages subcommands like `run`,
// `hhmmss`, and `env`. The root command also handles application-wide
// configuration and flags.
//
// Features:
// - Serves as the primary entry point for the `scriptbox` CLI application.
// - Defines global flags (config file, output format) for the application.
// - Organizes and executes subcommands.
//
// Usage:
// - Run the `scriptbox` command without any arguments to see the help message:
//   `./scriptbox`
// - Execute a command with diagnostics:
//   `./scriptbox run --report-command --status -- make all`

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// This command provides a help message and serves as the entry point for
// executing subcommands within the `scriptbox` CLI.
var rootCmd = &cobra.Command{
	Use:   "scriptbox",
	Short: "Runtime utilities for command-line scripts",
	Long: `The scriptbox CLI wraps command execution with contextual
diagnostics: every message carries the source location it was emitted from,
and external commands can be run with status capture, resource-usage timing,
and a configurable exit-on-error policy.

Examples:
  - Run a command, reporting the line and its exit status:
    ./scriptbox run --report-command --status -- make all

  - Run a pipeline with timing, without terminating on failure:
    ./scriptbox run --timing --no-exit -- cat access.log "|" wc -l

  - Convert a second count:
    ./scriptbox hhmmss 3661`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This function is called by main.main() to start the application.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command by defining global flags and configurations.
// Subcommands such as `run` are added to the root command during this phase.
func init() {
	initSharedFlags()
}
