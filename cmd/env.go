// File: cmd/env.go
// Package: cmd
//
// Description:
// This file implements the `env` command to gather and display the runtime
// environment a script executes in: operating system, architecture,
// hostname, kernel version, shell, working directory, and CPU count.
//
// Usage:
// - Run the `env` command to display the environment:
//   `scriptbox env --format=json`
//
// Note:
// - The kernel version is obtained by running `uname -r` through the
//   command executor with output captured, so missing utilities degrade to
//   an empty field rather than an error.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/edespino/scriptbox/message"
	"github.com/edespino/scriptbox/run"
)

// EnvInfo contains the runtime environment collected by the env command.
type EnvInfo struct {
	// OS is the operating system name.
	OS string `json:"os" yaml:"os"`

	// Architecture is the system's CPU architecture.
	Architecture string `json:"architecture" yaml:"architecture"`

	// Hostname is the system's network name.
	Hostname string `json:"hostname" yaml:"hostname"`

	// Kernel is the kernel release reported by uname -r.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	// Shell is the caller's login shell from $SHELL.
	Shell string `json:"shell,omitempty" yaml:"shell,omitempty"`

	// WorkingDir is the current working directory.
	WorkingDir string `json:"working_dir" yaml:"working_dir"`

	// CPUs is the number of CPU cores available.
	CPUs int `json:"cpus" yaml:"cpus"`
}

// envCmd gathers and displays the runtime environment in YAML (default) or
// JSON format via the --format flag.
var envCmd = &cobra.Command{
	Use:          "env",
	Short:        "Display the runtime environment",
	Long:         `Gather and display the environment scriptbox commands execute in.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEnv()
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

// collectEnvInfo gathers all EnvInfo fields. Lookup failures leave the
// affected field empty; the command itself does not fail.
func collectEnvInfo() EnvInfo {
	info := EnvInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		Shell:        os.Getenv("SHELL"),
		CPUs:         runtime.NumCPU(),
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if wd, err := os.Getwd(); err == nil {
		info.WorkingDir = wd
	}
	info.Kernel = kernelRelease()
	return info
}

// kernelRelease runs `uname -r` through the executor with output captured.
func kernelRelease() string {
	var out bytes.Buffer
	log := message.New()
	log.Enabled = false

	runner := run.New(log)
	runner.Policy = run.Policy{}
	runner.Stdout = &out
	runner.Stderr = &bytes.Buffer{}

	if status := runner.ExecuteNoExit("uname", "-r"); status != 0 {
		return ""
	}
	return strings.TrimSpace(out.String())
}

// runEnv collects the environment and prints it in the requested format.
func runEnv() error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	info := collectEnvInfo()

	var (
		output []byte
		err    error
	)
	if formatFlag == "json" {
		output, err = json.MarshalIndent(info, "", "  ")
	} else {
		output, err = yaml.Marshal(info)
	}
	if err != nil {
		return fmt.Errorf("marshal environment info: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
