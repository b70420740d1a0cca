// File: cmd/run.go
// Package: cmd
//
// Description:
// This file implements the `run` command: execute an external command line
// with policy-driven diagnostics. Arguments after `--` are re-joined into a
// single shell line (whitespace-containing arguments quoted) and handed to
// the shell, so pipes and redirections passed as plain tokens stay live.
//
// Usage:
// - Report the command line and exit status:
//   `scriptbox run --report-command --status -- make all`
// - Time a pipeline without terminating on failure:
//   `scriptbox run --timing --no-exit -- cat access.log "|" wc -l`
// - Emit the execution result as a structured report:
//   `scriptbox run --timing --format json -- sleep 1`

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/edespino/scriptbox/message"
	"github.com/edespino/scriptbox/run"
)

var (
	reportCommandFlag bool
	reportPwdFlag     bool
	timingFlag        bool
	statusFlag        bool
	noExitFlag        bool
	exitCodeFlag      int
	shellFlag         string
	templateFlag      string
	debugFlag         bool
)

// runCmd executes an external command with status capture and diagnostics.
var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND [ARGS...]",
	Short: "Execute a command with status capture and diagnostics",
	Long: `Execute an external command through the shell, optionally reporting
the reconstructed command line, the working directory, resource-usage timing,
and the exit status. On a non-zero status the process either terminates with
the configured error exit code or warns and propagates the status, depending
on the error policy.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	registerRunFlags(runCmd)
}

// registerRunFlags defines the run command's flags. Split out so tests can
// build a command with a fresh flag set.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&reportCommandFlag, "report-command", false, "Report the reconstructed command line before execution")
	cmd.Flags().BoolVar(&reportPwdFlag, "report-pwd", false, "Report the working directory before execution")
	cmd.Flags().BoolVar(&timingFlag, "timing", false, "Report elapsed, CPU, memory, and block I/O usage")
	cmd.Flags().BoolVar(&statusFlag, "status", false, "Report the numeric exit status after execution")
	cmd.Flags().BoolVar(&noExitFlag, "no-exit", false, "Never terminate on failure; propagate the exit status")
	cmd.Flags().IntVar(&exitCodeFlag, "exit-code", 1, "Process exit code used when terminating on failure")
	cmd.Flags().StringVar(&shellFlag, "shell", "", "Interpreter for the reconstructed line (default bash)")
	cmd.Flags().StringVar(&templateFlag, "template", "", "Message prefix template")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable DEBUG messages")
}

// runCommand wires flags and the optional config file into a Runner and
// executes argv.
func runCommand(cmd *cobra.Command, argv []string) error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	runner, err := buildRunner(cmd)
	if err != nil {
		return err
	}

	if formatFlag != "" {
		return runWithReport(runner, argv)
	}

	var status int
	if noExitFlag {
		status = runner.ExecuteNoExit(argv...)
	} else {
		status = runner.Execute(argv...)
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

// buildRunner assembles the logger and Runner from the optional config file
// and the command's flags. Flags set explicitly on the command line override
// the file.
func buildRunner(cmd *cobra.Command) (*run.Runner, error) {
	log := message.New()
	runner := run.New(log)

	if configFlag != "" {
		if err := applyConfigFile(configFlag, log, runner); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("report-command") {
		runner.Policy.ReportCommand = reportCommandFlag
	}
	if flags.Changed("report-pwd") {
		runner.Policy.ReportPwd = reportPwdFlag
	}
	if flags.Changed("timing") {
		runner.Policy.ReportTiming = timingFlag
	}
	if flags.Changed("status") {
		runner.Policy.ReportStatus = statusFlag
	}
	if flags.Changed("exit-code") {
		runner.Policy.ErrorExitCode = exitCodeFlag
	}
	if flags.Changed("shell") {
		runner.Shell = shellFlag
	}
	if flags.Changed("template") {
		log.Template = templateFlag
	}
	if flags.Changed("debug") {
		log.DebugEnabled = debugFlag
	}

	return runner, nil
}

// runWithReport executes without the error policy and prints the Result in
// the requested format, mirroring the sysinfo-style structured output. The
// process exits with the command's own status.
func runWithReport(runner *run.Runner, argv []string) error {
	res := runner.Capture(argv...)

	var (
		output []byte
		err    error
	)
	if formatFlag == "json" {
		output, err = json.MarshalIndent(res, "", "  ")
	} else {
		output, err = yaml.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(output))

	if res.Status != 0 {
		os.Exit(res.Status)
	}
	return nil
}
