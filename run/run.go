// File: run/run.go
// Package: run
//
// Description:
// Command execution with status capture and contextual diagnostics. A Runner
// reconstructs a single shell line from argv, optionally reports the command
// line, working directory, resource usage, and exit status through the
// message primitives, and applies an exit-on-error or warn-on-error policy
// when the command fails.
//
// The reconstructed line is executed through a shell, so pipes and
// redirections passed as plain argv tokens stay live. Input must be trusted;
// nothing is escaped beyond quoting whitespace.
package run

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/edespino/scriptbox/message"
)

// spawnFailureStatus is reported when the interpreter cannot be started or
// the command cannot be resolved, matching the shell's own convention.
const spawnFailureStatus = 127

// Policy governs reporting verbosity and error handling for one execution.
// It is read fresh on every call, so callers may adjust it between runs.
type Policy struct {
	ReportCommand bool
	ReportPwd     bool
	ReportTiming  bool
	ReportStatus  bool
	ExitOnError   bool
	ErrorExitCode int
}

// DefaultPolicy returns the policy used when a Runner has none set: quiet
// reporting, exit on error with status 1.
func DefaultPolicy() Policy {
	return Policy{ExitOnError: true, ErrorExitCode: 1}
}

// Result captures the outcome of a single execution. Resource metrics are
// populated only when timing was requested and the command was not a shell
// builtin.
type Result struct {
	Status     int           `json:"status" yaml:"status"`
	Timed      bool          `json:"timed" yaml:"timed"`
	Elapsed    time.Duration `json:"elapsed_ns,omitempty" yaml:"elapsed_ns,omitempty"`
	UserTime   time.Duration `json:"user_ns,omitempty" yaml:"user_ns,omitempty"`
	SystemTime time.Duration `json:"sys_ns,omitempty" yaml:"sys_ns,omitempty"`
	MaxRSSKiB  int64         `json:"max_rss_kib,omitempty" yaml:"max_rss_kib,omitempty"`
	InBlocks   int64         `json:"in_blocks,omitempty" yaml:"in_blocks,omitempty"`
	OutBlocks  int64         `json:"out_blocks,omitempty" yaml:"out_blocks,omitempty"`
}

// Runner executes commands through a shell with policy-driven reporting.
// The zero value is not usable; populate Log or use New.
type Runner struct {
	// Log receives all reporting. Required.
	Log *message.Logger

	// Policy is read on every execution.
	Policy Policy

	// Shell is the interpreter the reconstructed line is passed to with
	// -c. Defaults to "bash" when empty.
	Shell string

	// Stdout and Stderr are inherited by the child. Default to the
	// process's own streams when nil.
	Stdout io.Writer
	Stderr io.Writer

	// ExitFunc performs process termination for the exit-on-error policy.
	// Defaults to Log.Exit when nil.
	ExitFunc func(int)
}

// New returns a Runner writing through log with the default policy.
func New(log *message.Logger) *Runner {
	return &Runner{Log: log, Policy: DefaultPolicy()}
}

// ShellLine reconstructs a single shell command line from argv, quoting any
// argument that contains whitespace. Shell metacharacters are deliberately
// left alone so pipelines and redirections supplied as argv tokens are
// interpreted by the shell at execution time.
func ShellLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		if strings.ContainsAny(arg, " \t\n") {
			parts = append(parts, `"`+arg+`"`)
		} else {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

// Execute runs argv through the shell, reporting per policy, and applies the
// error policy on a non-zero status: with ExitOnError the process terminates
// with ErrorExitCode after an ERROR message; otherwise a WARNING is emitted
// and the status is returned.
func (r *Runner) Execute(argv ...string) int {
	res := r.Capture(argv...)
	if res.Status == 0 {
		return 0
	}
	line := ShellLine(argv)
	if r.Policy.ExitOnError {
		r.Log.ErrorfNoExit("Command failed with exit status %d: %s", res.Status, line)
		r.exit(r.errorExitCode())
		return res.Status // reached only with an injected ExitFunc
	}
	r.Log.Warningf("Command failed with exit status %d: %s", res.Status, line)
	return res.Status
}

// ExecuteNoExit runs argv exactly like Execute but never terminates the
// process, regardless of the ExitOnError flag; a failure is always reported
// as a WARNING and the status returned. The flag being ignored here is a
// deliberate, long-standing asymmetry; callers rely on NoExit meaning what
// it says.
func (r *Runner) ExecuteNoExit(argv ...string) int {
	res := r.Capture(argv...)
	if res.Status != 0 {
		r.Log.Warningf("Command failed with exit status %d: %s", res.Status, ShellLine(argv))
	}
	return res.Status
}

// Capture is the execution core: it performs the policy's command, working
// directory, timing, and status reporting, runs the command, and returns the
// full Result. It never terminates the process and applies no error policy,
// which makes it the entry point for callers that want the metrics.
func (r *Runner) Capture(argv ...string) Result {
	if len(argv) == 0 {
		return Result{Status: spawnFailureStatus}
	}
	line := ShellLine(argv)

	if r.Policy.ReportCommand {
		r.Log.Infof("Executing: %s", line)
	}
	if r.Policy.ReportPwd {
		if wd, err := os.Getwd(); err == nil {
			r.Log.Infof("Working directory: %s", wd)
		}
	}

	// Builtins run inside the shell itself; their resource usage cannot be
	// told apart from the interpreter's, so timing is skipped silently.
	timed := r.Policy.ReportTiming && !IsBuiltin(argv[0])

	cmd := exec.Command(r.shell(), "-c", line)
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	res := Result{Status: exitStatus(err)}
	if timed && cmd.ProcessState != nil {
		res.Timed = true
		res.Elapsed = elapsed
		res.UserTime = cmd.ProcessState.UserTime()
		res.SystemTime = cmd.ProcessState.SystemTime()
		if rss, in, out, ok := rusageMetrics(cmd.ProcessState); ok {
			res.MaxRSSKiB = rss
			res.InBlocks = in
			res.OutBlocks = out
		}
		r.reportTiming(res)
	}

	if r.Policy.ReportStatus {
		r.Log.Infof("Exit status: %d", res.Status)
	}
	return res
}

func (r *Runner) reportTiming(res Result) {
	r.Log.Infof("Elapsed: %s (user %s, sys %s)",
		res.Elapsed.Round(time.Millisecond),
		res.UserTime.Round(time.Millisecond),
		res.SystemTime.Round(time.Millisecond))
	r.Log.Infof("Peak memory: %d KiB, block I/O: %d in / %d out",
		res.MaxRSSKiB, res.InBlocks, res.OutBlocks)
}

// exitStatus folds every failure mode into a numeric status: nil is 0, a
// normal non-zero exit keeps its code, and spawn or interpreter errors map
// to 127.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return spawnFailureStatus
}

func (r *Runner) errorExitCode() int {
	if r.Policy.ErrorExitCode == 0 {
		return 1
	}
	return r.Policy.ErrorExitCode
}

func (r *Runner) exit(code int) {
	if r.ExitFunc != nil {
		r.ExitFunc(code)
		return
	}
	r.Log.Exit(code)
}

func (r *Runner) shell() string {
	if r.Shell != "" {
		return r.Shell
	}
	return "bash"
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
