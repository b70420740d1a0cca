// File: message/message.go
// Package: message
//
// Description:
// Structured diagnostic messages for command-line scripts. Every message is
// written with a prefix built from a configurable template and the call-site
// (file, line, function) of the code that emitted it. Four severities are
// provided (DEBUG, INFO, WARNING, ERROR), each with its own enable switch plus
// a master switch, so a script can turn classes of output on and off between
// calls.
//
// The ERROR primitive terminates the process through an injectable exit
// function; ErrorfNoExit emits the same message and returns control to the
// caller.
package message

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

// String returns the uppercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CallSite identifies the source location a message originated from.
type CallSite struct {
	File string
	Line int
	Func string
}

// DefaultTemplate is the prefix applied when a Logger does not set its own.
const DefaultTemplate = "%date %time %type %filebase %line "

// Logger emits prefixed diagnostic messages. All fields are plain, exported
// configuration; they are read on every call, never cached, so callers may
// toggle behavior between consecutive invocations.
type Logger struct {
	// Out receives every emitted line. Defaults to os.Stderr when nil.
	Out io.Writer

	// Template is the prefix template. Recognized placeholders: %date,
	// %time, %datetime, %file, %filebase, %func, %line, %type. Anything
	// else is left verbatim. Defaults to DefaultTemplate when empty.
	Template string

	// Enabled is the master switch. When false nothing is emitted,
	// including ERROR messages (Errorf still exits).
	Enabled bool

	// Per-severity switches, checked together with Enabled.
	DebugEnabled   bool
	InfoEnabled    bool
	WarningEnabled bool
	ErrorEnabled   bool

	// ExitCode is the process exit status used by Errorf. Zero means 1.
	ExitCode int

	// ExitFunc performs process termination for Errorf. Defaults to
	// os.Exit when nil. Tests replace it to observe exits.
	ExitFunc func(int)
}

// New returns a Logger with the default configuration: output to stderr,
// DefaultTemplate, master switch on, INFO/WARNING/ERROR on, DEBUG off,
// exit code 1.
func New() *Logger {
	return &Logger{
		Template:       DefaultTemplate,
		Enabled:        true,
		InfoEnabled:    true,
		WarningEnabled: true,
		ErrorEnabled:   true,
		ExitCode:       1,
	}
}

// Debugf emits a DEBUG message when debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled || !l.DebugEnabled {
		return
	}
	l.emit(Debug, fmt.Sprintf(format, args...))
}

// Infof emits an INFO message when info output is enabled.
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled || !l.InfoEnabled {
		return
	}
	l.emit(Info, fmt.Sprintf(format, args...))
}

// Warningf emits a WARNING message when warning output is enabled.
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.Enabled || !l.WarningEnabled {
		return
	}
	l.emit(Warning, fmt.Sprintf(format, args...))
}

// Errorf emits an ERROR message and terminates the process with ExitCode.
// The exit happens even when error output is disabled; disabling only
// suppresses the message itself.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.ErrorfNoExit(format, args...)
	l.exit(l.exitCode())
}

// ErrorfNoExit emits an ERROR message exactly like Errorf but returns to the
// caller instead of terminating; exit-code propagation is the caller's job.
func (l *Logger) ErrorfNoExit(format string, args ...interface{}) {
	if !l.Enabled || !l.ErrorEnabled {
		return
	}
	l.emit(Error, fmt.Sprintf(format, args...))
}

// Assert checks a caller-supplied condition and routes to the fatal ERROR
// path when it does not hold. A true condition is a no-op.
func (l *Logger) Assert(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	l.Errorf(format, args...)
}

// Exit terminates the process through the configured exit function. The run
// package uses this so its error policy and Errorf share one exit seam.
func (l *Logger) Exit(code int) {
	l.exit(code)
}

func (l *Logger) exitCode() int {
	if l.ExitCode == 0 {
		return 1
	}
	return l.ExitCode
}

func (l *Logger) exit(code int) {
	if l.ExitFunc != nil {
		l.ExitFunc(code)
		return
	}
	os.Exit(code)
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

func (l *Logger) template() string {
	if l.Template == "" {
		return DefaultTemplate
	}
	return l.Template
}

// emit formats the prefix for the resolved call-site and writes the message,
// one output line per logical line. Continuation lines are indented with
// spaces of the same width as the prefix so multi-line messages align; the
// width is counted in runes so multibyte literal text in the template does
// not skew the indent.
func (l *Logger) emit(sev Severity, msg string) {
	site := resolveCallSite()
	prefix := FormatPrefix(sev, site, l.template(), time.Now())
	pad := strings.Repeat(" ", utf8.RuneCountInString(prefix))

	w := l.writer()
	for i, line := range strings.Split(msg, "\n") {
		if i == 0 {
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		} else {
			fmt.Fprintf(w, "%s%s\n", pad, line)
		}
	}
}

// placeholderNames in match order: longer names first so %datetime is not
// consumed as %date, and %filebase not as %file.
var placeholderNames = []string{
	"datetime", "filebase", "date", "file", "func", "line", "time", "type",
}

// FormatPrefix substitutes each recognized placeholder in template with its
// live value. Unrecognized placeholders are left verbatim.
func FormatPrefix(sev Severity, site CallSite, template string, now time.Time) string {
	var b strings.Builder
	for i := 0; i < len(template); {
		if template[i] != '%' {
			b.WriteByte(template[i])
			i++
			continue
		}
		matched := false
		for _, name := range placeholderNames {
			if strings.HasPrefix(template[i+1:], name) {
				b.WriteString(placeholderValue(name, sev, site, now))
				i += 1 + len(name)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte('%')
			i++
		}
	}
	return b.String()
}

func placeholderValue(name string, sev Severity, site CallSite, now time.Time) string {
	switch name {
	case "date":
		return now.Format("2006-01-02")
	case "time":
		return now.Format("15:04:05")
	case "datetime":
		return now.Format("2006-01-02 15:04:05")
	case "file":
		return site.File
	case "filebase":
		return baseName(site.File)
	case "func":
		return site.Func
	case "line":
		return strconv.Itoa(site.Line)
	case "type":
		return sev.String()
	default:
		return "%" + name
	}
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
