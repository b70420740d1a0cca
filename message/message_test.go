// File: message/message_test.go
package message_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edespino/scriptbox/message"
)

func newTestLogger(buf *bytes.Buffer) *message.Logger {
	log := message.New()
	log.Out = buf
	log.DebugEnabled = true
	return log
}

func TestFormatPrefix(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	site := message.CallSite{File: "/src/app/job.go", Line: 42, Func: "runJob"}

	tests := []struct {
		name     string
		template string
		severity message.Severity
		want     string
	}{
		{
			name:     "type and line",
			template: "%type %line ",
			severity: message.Error,
			want:     "ERROR 42 ",
		},
		{
			name:     "default template fields",
			template: "%date %time %type %filebase %line ",
			severity: message.Info,
			want:     "2024-03-15 09:30:45 INFO job.go 42 ",
		},
		{
			name:     "datetime not consumed as date",
			template: "%datetime",
			severity: message.Debug,
			want:     "2024-03-15 09:30:45",
		},
		{
			name:     "filebase not consumed as file",
			template: "%filebase",
			severity: message.Warning,
			want:     "job.go",
		},
		{
			name:     "full file path and function",
			template: "%file:%line %func",
			severity: message.Info,
			want:     "/src/app/job.go:42 runJob",
		},
		{
			name:     "unrecognized placeholder left verbatim",
			template: "%bogus %type",
			severity: message.Info,
			want:     "%bogus INFO",
		},
		{
			name:     "trailing percent left verbatim",
			template: "%type 100%",
			severity: message.Info,
			want:     "INFO 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := message.FormatPrefix(tt.severity, site, tt.template, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "DEBUG", message.Debug.String())
	assert.Equal(t, "INFO", message.Info.String())
	assert.Equal(t, "WARNING", message.Warning.String())
	assert.Equal(t, "ERROR", message.Error.String())
}

func TestDisabledSeveritiesProduceNoOutput(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*message.Logger)
		emit      func(*message.Logger)
	}{
		{
			name:      "debug disabled",
			configure: func(l *message.Logger) { l.DebugEnabled = false },
			emit:      func(l *message.Logger) { l.Debugf("hidden") },
		},
		{
			name:      "info disabled",
			configure: func(l *message.Logger) { l.InfoEnabled = false },
			emit:      func(l *message.Logger) { l.Infof("hidden") },
		},
		{
			name:      "warning disabled",
			configure: func(l *message.Logger) { l.WarningEnabled = false },
			emit:      func(l *message.Logger) { l.Warningf("hidden") },
		},
		{
			name:      "error disabled",
			configure: func(l *message.Logger) { l.ErrorEnabled = false },
			emit:      func(l *message.Logger) { l.ErrorfNoExit("hidden") },
		},
		{
			name:      "master switch off",
			configure: func(l *message.Logger) { l.Enabled = false },
			emit: func(l *message.Logger) {
				l.Debugf("hidden")
				l.Infof("hidden")
				l.Warningf("hidden")
				l.ErrorfNoExit("hidden")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newTestLogger(&buf)
			tt.configure(log)
			tt.emit(log)
			assert.Empty(t, buf.String())
		})
	}
}

func TestTogglingBetweenCalls(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.Infof("first")
	log.InfoEnabled = false
	log.Infof("second")
	log.InfoEnabled = true
	log.Infof("third")

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.NotContains(t, out, "second")
	assert.Contains(t, out, "third")
}

func TestMultiLineContinuationIndent(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	log.Template = "%type "

	log.Infof("first line\nsecond line\nthird line")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "INFO first line", lines[0])
	assert.Equal(t, "     second line", lines[1])
	assert.Equal(t, "     third line", lines[2])
}

func TestMultiLineIndentCountsRunesNotBytes(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	// Multibyte literal text in the template: "→ INFO " is 7 runes but
	// 9 bytes; continuation lines must align on the rune width.
	log.Template = "→ %type "

	log.Infof("first\nsecond")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "→ INFO first", lines[0])
	assert.Equal(t, strings.Repeat(" ", 7)+"second", lines[1])
}

func TestErrorfTerminatesWithConfiguredCode(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	log.ExitCode = 7

	exitCode := -1
	log.ExitFunc = func(code int) { exitCode = code }

	log.Errorf("fatal: %s", "broken")

	assert.Equal(t, 7, exitCode)
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "fatal: broken")
}

func TestErrorfDefaultExitCode(t *testing.T) {
	log := newTestLogger(&bytes.Buffer{})

	exitCode := -1
	log.ExitFunc = func(code int) { exitCode = code }

	log.Errorf("fatal")
	assert.Equal(t, 1, exitCode)
}

func TestErrorfNoExitReturnsControl(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	log.ExitFunc = func(int) { t.Fatal("ErrorfNoExit must not terminate") }

	log.ErrorfNoExit("recoverable")
	assert.Contains(t, buf.String(), "recoverable")
}

func TestCallerResolutionReportsThisFile(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	log.Template = "%filebase %func "

	log.Infof("where am I")

	out := buf.String()
	assert.Contains(t, out, "message_test.go")
	assert.NotContains(t, out, "message.go ")
}

func TestAssert(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	exited := false
	log.ExitFunc = func(int) { exited = true }

	log.Assert(true, "must not fire")
	assert.False(t, exited)
	assert.Empty(t, buf.String())

	log.Assert(false, "invariant broken: %d", 3)
	assert.True(t, exited)
	assert.Contains(t, buf.String(), "invariant broken: 3")
}
