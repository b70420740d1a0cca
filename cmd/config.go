// File: cmd/config.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/edespino/scriptbox/message"
	"github.com/edespino/scriptbox/run"
)

// fileConfig mirrors the optional TOML config file. Only keys present in
// the file are applied, so the zero values here never clobber defaults.
type fileConfig struct {
	Log  logSection  `toml:"log"`
	Exec execSection `toml:"exec"`
}

type logSection struct {
	Template string `toml:"template"`
	Enabled  bool   `toml:"enabled"`
	Debug    bool   `toml:"debug"`
	Info     bool   `toml:"info"`
	Warning  bool   `toml:"warning"`
	Error    bool   `toml:"error"`
	ExitCode int    `toml:"exit_code"`
}

type execSection struct {
	ReportCommand bool   `toml:"report_command"`
	ReportPwd     bool   `toml:"report_pwd"`
	ReportTiming  bool   `toml:"report_timing"`
	ReportStatus  bool   `toml:"report_status"`
	ExitOnError   bool   `toml:"exit_on_error"`
	ErrorExitCode int    `toml:"error_exit_code"`
	Shell         string `toml:"shell"`
}

// applyConfigFile seeds logger and runner defaults from a TOML file.
// Command-line flags are applied after this and win.
func applyConfigFile(path string, log *message.Logger, runner *run.Runner) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("log", "template") {
		if tpl := raw.Log.Template; strings.TrimSpace(tpl) != "" {
			log.Template = tpl
		}
	}
	if meta.IsDefined("log", "enabled") {
		log.Enabled = raw.Log.Enabled
	}
	if meta.IsDefined("log", "debug") {
		log.DebugEnabled = raw.Log.Debug
	}
	if meta.IsDefined("log", "info") {
		log.InfoEnabled = raw.Log.Info
	}
	if meta.IsDefined("log", "warning") {
		log.WarningEnabled = raw.Log.Warning
	}
	if meta.IsDefined("log", "error") {
		log.ErrorEnabled = raw.Log.Error
	}
	if meta.IsDefined("log", "exit_code") {
		log.ExitCode = raw.Log.ExitCode
	}

	if meta.IsDefined("exec", "report_command") {
		runner.Policy.ReportCommand = raw.Exec.ReportCommand
	}
	if meta.IsDefined("exec", "report_pwd") {
		runner.Policy.ReportPwd = raw.Exec.ReportPwd
	}
	if meta.IsDefined("exec", "report_timing") {
		runner.Policy.ReportTiming = raw.Exec.ReportTiming
	}
	if meta.IsDefined("exec", "report_status") {
		runner.Policy.ReportStatus = raw.Exec.ReportStatus
	}
	if meta.IsDefined("exec", "exit_on_error") {
		runner.Policy.ExitOnError = raw.Exec.ExitOnError
	}
	if meta.IsDefined("exec", "error_exit_code") {
		runner.Policy.ErrorExitCode = raw.Exec.ErrorExitCode
	}
	if meta.IsDefined("exec", "shell") {
		if sh := strings.TrimSpace(raw.Exec.Shell); sh != "" {
			runner.Shell = sh
		}
	}

	return nil
}
