// File: run/builtins.go
package run

// shellBuiltins is bash's builtin set (`compgen -b`, bash 5.x), plus the
// special characters. A builtin is interpreted by the shell directly and
// has no child process of its own, so resource-usage timing would measure
// the interpreter instead of the command.
var shellBuiltins = map[string]bool{
	".":         true,
	":":         true,
	"[":         true,
	"alias":     true,
	"bg":        true,
	"bind":      true,
	"break":     true,
	"builtin":   true,
	"caller":    true,
	"cd":        true,
	"command":   true,
	"compgen":   true,
	"complete":  true,
	"compopt":   true,
	"continue":  true,
	"declare":   true,
	"dirs":      true,
	"disown":    true,
	"echo":      true,
	"enable":    true,
	"eval":      true,
	"exec":      true,
	"exit":      true,
	"export":    true,
	"false":     true,
	"fc":        true,
	"fg":        true,
	"getopts":   true,
	"hash":      true,
	"help":      true,
	"history":   true,
	"jobs":      true,
	"kill":      true,
	"let":       true,
	"local":     true,
	"logout":    true,
	"mapfile":   true,
	"popd":      true,
	"printf":    true,
	"pushd":     true,
	"pwd":       true,
	"read":      true,
	"readarray": true,
	"readonly":  true,
	"return":    true,
	"set":       true,
	"shift":     true,
	"shopt":     true,
	"source":    true,
	"suspend":   true,
	"test":      true,
	"times":     true,
	"trap":      true,
	"true":      true,
	"type":      true,
	"typeset":   true,
	"ulimit":    true,
	"umask":     true,
	"unalias":   true,
	"unset":     true,
	"wait":      true,
}

// IsBuiltin reports whether name is a shell builtin.
func IsBuiltin(name string) bool {
	return shellBuiltins[name]
}
