// File: message/caller.go
package message

import (
	"runtime"
	"strings"
)

// Frames belonging to these packages are the library's own plumbing and are
// skipped when resolving the call-site, so a message emitted by the executor
// on a caller's behalf still reports the caller's source line.
var internalPackages = map[string]bool{
	"github.com/edespino/scriptbox/message": true,
	"github.com/edespino/scriptbox/run":     true,
}

// minimumSkip covers runtime.Callers, resolveCallSite and emit; the frame
// walk below handles any deeper nesting.
const minimumSkip = 3

// resolveCallSite walks the active call stack and returns the first frame
// that does not belong to this library. Falls back to an empty CallSite if
// the stack is exhausted (only plausible when called from internal tests).
func resolveCallSite() CallSite {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(minimumSkip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !internalPackages[packageName(frame.Function)] {
			return CallSite{
				File: frame.File,
				Line: frame.Line,
				Func: funcBaseName(frame.Function),
			}
		}
		if !more {
			return CallSite{}
		}
	}
}

// packageName extracts the import path from a fully qualified function name
// such as "github.com/x/y/pkg.(*T).Method".
func packageName(fn string) string {
	lastSlash := strings.LastIndexByte(fn, '/')
	firstDot := strings.IndexByte(fn[lastSlash+1:], '.')
	if firstDot < 0 {
		return fn
	}
	return fn[:lastSlash+1+firstDot]
}

// funcBaseName strips the import path, keeping the receiver and function
// name ("(*T).Method", "Func").
func funcBaseName(fn string) string {
	lastSlash := strings.LastIndexByte(fn, '/')
	firstDot := strings.IndexByte(fn[lastSlash+1:], '.')
	if firstDot < 0 {
		return fn
	}
	return fn[lastSlash+1+firstDot+1:]
}
