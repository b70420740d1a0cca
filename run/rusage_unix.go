//go:build unix

// File: run/rusage_unix.go
package run

import (
	"os"
	"syscall"
)

// rusageMetrics extracts peak RSS and block I/O counts from the waited
// child's rusage. Maxrss is in KiB on Linux, which is the platform this
// tool targets.
func rusageMetrics(ps *os.ProcessState) (maxRSSKiB, inBlocks, outBlocks int64, ok bool) {
	ru, isRusage := ps.SysUsage().(*syscall.Rusage)
	if !isRusage || ru == nil {
		return 0, 0, 0, false
	}
	return int64(ru.Maxrss), int64(ru.Inblock), int64(ru.Oublock), true
}
