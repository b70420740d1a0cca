//go:build !unix

// File: run/rusage_other.go
package run

import "os"

// rusageMetrics has no portable equivalent off unix; wall and CPU time are
// still reported from ProcessState.
func rusageMetrics(_ *os.ProcessState) (maxRSSKiB, inBlocks, outBlocks int64, ok bool) {
	return 0, 0, 0, false
}
