// File: scriptutil/scriptutil.go
// Package: scriptutil
//
// Description:
// Small data-structure and formatting helpers for command-line scripts: a
// LIFO stack, membership/min/max over ordered values, seconds-to-HH:MM:SS
// conversion, and idempotent directory creation.
package scriptutil

import (
	"cmp"
	"fmt"
	"os"
	"strconv"
)

// Stack is a LIFO stack. The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. Popping an empty stack is a
// no-op: the zero value and false are returned.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Contains reports whether target is present in values.
func Contains[T comparable](values []T, target T) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// Min returns the smallest of values. A single element returns that
// element; an empty call returns the zero value.
func Min[T cmp.Ordered](values ...T) T {
	var least T
	if len(values) == 0 {
		return least
	}
	least = values[0]
	for _, v := range values[1:] {
		if v < least {
			least = v
		}
	}
	return least
}

// Max returns the largest of values. A single element returns that element;
// an empty call returns the zero value.
func Max[T cmp.Ordered](values ...T) T {
	var most T
	if len(values) == 0 {
		return most
	}
	most = values[0]
	for _, v := range values[1:] {
		if v > most {
			most = v
		}
	}
	return most
}

// FormatHHMMSS renders a second count as HH:MM:SS. Hours are not wrapped,
// so 90000 seconds renders as 25:00:00.
func FormatHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// HHMMSS parses raw as a decimal second count and renders it as HH:MM:SS.
// Non-numeric or negative input is a recoverable condition: the original
// input is returned unchanged together with a non-nil error, so callers can
// check and echo.
func HHMMSS(raw string) (string, error) {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw, fmt.Errorf("hhmmss: not a number: %q", raw)
	}
	if seconds < 0 {
		return raw, fmt.Errorf("hhmmss: negative seconds: %d", seconds)
	}
	return FormatHHMMSS(seconds), nil
}

// EnsureDir creates path and any missing parents. Existing directories are
// left alone.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("ensure dir %s: %w", path, err)
	}
	return nil
}
