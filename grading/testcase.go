// Package grading holds the data model shared by every part of autograde: the
// test cases a suite is made of, the result recorded for each of them, and the
// aggregate Results that get reported.
package grading

import (
	"strings"
	"time"
)

// DefaultTimeout is applied to any TestCase that does not set its own.
const DefaultTimeout = 3 * time.Second

// TestCase is one fixed invocation of the target program.
type TestCase struct {
	Name string
	// Command is the executable followed by its arguments.
	Command  []string
	Expected string
	Points   int
	// Timeout is the wall-clock limit for the process. Zero means DefaultTimeout.
	Timeout time.Duration
}

// EffectiveTimeout returns the timeout the runner should enforce for tc.
func (tc TestCase) EffectiveTimeout() time.Duration {
	if tc.Timeout <= 0 {
		return DefaultTimeout
	}
	return tc.Timeout
}

// CommandLine renders Command as a single space-separated string for messages.
func (tc TestCase) CommandLine() string {
	return strings.Join(tc.Command, " ")
}
