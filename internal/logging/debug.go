package logging

import (
	"os"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose turns debug output on regardless of TE_DEBUG
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// DebugEnabled returns true if debug mode is enabled via TE_DEBUG environment
// variable or SetVerbose
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TE_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled.
// Output goes to stderr so it never mixes with CSV written to stdout.
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		debugLogger.Printf(format, args...)
	}
}
