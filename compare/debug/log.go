//go:build !debug

// Package debug provides logging functionality for development and troubleshooting.
// This file contains production build versions (no-op functions) that get optimized away.
package debug

// Enabled reports whether debug logging is compiled in.
func Enabled() bool { return false }

// Log logs a debug message with component, phase, and formatted message.
// In production builds, this function is a no-op and gets inlined/optimized away.
func Log(component, phase, message string, args ...interface{}) {
	// No-op in production build
}

// LogWithData logs a debug message with structured data.
// In production builds, this function is a no-op and gets inlined/optimized away.
func LogWithData(component, phase, message string, data map[string]interface{}) {
	// No-op in production build
}

// LogTiming logs timing information for performance analysis.
// In production builds, this function is a no-op and gets inlined/optimized away.
func LogTiming(component, phase, message string, durationMs int64) {
	// No-op in production build
}

// LogError logs error conditions encountered during a comparison.
// In production builds, this function is a no-op and gets inlined/optimized away.
func LogError(component, phase, message string, err error) {
	// No-op in production build
}
