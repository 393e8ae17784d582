//go:build debug

// Package debug provides logging functionality for development and troubleshooting.
// This file contains debug build versions with actual logging implementation.
package debug

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Enabled reports whether debug logging is compiled in.
func Enabled() bool { return true }

// Log logs a debug message with component, phase, and formatted message.
// Format: [timestamp] [COMPONENT:phase] message
func Log(component, phase, message string, args ...interface{}) {
	formatted := message
	if len(args) > 0 {
		formatted = fmt.Sprintf(message, args...)
	}
	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] %s\n", timestamp(), component, phase, formatted)
}

// LogWithData logs a debug message with structured key=value data, e.g. cache
// hit-rate statistics or match-strategy counts.
func LogWithData(component, phase, message string, data map[string]interface{}) {
	var sb strings.Builder
	if len(data) > 0 {
		sb.WriteString(": ")
		first := true
		for k, v := range data {
			if !first {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, v)
			first = false
		}
	}
	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] %s%s\n", timestamp(), component, phase, message, sb.String())
}

// LogTiming logs timing information for performance analysis.
func LogTiming(component, phase, message string, durationMs int64) {
	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] %s: duration=%dms\n", timestamp(), component, phase, message, durationMs)
}

// LogError logs error conditions encountered during a comparison. Errors
// logged here are always locally recovered; logging is purely observational.
func LogError(component, phase, message string, err error) {
	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] ERROR: %s: error=%v\n", timestamp(), component, phase, message, err)
}

func timestamp() string {
	return time.Now().Format("15:04:05.000")
}
