// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"log/slog"
	"os"
	"strings"
)

// LevelCritical is the most severe level, used for the final summary of a failed run.
const LevelCritical = slog.LevelError + 4

const criticalName = "CRITICAL"

// verbosityLevels maps the number of -v flags to a minimum level.
var verbosityLevels = []slog.Level{
	slog.LevelError,
	slog.LevelWarn,
	slog.LevelInfo,
	slog.LevelDebug,
}

// LevelFromVerbosity returns the minimum level for the given verbosity count.
// Counts beyond the table clamp to debug, negative counts are treated as zero.
func LevelFromVerbosity(count int) slog.Level {
	if count < 0 {
		count = 0
	}

	if count >= len(verbosityLevels) {
		count = len(verbosityLevels) - 1
	}

	return verbosityLevels[count]
}

// ParseLevel converts a level name to a level. It is case insensitive.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	case criticalName:
		return LevelCritical, true
	default:
		return 0, false
	}
}

// LevelFromEnv reads the level from the named environment variable.
// It returns false when the variable is unset or does not name a level.
func LevelFromEnv(name string) (slog.Level, bool) {
	return ParseLevel(os.Getenv(name))
}

// ReplaceLevelNames is a slog ReplaceAttr function that renders LevelCritical as CRITICAL.
func ReplaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
		a.Value = slog.StringValue(criticalName)
	}

	return a
}
