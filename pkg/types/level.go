// Package types holds the foundation shared by the logging packages:
// severity levels, the configuration map and the Logger capability.
// It exists so backends and formatters can share these without importing
// the facade package.
package types

import (
	"fmt"
	"strings"
)

// Level is the severity of a log message. Levels are ordered; a leveled
// write is emitted only when its level is at or above the compiled
// Cutoff.
type Level int

// Supported levels, lowest to highest severity.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// NumLevels is the count of defined severities.
const NumLevels = 5

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the canonical upper-case name of the level, or
// "UNKNOWN(<n>)" for values outside the defined range.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(l))
}

// ParseLevel resolves a level name to its Level, ignoring case and
// surrounding space. The second return reports whether the name was
// recognized; unrecognized names resolve to LevelInfo.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return LevelTrace, true
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	}
	return LevelInfo, false
}
