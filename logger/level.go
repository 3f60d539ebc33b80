package logger

import (
	"strconv"
	"strings"
)

// Level defines log severity. Higher values are more severe.
type Level int32

const (
	// TraceLevel enables very fine-grained execution logging.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

// AllLevels returns all supported levels ordered by increasing severity.
func AllLevels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// String returns the lower-case level name, or Level(n) for unknown values.
func (l Level) String() string {
	if !l.Valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Label returns the upper-case name used in rendered output.
func (l Level) Label() string {
	return strings.ToUpper(l.String())
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}
