package logger

import (
	"fmt"
	"strings"
)

// Level is the severity rank of a log entry. Lower values are more urgent.
// A sink configured at some level emits every entry ranked at or above that
// urgency, so LevelSilly passes everything and LevelError only errors.
type Level int8

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelVerbose
	LevelDebug
	LevelSilly
)

// String returns the name written into serialized entries.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	case LevelSilly:
		return "silly"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Enables reports whether a sink thresholded at l emits entries ranked r.
func (l Level) Enables(r Level) bool {
	return r <= l
}

func (l Level) valid() bool {
	return l >= LevelError && l <= LevelSilly
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive and "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	case "silly":
		return LevelSilly, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their names in config files.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("unknown log level %d", int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config decoders can
// read levels from their names.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
