package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Levels are ordered for gating:
// InfoLevel < WarnLevel < ErrorLevel < CustomLevel.
type Level int

const (
	// InfoLevel enables informational logging.
	InfoLevel Level = iota
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// CustomLevel enables caller-tagged logging. It is the highest tier, so a
	// minimum of CustomLevel mutes everything except custom tags.
	CustomLevel
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("logger: unknown level")

var levelNames = [...]string{"INFO", "WARN", "ERROR", "CUSTOM"}

// String returns the display tag of the level.
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel parses a level name. Matching is case-insensitive and accepts
// WARNING as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CUSTOM":
		return CustomLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// journalPriority maps a level to its sd-daemon priority prefix.
func journalPriority(level Level) string {
	switch level {
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	case CustomLevel:
		return "<5>"
	default:
		return ""
	}
}
