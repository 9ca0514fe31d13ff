package timedlog

import (
	"fmt"
	"strings"
)

// Mode selects the output destination. Modes are mutually exclusive.
type Mode int

const (
	// ModeNone disables logging.
	ModeNone Mode = iota
	// ModeConsole writes entries to stdout and stderr.
	ModeConsole
	// ModeFile appends entries to a log file.
	ModeFile
)

// String returns the uppercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "NONE"
	case ModeConsole:
		return "CONSOLE"
	case ModeFile:
		return "FILE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeNone && m <= ModeFile
}

// ParseMode parses a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off", "disabled":
		return ModeNone, nil
	case "console", "stdout":
		return ModeConsole, nil
	case "file":
		return ModeFile, nil
	default:
		return ModeNone, fmt.Errorf("unknown log mode %q", s)
	}
}
