package timedlog

import (
	"fmt"
	"strings"
)

// Severity is a set of message classes. Flags combine with |.
type Severity uint8

const (
	SeverityNone    Severity = 0
	SeverityInfo    Severity = 1 << 0
	SeverityWarning Severity = 1 << 1
	SeverityAlert   Severity = 1 << 2
	// SeverityVerbose enables every message class.
	SeverityVerbose = SeverityInfo | SeverityWarning | SeverityAlert
)

// Has reports whether every bit of flag is set in s.
// SeverityNone is never reported as set.
func (s Severity) Has(flag Severity) bool {
	return flag != SeverityNone && s&flag == flag
}

// Union returns the flags set in s or o.
func (s Severity) Union(o Severity) Severity {
	return s | o
}

// Intersect returns the flags set in both s and o.
func (s Severity) Intersect(o Severity) Severity {
	return s & o
}

// Valid reports whether s only carries known flags.
func (s Severity) Valid() bool {
	return s&^SeverityVerbose == 0
}

// Normalize drops unknown bits.
func (s Severity) Normalize() Severity {
	return s & SeverityVerbose
}

var severityNames = []struct {
	flag Severity
	name string
}{
	{SeverityInfo, "INFO"},
	{SeverityWarning, "WARNING"},
	{SeverityAlert, "ALERT"},
}

// String returns NONE, VERBOSE or the set flags joined with |.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "NONE"
	case SeverityVerbose:
		return "VERBOSE"
	}

	var parts []string
	for _, n := range severityNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if !s.Valid() {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(s&^SeverityVerbose)))
	}
	return strings.Join(parts, "|")
}

// ParseSeverity parses a list of severity names separated by |, , or +.
// Names are case-insensitive: info, warn/warning, alert/error,
// verbose/all and none.
func ParseSeverity(s string) (Severity, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == '+'
	})

	var mask Severity
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "", "none":
		case "info":
			mask |= SeverityInfo
		case "warn", "warning":
			mask |= SeverityWarning
		case "alert", "error":
			mask |= SeverityAlert
		case "verbose", "all":
			mask |= SeverityVerbose
		default:
			return SeverityNone, fmt.Errorf("unknown severity %q", f)
		}
	}
	return mask, nil
}
