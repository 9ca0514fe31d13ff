package timedlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityValues(t *testing.T) {
	assert.EqualValues(t, 0, SeverityNone)
	assert.EqualValues(t, 1, SeverityInfo)
	assert.EqualValues(t, 2, SeverityWarning)
	assert.EqualValues(t, 4, SeverityAlert)
	assert.EqualValues(t, 7, SeverityVerbose)
}

func TestSeverityHas(t *testing.T) {
	mask := SeverityInfo | SeverityAlert

	assert.True(t, mask.Has(SeverityInfo))
	assert.True(t, mask.Has(SeverityAlert))
	assert.False(t, mask.Has(SeverityWarning))
	assert.False(t, mask.Has(SeverityNone))
	assert.False(t, mask.Has(SeverityVerbose))
	assert.True(t, SeverityVerbose.Has(mask))
}

func TestSeveritySetOps(t *testing.T) {
	assert.Equal(t, SeverityVerbose, SeverityInfo.Union(SeverityWarning).Union(SeverityAlert))
	assert.Equal(t, SeverityWarning, SeverityVerbose.Intersect(SeverityWarning))
	assert.Equal(t, SeverityNone, SeverityInfo.Intersect(SeverityAlert))
}

func TestSeverityNormalize(t *testing.T) {
	assert.True(t, SeverityVerbose.Valid())
	assert.False(t, Severity(8).Valid())
	assert.Equal(t, SeverityNone, Severity(8).Normalize())
	assert.Equal(t, SeverityAlert, Severity(0x84).Normalize())
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		mask     Severity
		expected string
	}{
		{SeverityNone, "NONE"},
		{SeverityInfo, "INFO"},
		{SeverityWarning | SeverityAlert, "WARNING|ALERT"},
		{SeverityVerbose, "VERBOSE"},
		{SeverityInfo | Severity(0x10), "INFO|0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mask.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{"", SeverityNone},
		{"none", SeverityNone},
		{"info", SeverityInfo},
		{"WARN", SeverityWarning},
		{"info|alert", SeverityInfo | SeverityAlert},
		{"warning, error", SeverityWarning | SeverityAlert},
		{"info+warn+alert", SeverityVerbose},
		{"all", SeverityVerbose},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mask, err := ParseSeverity(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, mask)
		})
	}

	_, err := ParseSeverity("info|debug")
	assert.Error(t, err)
}
