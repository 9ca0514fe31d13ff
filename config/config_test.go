package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melih-ucgun/timedlog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "timedlog.yaml", `
mode: file
severity: info|alert
file: app
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, timedlog.ModeFile, s.Mode)
	assert.Equal(t, timedlog.SeverityInfo|timedlog.SeverityAlert, s.Severity)
	assert.Equal(t, "app", s.File)
}

func TestLoad_Dotenv(t *testing.T) {
	path := writeFile(t, "timedlog.env", `
# console logging
TIMEDLOG_MODE=console
TIMEDLOG_SEVERITY="warning,alert"
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, timedlog.ModeConsole, s.Mode)
	assert.Equal(t, timedlog.SeverityWarning|timedlog.SeverityAlert, s.Severity)
	assert.Empty(t, s.File)

	_, set := os.LookupEnv(EnvMode)
	assert.False(t, set, "loading a dotenv file must not touch the environment")
}

func TestParse_FormatsAgree(t *testing.T) {
	fromYAML, err := Parse([]byte("mode: console\nseverity: verbose\n"), FormatYAML)
	require.NoError(t, err)

	fromEnv, err := Parse([]byte("TIMEDLOG_MODE=console\nTIMEDLOG_SEVERITY=verbose\n"), FormatDotenv)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromEnv)
	assert.Equal(t, timedlog.SeverityVerbose, fromYAML.Severity)
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("{}"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, timedlog.ModeNone, s.Mode)
	assert.Equal(t, timedlog.SeverityNone, s.Severity)
	assert.Empty(t, s.File)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"bad mode", "mode: syslog\n", FormatYAML},
		{"bad severity", "severity: debug\n", FormatYAML},
		{"bad yaml", "mode: [file\n", FormatYAML},
		{"unknown format", "", Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "timedlog.toml", "mode = 'file'"))
	assert.Error(t, err)
}

func TestSettings_Apply(t *testing.T) {
	dir := t.TempDir()
	eng := timedlog.New(timedlog.WithDir(dir))
	t.Cleanup(func() { eng.Close() })

	s := &Settings{Mode: timedlog.ModeFile, Severity: timedlog.SeverityAlert, File: "applied"}
	require.NoError(t, s.Apply(eng))

	assert.Equal(t, timedlog.ModeFile, eng.Mode())
	assert.Equal(t, filepath.Join(dir, "applied.log"), eng.FilePath())

	require.NoError(t, eng.AlertAt("T", "from config"))
	require.NoError(t, eng.Close())

	data, err := os.ReadFile(filepath.Join(dir, "applied.log"))
	require.NoError(t, err)
	assert.Equal(t, "T - from config\n", string(data))
}
